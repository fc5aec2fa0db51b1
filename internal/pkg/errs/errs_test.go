//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"dogcatify-core/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	t.Parallel()

	sentinel := errs.New("partner not found")

	t.Run("matches a Mark reference the standard library misses", func(t *testing.T) {
		cause := errs.New("no rows in result set")
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.False(t, errors.Is(marked, sentinel))
	})

	t.Run("matches a Mark reference through further wrapping", func(t *testing.T) {
		marked := errs.Wrap(errs.Mark(errs.New("boom"), sentinel), "loading partner")

		assert.True(t, errs.Is(marked, sentinel))
	})

	t.Run("matches plain wrap chains like the standard library", func(t *testing.T) {
		wrapped := errs.Wrap(sentinel, "loading partner")

		assert.True(t, errs.Is(wrapped, sentinel))
		assert.True(t, errors.Is(wrapped, sentinel))
	})

	t.Run("does not match unrelated errors", func(t *testing.T) {
		assert.False(t, errs.Is(errs.New("something else"), sentinel))
		assert.False(t, errs.Is(nil, sentinel))
	})
}
