package queries

import (
	"context"

	"dogcatify-core/internal/infra"
	"dogcatify-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, filter OrderFilter) ([]*OrderListView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, filter OrderFilter) ([]*OrderListView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}
	return view, nil
}

func (q *orderQueriesImpl) List(ctx context.Context, filter OrderFilter) ([]*OrderListView, error) {
	const maxLimit = 100
	if filter.Limit <= 0 || filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	views, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders")
	}
	return views, nil
}
