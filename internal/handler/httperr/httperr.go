package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records the original error on the context for the error
// middleware and logging, then writes the public response.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
