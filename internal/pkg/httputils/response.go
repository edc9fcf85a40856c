// Package httputils provides HTTP utility functions.
package httputils

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/doc-center/pkg/errors"
	"github.com/kart-io/doc-center/pkg/response"
)

// WriteResponse writes the response to the client.
// It handles both success and error cases, ensuring consistent response format.
func WriteResponse(c *gin.Context, err error, data interface{}) {
	if err != nil {
		errno := errors.FromError(err)
		c.JSON(errno.HTTPStatus(), response.Err(errno))
		return
	}

	resp := response.Success(data)
	c.JSON(resp.HTTPStatus(), resp)
}
