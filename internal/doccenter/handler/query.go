package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/doc-center/internal/doccenter/biz"
	"github.com/kart-io/doc-center/internal/model"
	"github.com/kart-io/doc-center/internal/pkg/httputils"
	"github.com/kart-io/doc-center/pkg/errors"
)

// QueryHandler handles retrieval-augmented query requests.
type QueryHandler struct {
	query *biz.QueryService
}

// NewQueryHandler creates a QueryHandler.
func NewQueryHandler(query *biz.QueryService) *QueryHandler {
	return &QueryHandler{query: query}
}

// Query handles POST /query/.
func (h *QueryHandler) Query(c *gin.Context) {
	var req model.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteResponse(c, errors.ErrBadRequest.WithCause(err), nil)
		return
	}

	result, err := h.query.Answer(c.Request.Context(), req.Query)
	httputils.WriteResponse(c, err, result)
}
