package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/doc-center/internal/doccenter/biz"
	"github.com/kart-io/doc-center/internal/pkg/httputils"
	"github.com/kart-io/doc-center/pkg/errors"
)

// DocumentHandler handles document upload and retrieval requests.
type DocumentHandler struct {
	docs *biz.DocumentService
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(docs *biz.DocumentService) *DocumentHandler {
	return &DocumentHandler{docs: docs}
}

// Upload handles POST /upload. The request is multipart form data with
// title and description fields and a single file.
func (h *DocumentHandler) Upload(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httputils.WriteResponse(c, errors.ErrMissingFile, nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputils.WriteResponse(c, errors.ErrInternal.WithCause(err).WithMessage("failed to open uploaded file"), nil)
		return
	}
	defer file.Close()

	doc, err := h.docs.Upload(c.Request.Context(), &biz.UploadRequest{
		Title:       title,
		Description: description,
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Reader:      file,
	})
	httputils.WriteResponse(c, err, doc)
}

// List handles GET /documents.
func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.docs.List(c.Request.Context())
	httputils.WriteResponse(c, err, docs)
}

// Get handles GET /documents/:id.
func (h *DocumentHandler) Get(c *gin.Context) {
	doc, err := h.docs.Get(c.Request.Context(), c.Param("id"))
	httputils.WriteResponse(c, err, doc)
}
