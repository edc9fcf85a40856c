// Package handler provides HTTP handlers for the doc-center service.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/doc-center/internal/doccenter/biz"
	"github.com/kart-io/doc-center/internal/model"
	"github.com/kart-io/doc-center/internal/pkg/httputils"
	"github.com/kart-io/doc-center/pkg/errors"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	auth *biz.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth *biz.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteResponse(c, errors.ErrBadRequest.WithCause(err), nil)
		return
	}

	info, err := h.auth.Register(c.Request.Context(), &req)
	httputils.WriteResponse(c, err, info)
}

// Login handles POST /token. Credentials arrive as form fields, matching
// the OAuth2 password flow shape.
func (h *AuthHandler) Login(c *gin.Context) {
	req := model.LoginRequest{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}
	if req.Username == "" || req.Password == "" {
		httputils.WriteResponse(c, errors.ErrBadRequest.WithMessage("username and password are required"), nil)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), &req)
	httputils.WriteResponse(c, err, token)
}
