// Package router registers the doc-center HTTP routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kart-io/doc-center/internal/doccenter/handler"
	"github.com/kart-io/doc-center/pkg/security/auth/middleware"
)

// Register wires all routes onto the engine. Upload and document
// retrieval require a valid bearer token; registration, login, query,
// and health do not.
func Register(
	engine *gin.Engine,
	authHandler *handler.AuthHandler,
	docHandler *handler.DocumentHandler,
	queryHandler *handler.QueryHandler,
	verifier middleware.TokenVerifier,
) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.POST("/register", authHandler.Register)
	engine.POST("/token", authHandler.Login)
	engine.POST("/query/", queryHandler.Query)

	authed := engine.Group("/", middleware.AuthN(verifier))
	authed.POST("/upload", docHandler.Upload)
	authed.GET("/documents", docHandler.List)
	authed.GET("/documents/:id", docHandler.Get)
}
