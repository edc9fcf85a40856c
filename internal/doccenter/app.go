// Package doccenter provides the doc-center server application.
package doccenter

import (
	"context"
	"fmt"

	"github.com/kart-io/logger"

	"github.com/kart-io/doc-center/internal/doccenter/biz"
	"github.com/kart-io/doc-center/internal/doccenter/handler"
	"github.com/kart-io/doc-center/internal/doccenter/router"
	"github.com/kart-io/doc-center/internal/doccenter/store"
	"github.com/kart-io/doc-center/pkg/app"
	"github.com/kart-io/doc-center/pkg/component/blob"
	"github.com/kart-io/doc-center/pkg/component/database"
	"github.com/kart-io/doc-center/pkg/extractor"
	"github.com/kart-io/doc-center/pkg/qa/huggingface"
	"github.com/kart-io/doc-center/pkg/search"
	"github.com/kart-io/doc-center/pkg/security/auth/jwt"
	"github.com/kart-io/doc-center/pkg/server"
)

const (
	appName        = "doc-center"
	appDescription = `Doc-Center Service

A document knowledge base with retrieval-augmented question answering.

This server provides:
  - Document upload with text extraction (PDF, DOCX, images via OCR)
  - Full-text indexing and search over title, description, and content
  - Extractive question answering over matching documents`
)

// NewApp creates a new application instance.
func NewApp() *app.App {
	opts := NewOptions()

	return app.NewApp(
		app.WithName(appName),
		app.WithDescription(appDescription),
		app.WithOptions(opts),
		app.WithRunFunc(func() error {
			return Run(opts)
		}),
	)
}

// Run runs the doc-center server with the given options.
func Run(opts *Options) error {
	// 1. Initialize logger
	if err := opts.Log.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Info("Starting doc-center service...")

	// 2. Open the database and migrate the schema
	db, err := database.New(opts.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	if err := store.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	factory := store.NewFactory(db.DB())
	logger.Infof("Database ready (%s)", opts.Database.Driver)

	// 3. Open the search index
	engine, err := search.Open(opts.Search)
	if err != nil {
		return fmt.Errorf("failed to open search index: %w", err)
	}
	defer engine.Close()
	logger.Infof("Search index ready at %s", opts.Search.IndexPath)

	// 4. Initialize the object store client
	blobs, err := blob.New(opts.Blob)
	if err != nil {
		return fmt.Errorf("failed to initialize object store: %w", err)
	}
	logger.Infof("Object store ready (bucket %s)", opts.Blob.Bucket)

	// 5. Initialize the QA backend
	answerer, err := huggingface.New(opts.QA)
	if err != nil {
		return fmt.Errorf("failed to initialize qa backend: %w", err)
	}
	logger.Infof("QA backend ready (model %s)", opts.QA.Model)

	// 6. Initialize the authenticator
	authn, err := jwt.New(opts.JWT)
	if err != nil {
		return fmt.Errorf("failed to initialize authenticator: %w", err)
	}

	// 7. Initialize the biz layer
	registry := extractor.NewRegistry(opts.Extractor)
	indexer := biz.NewIndexer(factory.Documents(), engine)
	authService := biz.NewAuthService(factory.Users(), authn)
	docService := biz.NewDocumentService(
		factory.Documents(), blobs, registry, indexer,
		opts.Extractor.TempDir, opts.Search.FailFastUpload,
	)
	queryService := biz.NewQueryService(engine, answerer, opts.QA.ContextChars)

	// 8. Reindex persisted documents so the index catches up with the
	// record store after restarts or index loss
	report, err := indexer.ReindexAll(context.Background())
	if err != nil {
		return fmt.Errorf("failed to reindex documents: %w", err)
	}
	if report.Failed > 0 {
		logger.Warnf("Reindexed %d/%d documents, %d failed", report.Indexed, report.Total, report.Failed)
	} else {
		logger.Infof("Reindexed %d documents", report.Indexed)
	}

	// 9. Register routes and start the server
	srv := server.New(opts.HTTP)
	router.Register(
		srv.Engine(),
		handler.NewAuthHandler(authService),
		handler.NewDocumentHandler(docService),
		handler.NewQueryHandler(queryService),
		authn,
	)

	logger.Info("doc-center service is ready")
	return srv.Run()
}
