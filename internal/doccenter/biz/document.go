package biz

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kart-io/logger"

	"github.com/kart-io/doc-center/internal/doccenter/store"
	"github.com/kart-io/doc-center/internal/model"
	"github.com/kart-io/doc-center/pkg/component/blob"
	"github.com/kart-io/doc-center/pkg/errors"
	"github.com/kart-io/doc-center/pkg/extractor"
)

// UploadRequest carries an incoming document upload.
type UploadRequest struct {
	Title       string
	Description string
	Filename    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

// DocumentService handles document upload and retrieval.
type DocumentService struct {
	docs       store.DocumentStore
	blobs      blob.Store
	extractors *extractor.Registry
	indexer    *Indexer
	tempDir    string
	failFast   bool
}

// NewDocumentService creates a DocumentService. When failFast is set,
// an index failure aborts the upload request; otherwise it is logged
// and the upload succeeds (the batch reindex will catch up later).
func NewDocumentService(docs store.DocumentStore, blobs blob.Store, extractors *extractor.Registry, indexer *Indexer, tempDir string, failFast bool) *DocumentService {
	return &DocumentService{
		docs:       docs,
		blobs:      blobs,
		extractors: extractors,
		indexer:    indexer,
		tempDir:    tempDir,
		failFast:   failFast,
	}
}

// Upload processes a document upload end to end: duplicate title check,
// object store upload, text extraction, persistence, and indexing.
// Documents are immutable once stored.
func (s *DocumentService) Upload(ctx context.Context, req *UploadRequest) (*model.Document, error) {
	if req.Title == "" {
		return nil, errors.ErrBadRequest.WithMessage("title is required")
	}
	if req.Filename == "" || req.Reader == nil {
		return nil, errors.ErrMissingFile
	}

	exists, err := s.docs.ExistsByTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrDocumentExists
	}

	ext, err := s.extractors.ForFile(req.Filename)
	if err != nil {
		return nil, err
	}

	// Spool to a local file so the payload can be read twice: once for
	// the object store upload and once for extraction.
	tempPath, size, err := s.spool(req)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tempPath)

	f, err := os.Open(tempPath)
	if err != nil {
		return nil, errors.ErrInternal.WithCause(err).WithMessage("failed to reopen spooled file")
	}
	// Objects are keyed by title and filename; titles are unique.
	fileKey := req.Title + "/" + req.Filename
	fileURL, err := s.blobs.Upload(ctx, fileKey, f, size, req.ContentType)
	f.Close()
	if err != nil {
		return nil, errors.ErrBlobStore.WithCause(err)
	}

	content, err := ext.Extract(ctx, tempPath)
	if err != nil {
		return nil, errors.ErrExtraction.WithCause(err)
	}

	doc := &model.Document{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		FilePath:    fileURL,
		Content:     content,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.indexer.IndexOne(ctx, doc); err != nil {
		if s.failFast {
			return nil, err
		}
		logger.Warnf("Indexing deferred for document %s: %v", doc.ID, err)
	}

	logger.Infof("Document uploaded: %s (%s)", doc.Title, doc.ID)
	return doc, nil
}

// List returns all documents.
func (s *DocumentService) List(ctx context.Context) ([]model.Document, error) {
	return s.docs.List(ctx)
}

// Get returns a document by id.
func (s *DocumentService) Get(ctx context.Context, id string) (*model.Document, error) {
	return s.docs.GetByID(ctx, id)
}

// spool writes the upload to a temp file and returns its path and size.
func (s *DocumentService) spool(req *UploadRequest) (string, int64, error) {
	tmp, err := os.CreateTemp(s.tempDir, "upload-*"+filepath.Ext(req.Filename))
	if err != nil {
		return "", 0, errors.ErrInternal.WithCause(err).WithMessage("failed to create temp file")
	}

	size, err := io.Copy(tmp, req.Reader)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", 0, errors.ErrInternal.WithCause(err).WithMessage("failed to spool upload")
	}

	return tmp.Name(), size, nil
}
