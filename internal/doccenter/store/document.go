package store

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/kart-io/doc-center/internal/model"
	"github.com/kart-io/doc-center/pkg/errors"
)

// DocumentStore defines document persistence operations.
type DocumentStore interface {
	// Create inserts a new document.
	Create(ctx context.Context, doc *model.Document) error

	// GetByID returns the document with the given id.
	GetByID(ctx context.Context, id string) (*model.Document, error)

	// GetByTitle returns the document with the given title.
	GetByTitle(ctx context.Context, title string) (*model.Document, error)

	// ExistsByTitle reports whether a document with the title exists.
	ExistsByTitle(ctx context.Context, title string) (bool, error)

	// List returns all documents ordered by creation time.
	List(ctx context.Context) ([]model.Document, error)

	// Count returns the number of documents.
	Count(ctx context.Context) (int64, error)
}

type documents struct {
	db *gorm.DB
}

var _ DocumentStore = (*documents)(nil)

func newDocuments(db *gorm.DB) *documents {
	return &documents{db: db}
}

func (d *documents) Create(ctx context.Context, doc *model.Document) error {
	if err := d.db.WithContext(ctx).Create(doc).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.ErrDocumentExists
		}
		return errors.ErrInternal.WithCause(err).WithMessage("failed to create document")
	}
	return nil
}

func (d *documents) GetByID(ctx context.Context, id string) (*model.Document, error) {
	var doc model.Document
	if err := d.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrDocumentNotFound
		}
		return nil, errors.ErrInternal.WithCause(err).WithMessage("failed to get document")
	}
	return &doc, nil
}

func (d *documents) GetByTitle(ctx context.Context, title string) (*model.Document, error) {
	var doc model.Document
	if err := d.db.WithContext(ctx).Where("title = ?", title).First(&doc).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrDocumentNotFound
		}
		return nil, errors.ErrInternal.WithCause(err).WithMessage("failed to get document")
	}
	return &doc, nil
}

func (d *documents) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&model.Document{}).Where("title = ?", title).Count(&count).Error; err != nil {
		return false, errors.ErrInternal.WithCause(err).WithMessage("failed to check document title")
	}
	return count > 0, nil
}

func (d *documents) List(ctx context.Context) ([]model.Document, error) {
	var docs []model.Document
	if err := d.db.WithContext(ctx).Order("created_at").Find(&docs).Error; err != nil {
		return nil, errors.ErrInternal.WithCause(err).WithMessage("failed to list documents")
	}
	return docs, nil
}

func (d *documents) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := d.db.WithContext(ctx).Model(&model.Document{}).Count(&count).Error; err != nil {
		return 0, errors.ErrInternal.WithCause(err).WithMessage("failed to count documents")
	}
	return count, nil
}
