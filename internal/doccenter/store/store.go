// Package store provides data access for the doc-center service.
package store

import (
	"gorm.io/gorm"

	"github.com/kart-io/doc-center/internal/model"
)

// Factory defines the storage interface for doc-center.
type Factory interface {
	// Documents returns the document store.
	Documents() DocumentStore

	// Users returns the user store.
	Users() UserStore

	// DB returns the underlying gorm database.
	DB() *gorm.DB
}

// datastore implements Factory backed by gorm.
type datastore struct {
	db *gorm.DB
}

var _ Factory = (*datastore)(nil)

// NewFactory creates a storage factory on top of the given database.
func NewFactory(db *gorm.DB) Factory {
	return &datastore{db: db}
}

func (ds *datastore) Documents() DocumentStore {
	return newDocuments(ds.db)
}

func (ds *datastore) Users() UserStore {
	return newUsers(ds.db)
}

func (ds *datastore) DB() *gorm.DB {
	return ds.db
}

// Migrate creates or updates the database schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Document{}, &model.User{})
}
