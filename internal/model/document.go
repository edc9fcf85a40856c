// Package model provides data models for the doc-center platform.
package model

import (
	"time"
)

// Document represents an uploaded document in the knowledge base.
// Documents are immutable after creation: there is no update or delete path.
type Document struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null;uniqueIndex:uk_title"`
	Description string    `json:"description" gorm:"type:varchar(1024)"`
	FilePath    string    `json:"file_path" gorm:"type:varchar(512);not null"` // Durable object-store URL
	Content     string    `json:"content,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Document.
func (Document) TableName() string {
	return "documents"
}

// SearchDoc is the denormalized form of a Document mirrored into the
// search index. The index is an eventually-consistent copy of the record
// store, not a foreign-keyed view.
type SearchDoc struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// SearchRecord converts a Document into its indexable form.
func (d *Document) SearchRecord() SearchDoc {
	return SearchDoc{
		Title:       d.Title,
		Description: d.Description,
		Content:     d.Content,
	}
}
