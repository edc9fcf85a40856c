// Package extractor provides text extraction from uploaded document files.
//
// Extraction is dispatched on file extension: PDF and DOCX files are
// parsed directly, images go through OCR. Extracted fragments (pages,
// paragraphs, OCR output) are joined with newlines.
package extractor

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/kart-io/doc-center/pkg/errors"
	extractoropts "github.com/kart-io/doc-center/pkg/options/extractor"
)

// Extractor extracts plain text from a file on disk.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// Registry dispatches extraction by file extension.
type Registry struct {
	byExt map[string]Extractor
}

// NewRegistry creates a registry with the default extractors: PDF,
// DOCX, and OCR for png/jpg/jpeg images.
func NewRegistry(opts *extractoropts.Options) *Registry {
	ocr := NewImageExtractor(opts.OCRLanguages)

	return &Registry{
		byExt: map[string]Extractor{
			".pdf":  NewPDFExtractor(),
			".docx": NewDOCXExtractor(),
			".png":  ocr,
			".jpg":  ocr,
			".jpeg": ocr,
		},
	}
}

// ForFile returns the extractor for the file's extension, or
// ErrUnsupportedFormat when no extractor is registered for it.
func (r *Registry) ForFile(name string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(name))
	e, ok := r.byExt[ext]
	if !ok {
		return nil, errors.ErrUnsupportedFormat.WithMessagef("unsupported file format: %s", ext)
	}
	return e, nil
}

// Supported reports whether the file's extension has an extractor.
func (r *Registry) Supported(name string) bool {
	_, err := r.ForFile(name)
	return err == nil
}

// Extensions lists the registered extensions.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	return exts
}
