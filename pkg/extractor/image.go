package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ImageExtractor extracts text from images via tesseract OCR.
type ImageExtractor struct {
	languages []string
}

// NewImageExtractor creates an OCR extractor for the given languages.
func NewImageExtractor(languages []string) *ImageExtractor {
	return &ImageExtractor{languages: languages}
}

// Extract runs OCR over the image and returns the recognized text.
func (e *ImageExtractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(e.languages) > 0 {
		if err := client.SetLanguage(e.languages...); err != nil {
			return "", fmt.Errorf("failed to set ocr languages: %w", err)
		}
	}
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
