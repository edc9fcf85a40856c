package extractor

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const docxDocumentPart = "word/document.xml"

// DOCXExtractor extracts text from DOCX files by parsing the main
// document part of the OpenXML package. Text runs (<w:t>) are gathered
// per paragraph (<w:p>), and paragraphs are joined with newlines.
type DOCXExtractor struct{}

// NewDOCXExtractor creates a DOCX extractor.
func NewDOCXExtractor() *DOCXExtractor {
	return &DOCXExtractor{}
}

// Extract returns the document's paragraphs joined with newlines.
func (e *DOCXExtractor) Extract(ctx context.Context, path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer zr.Close()

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == docxDocumentPart {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("docx has no %s part", docxDocumentPart)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", docxDocumentPart, err)
	}
	defer rc.Close()

	return parseDocumentXML(ctx, rc)
}

// parseDocumentXML walks the XML token stream collecting text runs.
func parseDocumentXML(ctx context.Context, r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				var v string
				if err := dec.DecodeElement(&v, &t); err != nil {
					return "", fmt.Errorf("failed to decode text run: %w", err)
				}
				current.WriteString(v)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				if s := strings.TrimSpace(current.String()); s != "" {
					paragraphs = append(paragraphs, s)
				}
				current.Reset()
			}
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		paragraphs = append(paragraphs, s)
	}

	return strings.Join(paragraphs, "\n"), nil
}
