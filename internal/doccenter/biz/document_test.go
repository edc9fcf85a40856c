package biz

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/doc-center/internal/doccenter/store"
	"github.com/kart-io/doc-center/pkg/errors"
	"github.com/kart-io/doc-center/pkg/extractor"
	extractoropts "github.com/kart-io/doc-center/pkg/options/extractor"
)

// docxPayload builds a minimal DOCX file containing the given paragraphs.
func docxPayload(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var xml bytes.Buffer
	xml.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		xml.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	xml.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write(xml.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

type documentFixture struct {
	svc    *DocumentService
	store  store.Factory
	engine *fakeEngine
	blobs  *fakeBlob
}

func newDocumentFixture(t *testing.T, failFast bool) *documentFixture {
	t.Helper()

	st := newTestStore(t)
	engine := newFakeEngine()
	blobs := newFakeBlob()
	registry := extractor.NewRegistry(extractoropts.NewOptions())
	indexer := NewIndexer(st.Documents(), engine)

	return &documentFixture{
		svc:    NewDocumentService(st.Documents(), blobs, registry, indexer, t.TempDir(), failFast),
		store:  st,
		engine: engine,
		blobs:  blobs,
	}
}

func TestUpload(t *testing.T) {
	fx := newDocumentFixture(t, true)
	payload := docxPayload(t, "hello world", "second line")

	doc, err := fx.svc.Upload(context.Background(), &UploadRequest{
		Title:       "Guide",
		Description: "a guide",
		Filename:    "guide.docx",
		Size:        int64(len(payload)),
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Reader:      bytes.NewReader(payload),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Guide", doc.Title)
	assert.Equal(t, "hello world\nsecond line", doc.Content)
	assert.Equal(t, "https://test-bucket.s3.us-east-1.amazonaws.com/Guide/guide.docx", doc.FilePath)

	// persisted
	got, err := fx.store.Documents().GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Content, got.Content)

	// stored in the object store under title/filename
	assert.Equal(t, payload, fx.blobs.uploads["Guide/guide.docx"])

	// indexed
	indexed, ok := fx.engine.indexed[doc.ID]
	require.True(t, ok)
	assert.Equal(t, "Guide", indexed.Title)
}

func TestUploadDuplicateTitle(t *testing.T) {
	fx := newDocumentFixture(t, true)
	payload := docxPayload(t, "content")

	req := func() *UploadRequest {
		return &UploadRequest{
			Title:    "Same Title",
			Filename: "doc.docx",
			Reader:   bytes.NewReader(payload),
		}
	}

	_, err := fx.svc.Upload(context.Background(), req())
	require.NoError(t, err)

	_, err = fx.svc.Upload(context.Background(), req())
	assert.ErrorIs(t, err, errors.ErrDocumentExists)
}

func TestUploadUnsupportedFormat(t *testing.T) {
	fx := newDocumentFixture(t, true)

	_, err := fx.svc.Upload(context.Background(), &UploadRequest{
		Title:    "Spreadsheet",
		Filename: "data.xlsx",
		Reader:   bytes.NewReader([]byte("irrelevant")),
	})
	assert.ErrorIs(t, err, errors.ErrUnsupportedFormat)

	// nothing persisted or uploaded
	count, err := fx.store.Documents().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, fx.blobs.uploads)
}

func TestUploadMissingFile(t *testing.T) {
	fx := newDocumentFixture(t, true)

	_, err := fx.svc.Upload(context.Background(), &UploadRequest{Title: "No File"})
	assert.ErrorIs(t, err, errors.ErrMissingFile)
}

func TestUploadMissingTitle(t *testing.T) {
	fx := newDocumentFixture(t, true)

	_, err := fx.svc.Upload(context.Background(), &UploadRequest{
		Filename: "doc.docx",
		Reader:   bytes.NewReader([]byte("x")),
	})
	assert.ErrorIs(t, err, errors.ErrBadRequest)
}

func TestUploadBlobFailure(t *testing.T) {
	fx := newDocumentFixture(t, true)
	fx.blobs.err = io.ErrClosedPipe

	_, err := fx.svc.Upload(context.Background(), &UploadRequest{
		Title:    "Doc",
		Filename: "doc.docx",
		Reader:   bytes.NewReader(docxPayload(t, "content")),
	})
	assert.ErrorIs(t, err, errors.ErrBlobStore)

	count, err := fx.store.Documents().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUploadExtractionFailure(t *testing.T) {
	fx := newDocumentFixture(t, true)

	// a .docx that is not a zip archive
	_, err := fx.svc.Upload(context.Background(), &UploadRequest{
		Title:    "Broken",
		Filename: "broken.docx",
		Reader:   bytes.NewReader([]byte("not a zip")),
	})
	assert.ErrorIs(t, err, errors.ErrExtraction)

	count, err := fx.store.Documents().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUploadIndexFailureFailFast(t *testing.T) {
	fx := newDocumentFixture(t, true)
	fx.engine.indexErr = io.ErrUnexpectedEOF

	_, err := fx.svc.Upload(context.Background(), &UploadRequest{
		Title:    "Doc",
		Filename: "doc.docx",
		Reader:   bytes.NewReader(docxPayload(t, "content")),
	})
	require.ErrorIs(t, err, errors.ErrIndexing)

	// the document stays persisted; the batch reindex will retry it
	count, err := fx.store.Documents().Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUploadIndexFailureDeferred(t *testing.T) {
	fx := newDocumentFixture(t, false)
	fx.engine.indexErr = io.ErrUnexpectedEOF

	doc, err := fx.svc.Upload(context.Background(), &UploadRequest{
		Title:    "Doc",
		Filename: "doc.docx",
		Reader:   bytes.NewReader(docxPayload(t, "content")),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
}

func TestListAndGet(t *testing.T) {
	fx := newDocumentFixture(t, true)

	doc, err := fx.svc.Upload(context.Background(), &UploadRequest{
		Title:    "Doc",
		Filename: "doc.docx",
		Reader:   bytes.NewReader(docxPayload(t, "content")),
	})
	require.NoError(t, err)

	docs, err := fx.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, doc.ID, docs[0].ID)

	got, err := fx.svc.Get(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doc", got.Title)

	_, err = fx.svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, errors.ErrDocumentNotFound)
}
