package biz

import (
	"context"
	"io"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kart-io/doc-center/internal/doccenter/store"
	"github.com/kart-io/doc-center/internal/model"
)

func newTestStore(t *testing.T) store.Factory {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	return store.NewFactory(db)
}

// fakeEngine is an in-memory search.Engine for tests.
type fakeEngine struct {
	indexed   map[string]model.SearchDoc
	hits      []model.SearchHit
	indexErr  error
	searchErr error

	// failIDs lists document ids whose Index call fails.
	failIDs map[string]bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		indexed: make(map[string]model.SearchDoc),
		failIDs: make(map[string]bool),
	}
}

func (f *fakeEngine) Index(id string, doc model.SearchDoc) error {
	if f.indexErr != nil {
		return f.indexErr
	}
	if f.failIDs[id] {
		return io.ErrUnexpectedEOF
	}
	f.indexed[id] = doc
	return nil
}

func (f *fakeEngine) Delete(id string) error {
	delete(f.indexed, id)
	return nil
}

func (f *fakeEngine) Search(_ context.Context, _ string) ([]model.SearchHit, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.hits, nil
}

func (f *fakeEngine) DocCount() (uint64, error) {
	return uint64(len(f.indexed)), nil
}

func (f *fakeEngine) Close() error { return nil }

// fakeQA is a canned qa.Extractor for tests.
type fakeQA struct {
	answer      string
	err         error
	gotQuestion string
	gotPassage  string
	invocations int
}

func (f *fakeQA) Answer(_ context.Context, question, passage string) (string, error) {
	f.invocations++
	f.gotQuestion = question
	f.gotPassage = passage
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

// fakeBlob records uploads and returns deterministic URLs.
type fakeBlob struct {
	uploads map[string][]byte
	err     error
}

func newFakeBlob() *fakeBlob {
	return &fakeBlob{uploads: make(map[string][]byte)}
}

func (f *fakeBlob) Upload(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.uploads[key] = data
	return "https://test-bucket.s3.us-east-1.amazonaws.com/" + key, nil
}
