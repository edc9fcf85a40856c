package store

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kart-io/doc-center/internal/model"
	"github.com/kart-io/doc-center/pkg/errors"
)

func newTestFactory(t *testing.T) Factory {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return NewFactory(db)
}

func TestDocumentCreateAndGet(t *testing.T) {
	f := newTestFactory(t)
	ctx := context.Background()

	doc := &model.Document{
		ID:          "doc-1",
		Title:       "Getting Started",
		Description: "intro guide",
		FilePath:    "https://bucket.s3.us-east-1.amazonaws.com/doc-1.pdf",
		Content:     "welcome to the guide",
	}
	require.NoError(t, f.Documents().Create(ctx, doc))

	got, err := f.Documents().GetByID(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "Getting Started", got.Title)
	assert.Equal(t, "welcome to the guide", got.Content)
	assert.False(t, got.CreatedAt.IsZero())

	byTitle, err := f.Documents().GetByTitle(ctx, "Getting Started")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", byTitle.ID)
}

func TestDocumentCreateDuplicateTitle(t *testing.T) {
	f := newTestFactory(t)
	ctx := context.Background()

	require.NoError(t, f.Documents().Create(ctx, &model.Document{
		ID:       "doc-1",
		Title:    "Same Title",
		FilePath: "https://example.com/doc-1",
	}))

	err := f.Documents().Create(ctx, &model.Document{
		ID:       "doc-2",
		Title:    "Same Title",
		FilePath: "https://example.com/doc-2",
	})
	assert.ErrorIs(t, err, errors.ErrDocumentExists)
}

func TestDocumentGetByIDNotFound(t *testing.T) {
	f := newTestFactory(t)

	_, err := f.Documents().GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, errors.ErrDocumentNotFound)
}

func TestDocumentExistsByTitle(t *testing.T) {
	f := newTestFactory(t)
	ctx := context.Background()

	exists, err := f.Documents().ExistsByTitle(ctx, "Unique Title")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, f.Documents().Create(ctx, &model.Document{
		ID:       "doc-1",
		Title:    "Unique Title",
		FilePath: "https://example.com/doc-1",
	}))

	exists, err = f.Documents().ExistsByTitle(ctx, "Unique Title")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDocumentListAndCount(t *testing.T) {
	f := newTestFactory(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, f.Documents().Create(ctx, &model.Document{
			ID:       id,
			Title:    "title-" + id,
			FilePath: "https://example.com/" + id,
		}))
	}

	docs, err := f.Documents().List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	count, err := f.Documents().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestUserCreateAndGet(t *testing.T) {
	f := newTestFactory(t)
	ctx := context.Background()

	user := &model.User{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "$2a$10$hash",
	}
	require.NoError(t, f.Users().Create(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := f.Users().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	exists, err := f.Users().ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	f := newTestFactory(t)
	ctx := context.Background()

	require.NoError(t, f.Users().Create(ctx, &model.User{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "$2a$10$hash",
	}))

	err := f.Users().Create(ctx, &model.User{
		Username: "bob",
		Email:    "bob2@example.com",
		Password: "$2a$10$hash",
	})
	assert.ErrorIs(t, err, errors.ErrUserExists)
}

func TestUserGetByUsernameNotFound(t *testing.T) {
	f := newTestFactory(t)

	_, err := f.Users().GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}
