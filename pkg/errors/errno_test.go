package errors

import (
	stderrors "errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeCode(t *testing.T) {
	assert.Equal(t, 1001, MakeCode(0, CategoryRequest, 1))
	assert.Equal(t, 3005001, MakeCode(ServiceDocCenter, CategoryConflict, 1))
	assert.Equal(t, 3010003, MakeCode(ServiceDocCenter, CategoryUpstream, 3))
}

func TestGetCategory(t *testing.T) {
	assert.Equal(t, CategoryConflict, GetCategory(ErrDocumentExists.Code))
	assert.Equal(t, CategoryAuth, GetCategory(ErrInvalidCredentials.Code))
	assert.Equal(t, CategoryUpstream, GetCategory(ErrIndexing.Code))
}

func TestErrnoWithCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := ErrBlobStore.WithCause(cause)

	assert.Equal(t, ErrBlobStore.Code, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")

	// the shared sentinel must not be mutated
	assert.Nil(t, ErrBlobStore.Unwrap())
}

func TestErrnoWithMessage(t *testing.T) {
	err := ErrUnsupportedFormat.WithMessagef("unsupported file format: %s", ".exe")

	assert.Equal(t, "unsupported file format: .exe", err.Msg)
	assert.Equal(t, ErrUnsupportedFormat.Code, err.Code)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestErrnoIsMatchesByCode(t *testing.T) {
	err := ErrDocumentExists.WithMessage("duplicate").WithCause(io.EOF)

	assert.ErrorIs(t, err, ErrDocumentExists)
	assert.NotErrorIs(t, err, ErrUserExists)
}

func TestFromError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FromError(nil))
	})

	t.Run("errno passthrough", func(t *testing.T) {
		e := FromError(ErrDocumentNotFound)
		require.NotNil(t, e)
		assert.Equal(t, ErrDocumentNotFound.Code, e.Code)
		assert.Equal(t, http.StatusNotFound, e.HTTPStatus())
	})

	t.Run("plain error wrapped as internal", func(t *testing.T) {
		e := FromError(stderrors.New("boom"))
		require.NotNil(t, e)
		assert.Equal(t, ErrInternal.Code, e.Code)
		assert.Equal(t, http.StatusInternalServerError, e.HTTPStatus())
		assert.Equal(t, "boom", e.Msg)
	})
}
