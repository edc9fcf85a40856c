package errors

import "net/http"

// ServiceDocCenter is the service code for doc-center errors.
const ServiceDocCenter = 30

// Common errors (service code 00).
var (
	// ErrBadRequest indicates a malformed or invalid request.
	ErrBadRequest = New(MakeCode(0, CategoryRequest, 1), http.StatusBadRequest, "Bad request")

	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = New(MakeCode(0, CategoryAuth, 1), http.StatusUnauthorized, "Unauthorized")

	// ErrInvalidToken indicates the bearer token failed verification.
	ErrInvalidToken = New(MakeCode(0, CategoryAuth, 2), http.StatusUnauthorized, "Invalid or expired token")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = New(MakeCode(0, CategoryResource, 1), http.StatusNotFound, "Resource not found")

	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal = New(MakeCode(0, CategoryInternal, 1), http.StatusInternalServerError, "Internal server error")
)

// doc-center errors (service code 30).
var (
	// ErrDocumentExists indicates a document with the same title already exists.
	ErrDocumentExists = New(MakeCode(ServiceDocCenter, CategoryConflict, 1), http.StatusBadRequest, "Document with this title already exists")

	// ErrDocumentNotFound indicates the document id has no record.
	ErrDocumentNotFound = New(MakeCode(ServiceDocCenter, CategoryResource, 1), http.StatusNotFound, "Document not found")

	// ErrMissingFile indicates the upload request carried no file.
	ErrMissingFile = New(MakeCode(ServiceDocCenter, CategoryRequest, 1), http.StatusBadRequest, "No file uploaded")

	// ErrUnsupportedFormat indicates the file extension has no extraction strategy.
	ErrUnsupportedFormat = New(MakeCode(ServiceDocCenter, CategoryRequest, 2), http.StatusBadRequest, "Unsupported file format")

	// ErrUserExists indicates the username or email is already registered.
	ErrUserExists = New(MakeCode(ServiceDocCenter, CategoryConflict, 2), http.StatusBadRequest, "Username already registered")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = New(MakeCode(ServiceDocCenter, CategoryAuth, 1), http.StatusBadRequest, "Incorrect username or password")

	// ErrBlobStore indicates the object store rejected the upload.
	ErrBlobStore = New(MakeCode(ServiceDocCenter, CategoryUpstream, 1), http.StatusInternalServerError, "Failed to store file")

	// ErrExtraction indicates text extraction failed.
	ErrExtraction = New(MakeCode(ServiceDocCenter, CategoryUpstream, 2), http.StatusInternalServerError, "Failed to extract text from file")

	// ErrIndexing indicates the search index rejected the document.
	ErrIndexing = New(MakeCode(ServiceDocCenter, CategoryUpstream, 3), http.StatusInternalServerError, "Failed to index document")

	// ErrSearch indicates the search query itself failed.
	ErrSearch = New(MakeCode(ServiceDocCenter, CategoryUpstream, 4), http.StatusInternalServerError, "Search failed")

	// ErrAnswerExtraction indicates the QA backend failed to produce an answer.
	ErrAnswerExtraction = New(MakeCode(ServiceDocCenter, CategoryUpstream, 5), http.StatusInternalServerError, "Failed to generate answer")
)
