package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sagarc03/textstore"
)

// ContentTypeText is the content type of every body this package writes.
const ContentTypeText = "text/plain; charset=utf-8"

// Client-facing messages.
const (
	MsgMissingText     = `Missing required query parameter "text"`
	MsgMissingFilename = "Missing filename"
	MsgInvalidFilename = "Invalid filename: must end in .txt and contain only letters, digits, '_', '-' or '.'"
	MsgInvalidInput    = "Invalid input"
	MsgNotFound        = "Not found"
	MsgInternalError   = "Internal server error"
)

// WriteContent writes a success body with the given status and content type.
func WriteContent(w http.ResponseWriter, code int, contentType string, body []byte) error {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, err := w.Write(body)
	return err
}

// WriteError writes a plain text error response
func WriteError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", ContentTypeText)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if _, err := io.WriteString(w, message); err != nil {
		slog.Error("failed to write error response", "error", err)
	}
}

// WriteNotFound writes the 404 response for a missing file.
func WriteNotFound(w http.ResponseWriter, filename string) {
	WriteError(w, http.StatusNotFound, fmt.Sprintf("Error 404: File '%s' not found", filename))
}

// WriteAppended writes the confirmation for a successful append.
func WriteAppended(w http.ResponseWriter, text string) error {
	return WriteContent(w, http.StatusOK, ContentTypeText, []byte(`Successfully appended: "`+text+`"`))
}

// HandleError writes appropriate error response based on error type.
// Server errors never expose the underlying error to the client.
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, textstore.ErrMissingText):
		WriteError(w, http.StatusBadRequest, MsgMissingText)
	case errors.Is(err, textstore.ErrMissingFilename):
		WriteError(w, http.StatusBadRequest, MsgMissingFilename)
	case errors.Is(err, textstore.ErrInvalidFilename):
		WriteError(w, http.StatusBadRequest, MsgInvalidFilename)
	case errors.Is(err, textstore.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, MsgInvalidInput)
	case errors.Is(err, textstore.ErrNotFound):
		WriteError(w, http.StatusNotFound, MsgNotFound)
	default:
		slog.Error("request error", "error", err)
		WriteError(w, http.StatusInternalServerError, MsgInternalError)
		return
	}

	slog.Debug("client error", "error", err)
}
