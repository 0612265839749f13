package http_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sagarc03/textstore"
	textstorehttp "github.com/sagarc03/textstore/http"
	"github.com/stretchr/testify/assert"
)

func TestHandleError(t *testing.T) {
	tt := []struct {
		Name     string
		Err      error
		WantCode int
		WantBody string
	}{
		{Name: "missing text", Err: textstore.ErrMissingText, WantCode: http.StatusBadRequest, WantBody: textstorehttp.MsgMissingText},
		{Name: "missing filename", Err: textstore.ErrMissingFilename, WantCode: http.StatusBadRequest, WantBody: textstorehttp.MsgMissingFilename},
		{Name: "invalid filename", Err: textstore.ErrInvalidFilename, WantCode: http.StatusBadRequest, WantBody: textstorehttp.MsgInvalidFilename},
		{Name: "generic invalid input", Err: textstore.ErrInvalidInput, WantCode: http.StatusBadRequest, WantBody: textstorehttp.MsgInvalidInput},
		{Name: "not found", Err: textstore.ErrNotFound, WantCode: http.StatusNotFound, WantBody: textstorehttp.MsgNotFound},
		{Name: "wrapped invalid filename", Err: fmt.Errorf("read: %w", textstore.ErrInvalidFilename), WantCode: http.StatusBadRequest, WantBody: textstorehttp.MsgInvalidFilename},
		{Name: "joined not found", Err: errors.Join(errors.New("context"), textstore.ErrNotFound), WantCode: http.StatusNotFound, WantBody: textstorehttp.MsgNotFound},
		{Name: "internal", Err: errors.New("disk exploded at /var/lib"), WantCode: http.StatusInternalServerError, WantBody: textstorehttp.MsgInternalError},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			textstorehttp.HandleError(rec, tc.Err)

			assert.Equal(t, tc.WantCode, rec.Code)
			assert.Equal(t, tc.WantBody, rec.Body.String())
			assert.Equal(t, textstorehttp.ContentTypeText, rec.Header().Get("Content-Type"))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	textstorehttp.WriteError(rec, http.StatusBadRequest, "Invalid request")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Invalid request", rec.Body.String())
}

func TestWriteNotFound(t *testing.T) {
	rec := httptest.NewRecorder()

	textstorehttp.WriteNotFound(rec, "report.txt")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Error 404: File 'report.txt' not found", rec.Body.String())
}

func TestWriteAppended(t *testing.T) {
	rec := httptest.NewRecorder()

	err := textstorehttp.WriteAppended(rec, "BCIT")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `Successfully appended: "BCIT"`, rec.Body.String())
}

func TestWriteContent(t *testing.T) {
	rec := httptest.NewRecorder()

	err := textstorehttp.WriteContent(rec, http.StatusCreated, "application/x-custom", []byte("payload"))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/x-custom", rec.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "payload", rec.Body.String())
}
