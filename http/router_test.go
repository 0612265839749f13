package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sagarc03/textstore"
	"github.com/sagarc03/textstore/filesystem"
	textstorehttp "github.com/sagarc03/textstore/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStoreRouter wires the router to a real filesystem store in a temp dir.
func newStoreRouter(t *testing.T) (http.Handler, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "data")
	storage := filesystem.NewFileStorage(dir)
	service, err := textstore.NewTextService(storage, textstore.DefaultWriteFile)
	require.NoError(t, err)

	config := &textstorehttp.HandlerConfig{
		CORS: textstorehttp.CORSConfig{AllowedOrigins: []string{"*"}},
	}
	return textstorehttp.NewHandler(config, service).Router(), dir
}

func TestRouter_AppendThenRead(t *testing.T) {
	router, _ := newStoreRouter(t)

	rec := serve(router, http.MethodGet, "/writeFile/?text=BCIT")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `Successfully appended: "BCIT"`, rec.Body.String())

	rec = serve(router, http.MethodGet, "/readFile/file.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "BCIT\n", rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestRouter_NonStandardMethods(t *testing.T) {
	router, _ := newStoreRouter(t)

	rec := serve(router, "PROPFIND", "/writeFile/?text=x")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, "FOO", "/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "/readFile/<filename>")

	rec = serve(router, http.MethodGet, "/readFile/file.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "x\n", rec.Body.String())
}

func TestRouter_AppendPreservesOrder(t *testing.T) {
	router, _ := newStoreRouter(t)

	for _, text := range []string{"T1", "T2"} {
		rec := serve(router, http.MethodPost, "/writeFile?text="+text)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serve(router, http.MethodGet, "/readFile/file.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "T1\nT2\n", rec.Body.String())
}

func TestRouter_ReadNeverWritten(t *testing.T) {
	router, _ := newStoreRouter(t)

	rec := serve(router, http.MethodGet, "/readFile/never.txt")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "never.txt")
	assert.Equal(t, "Error 404: File 'never.txt' not found", rec.Body.String())
}

func TestRouter_ReadOtherValidFile(t *testing.T) {
	router, dir := newStoreRouter(t)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes-1.txt"), []byte("hello\n"), 0o644))

	rec := serve(router, http.MethodGet, "/readFile/notes-1.txt")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello\n", rec.Body.String())
}

func TestRouter_RejectsUnsafeFilenamesEvenIfPresent(t *testing.T) {
	router, dir := newStoreRouter(t)
	require.NoError(t, os.MkdirAll(dir, 0o750))

	// Files that would match some of the rejected names.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("md"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(dir), "secret.txt"), []byte("secret"), 0o644))

	targets := []string{
		"/readFile/notes.md",
		"/readFile/..%2Fsecret.txt",
		"/readFile/../secret.txt",
		"/readFile/sub/secret.txt",
		"/readFile/sub%5Csecret.txt",
		"/readFile/a..txt",
		"/readFile/file",
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			rec := serve(router, http.MethodGet, target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotContains(t, rec.Body.String(), "secret")
		})
	}
}

func TestRouter_MissingTextDoesNotMutate(t *testing.T) {
	router, dir := newStoreRouter(t)

	rec := serve(router, http.MethodGet, "/writeFile/")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, err := os.Stat(filepath.Join(dir, "file.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRouter_OptionsDoesNotMutate(t *testing.T) {
	router, dir := newStoreRouter(t)

	rec := serve(router, http.MethodOptions, "/writeFile/?text=sneaky")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	_, err := os.Stat(filepath.Join(dir, "file.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRouter_ServedOverHTTP(t *testing.T) {
	router, _ := newStoreRouter(t)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Post(server.URL+"/writeFile/?text=over-the-wire", "text/plain", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
