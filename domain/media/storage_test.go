package media

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveStoresUnderDatedPath(t *testing.T) {
	root := t.TempDir()
	storage := NewStorage(root)

	relPath, err := storage.Save(uploadHeader(t, "My Photo.PNG", "fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(relPath, "uploads/"), "got %q", relPath)
	assert.True(t, strings.HasSuffix(relPath, "_my_photo.png"), "got %q", relPath)
	assert.NotContains(t, relPath, " ")

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	storage := NewStorage(t.TempDir())

	_, err := storage.Save(uploadHeader(t, "payload.exe", "binary"))
	assert.Error(t, err)
}

func TestRemoveRefusesEscapingPaths(t *testing.T) {
	storage := NewStorage(t.TempDir())

	assert.Error(t, storage.Remove("../outside.txt"))
	assert.Error(t, storage.Remove("/etc/passwd"))
}
