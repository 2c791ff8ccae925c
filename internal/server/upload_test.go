package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG signature plus padding; enough for content sniffing.
var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

func multipartBody(t *testing.T, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for name, content := range files {
		fw, err := mw.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func doUpload(s *Server, path string, body *bytes.Buffer, contentType, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestUploadSketchImage(t *testing.T) {
	s := newTestServer(t, &fakes{})
	token := adminToken(t, s)

	body, contentType := multipartBody(t, "image", map[string][]byte{"sketch.png": pngBytes})
	w := doUpload(s, "/api/upload/sketch", body, contentType, token)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Body.String(), `"url":"/uploads/sketch-`)
	assert.Contains(t, w.Body.String(), `"mimetype":"image/png"`)

	// Exactly one stored file, named by the server, not the client
	entries, err := os.ReadDir(s.cfg.Upload.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^sketch-\d+-[0-9a-f]{8}\.png$`, entries[0].Name())
	assert.NotEqual(t, "sketch.png", entries[0].Name())
}

func TestUploadRejectsNonImage(t *testing.T) {
	s := newTestServer(t, &fakes{})

	body, contentType := multipartBody(t, "image", map[string][]byte{
		"notes.txt": []byte("just some text pretending to be art"),
	})
	w := doUpload(s, "/api/upload/sketch", body, contentType, adminToken(t, s))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JPEG, PNG and WebP")

	entries, err := os.ReadDir(s.cfg.Upload.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected upload must not be stored")
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	s := newTestServer(t, &fakes{})
	s.cfg.Upload.MaxBytes = 16

	body, contentType := multipartBody(t, "image", map[string][]byte{"sketch.png": pngBytes})
	w := doUpload(s, "/api/upload/sketch", body, contentType, adminToken(t, s))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadWithoutFile(t *testing.T) {
	s := newTestServer(t, &fakes{})

	body, contentType := multipartBody(t, "unrelated", map[string][]byte{"x.png": pngBytes})
	w := doUpload(s, "/api/upload/sketch", body, contentType, adminToken(t, s))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file uploaded")
}

func TestUploadMultiple(t *testing.T) {
	s := newTestServer(t, &fakes{})

	body, contentType := multipartBody(t, "images", map[string][]byte{
		"a.png": pngBytes,
		"b.png": pngBytes,
	})
	w := doUpload(s, "/api/upload/multiple", body, contentType, adminToken(t, s))
	require.Equal(t, http.StatusOK, w.Code)

	entries, err := os.ReadDir(s.cfg.Upload.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		info, err := os.Stat(filepath.Join(s.cfg.Upload.Dir, e.Name()))
		require.NoError(t, err)
		assert.Equal(t, int64(len(pngBytes)), info.Size())
	}
}

func TestUploadRequiresAuth(t *testing.T) {
	s := newTestServer(t, &fakes{})

	body, contentType := multipartBody(t, "image", map[string][]byte{"sketch.png": pngBytes})
	req := httptest.NewRequest(http.MethodPost, "/api/upload/sketch", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
