package files

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"doctrans/internal/storage"
)

func newTestRouter(store storage.ObjectStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(NewService(store, "source-files", "translated-files"))
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func multipartUpload(t *testing.T, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUploadFile(t *testing.T) {
	store := new(mockObjectStore)
	store.On("Put", mock.Anything, "source-files", mock.AnythingOfType("string"),
		[]byte("document body"), mock.AnythingOfType("string")).Return(nil)
	r := newTestRouter(store)

	body, contentType := multipartUpload(t, "report.docx", []byte("document body"))
	req := httptest.NewRequest(http.MethodPost, "/api/uploadFile", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "File uploaded successfully", resp["message"])
	assert.True(t, strings.HasSuffix(resp["fileName"].(string), "_report.docx"))
	assert.EqualValues(t, 13, resp["size"])
}

func TestUploadFile_NoFile(t *testing.T) {
	r := newTestRouter(new(mockObjectStore))

	req := httptest.NewRequest(http.MethodPost, "/api/uploadFile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file uploaded")
}

func TestGetFiles(t *testing.T) {
	store := new(mockObjectStore)
	store.On("List", mock.Anything, "source-files").Return([]storage.BlobInfo{
		{Key: "100_report.docx", Size: 10},
	}, nil)
	store.On("List", mock.Anything, "translated-files").Return([]storage.BlobInfo{
		{Key: "de/100_report.docx", Size: 12},
	}, nil)
	r := newTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/getFiles", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp GetFilesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.FileGroups, 1)
	assert.Equal(t, "report.docx", resp.FileGroups[0].OriginalFile.DisplayName)
	require.Len(t, resp.FileGroups[0].Translations, 1)
	assert.Equal(t, "de", resp.FileGroups[0].Translations[0].Language)
}

func TestGetFiles_ListingFailureDegradesToEmpty(t *testing.T) {
	store := new(mockObjectStore)
	store.On("List", mock.Anything, "source-files").Return(nil, assert.AnError)
	r := newTestRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/getFiles", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp["fileGroups"])
	assert.NotEmpty(t, resp["error"])
}

func TestDownloadFile(t *testing.T) {
	store := new(mockObjectStore)
	store.On("Get", mock.Anything, "source-files", "100_report.docx").
		Return([]byte("document body"), nil)
	r := newTestRouter(store)

	req := httptest.NewRequest(http.MethodGet,
		"/api/downloadFile?fileName=100_report.docx&container=source-files", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "document body", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), `"report.docx"`)
}

func TestDownloadFile_MissingParams(t *testing.T) {
	r := newTestRouter(new(mockObjectStore))

	req := httptest.NewRequest(http.MethodGet, "/api/downloadFile?fileName=a.txt", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteFile_NotFound(t *testing.T) {
	store := new(mockObjectStore)
	store.On("Delete", mock.Anything, "source-files", "missing").
		Return(storage.ErrBlobNotFound)
	r := newTestRouter(store)

	body := bytes.NewBufferString(`{"fileName":"missing"}`)
	req := httptest.NewRequest(http.MethodDelete, "/api/deleteFile", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
