package recordings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxnote/memo-api/api/types"
	"github.com/voxnote/memo-api/internal/database"
	"github.com/voxnote/memo-api/internal/models"
	"github.com/voxnote/memo-api/internal/services/blobs"
	"github.com/voxnote/memo-api/internal/services/waveforms"
)

func setupRouter(t *testing.T) (*gin.Engine, *types.Dependencies) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AudioBlob{}, &models.Waveform{}))
	t.Cleanup(func() { _ = db.Close() })

	deps := &types.Dependencies{
		DB:              db,
		BlobService:     blobs.NewService(blobs.NewRepository(db.DB)),
		WaveformService: waveforms.NewService(waveforms.NewRepository(db.DB)),
	}

	router := gin.New()
	RegisterRoutes(router.Group("/recordings"), deps)
	return router, deps
}

func uploadBody(t *testing.T, data []byte, format string) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(UploadRequest{
		Format:          format,
		Data:            blobs.EncodeBase64(data),
		DurationSeconds: 1.5,
		Metadata:        map[string]any{"title": "standup notes"},
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestUpload(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/recordings/rec-1/audio", uploadBody(t, []byte("payload"), "wav"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["blob_id"])
	assert.Equal(t, "rec-1", response["recording_id"])
}

func TestUpload_Duplicate(t *testing.T) {
	router, _ := setupRouter(t)

	for i, want := range []int{http.StatusCreated, http.StatusConflict} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/recordings/rec-1/audio", uploadBody(t, []byte("payload"), "wav"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, "attempt %d", i)
	}
}

func TestUpload_BadBase64(t *testing.T) {
	router, _ := setupRouter(t)

	body := `{"format":"wav","data":"not-base64!!!"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/recordings/rec-1/audio", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGet_Raw(t *testing.T) {
	router, _ := setupRouter(t)

	payload := []byte{0x52, 0x49, 0x46, 0x46, 0x00}
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/recordings/rec-1/audio", uploadBody(t, payload, "mp3"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/recordings/rec-1/audio", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, payload, w.Body.Bytes())
}

func TestGet_Base64(t *testing.T) {
	router, _ := setupRouter(t)

	payload := []byte("some audio bytes")
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/recordings/rec-1/audio", uploadBody(t, payload, "wav"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/recordings/rec-1/audio?encoding=base64", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response types.RecordingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Recording)
	assert.Equal(t, "rec-1", response.Recording.RecordingID)
	assert.Equal(t, "wav", response.Recording.Format)
	assert.Equal(t, int64(len(payload)), response.Recording.SizeBytes)

	decoded, err := blobs.DecodeBase64(response.Data)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestGet_Missing(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/recordings/ghost/audio", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDescribe(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/recordings/rec-1/audio", uploadBody(t, []byte("payload"), "wav"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/recordings/rec-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response types.RecordingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response.Recording)
	assert.Empty(t, response.Data)
	assert.Equal(t, "standup notes", response.Recording.Metadata["title"])
	assert.InDelta(t, 1.5, response.Recording.DurationSeconds, 1e-9)
}

func TestUpdateMetadata(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/recordings/rec-1/audio", uploadBody(t, []byte("payload"), "wav"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	patch := `{"duration_seconds": 3.25, "metadata": {"reviewed": true}}`
	w = httptest.NewRecorder()
	req = httptest.NewRequest("PATCH", "/recordings/rec-1/audio", bytes.NewReader([]byte(patch)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/recordings/rec-1", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var response types.RecordingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.InDelta(t, 3.25, response.Recording.DurationSeconds, 1e-9)
	assert.Equal(t, true, response.Recording.Metadata["reviewed"])
	assert.Equal(t, "standup notes", response.Recording.Metadata["title"])
}

func TestDelete_Idempotent(t *testing.T) {
	router, _ := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/recordings/rec-1/audio", uploadBody(t, []byte("payload"), "wav"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		req = httptest.NewRequest("DELETE", "/recordings/rec-1/audio", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code, "attempt %d", i)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/recordings/rec-1/audio", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList(t *testing.T) {
	router, _ := setupRouter(t)

	for _, id := range []string{"rec-1", "rec-2"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/recordings/"+id+"/audio", uploadBody(t, []byte("payload"), "wav"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/recordings", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response types.RecordingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	assert.Len(t, response.Recordings, 2)
}
