package waveform

import (
	"context"
	"encoding/json"
	"math"
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
	"github.com/voxnote/memo-api/pkg/audio"
	"github.com/voxnote/memo-api/pkg/codec"
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
		Registry:        codec.DefaultRegistry(),
		PixelsPerSecond: 100,
	}

	router := gin.New()
	RegisterRoutes(router.Group("/recordings"), deps)
	return router, deps
}

func storeTone(t *testing.T, deps *types.Dependencies, recordingID string, seconds float64) {
	t.Helper()

	b := audio.Allocate(8000, 1, seconds)
	for i := range b.Channels[0] {
		ts := float64(i) / 8000.0
		b.Channels[0][i] = 0.5 * math.Sin(2*math.Pi*220*ts)
	}

	data, err := codec.EncodeWAV(b)
	require.NoError(t, err)

	_, err = deps.BlobService.Put(context.Background(), blobs.PutRequest{
		RecordingID:     recordingID,
		Data:            data,
		Format:          "wav",
		DurationSeconds: seconds,
	})
	require.NoError(t, err)
}

func getWaveform(t *testing.T, router *gin.Engine, path string) (int, types.WaveformResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)

	var response types.WaveformResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w.Code, response
}

func TestGet_RendersAndCaches(t *testing.T) {
	router, deps := setupRouter(t)
	storeTone(t, deps, "rec-1", 2.0)

	code, response := getWaveform(t, router, "/recordings/rec-1/waveform")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, response.Waveform)

	wf := response.Waveform
	assert.Equal(t, "rec-1", wf.RecordingID)
	assert.InDelta(t, 2.0, wf.Duration, 1e-6)
	assert.Equal(t, 8000, wf.SampleRate)
	assert.False(t, wf.Cached)

	// 100 px/s over 2 s gives 200 windows, two values each.
	assert.Equal(t, 200, wf.Resolution)
	assert.Len(t, wf.Peaks, 400)

	// Mins and maxes of a 0.5 amplitude tone straddle zero.
	for i := 0; i+1 < len(wf.Peaks); i += 2 {
		assert.LessOrEqual(t, wf.Peaks[i], wf.Peaks[i+1])
		assert.GreaterOrEqual(t, wf.Peaks[i], -0.51)
		assert.LessOrEqual(t, wf.Peaks[i+1], 0.51)
	}

	code, response = getWaveform(t, router, "/recordings/rec-1/waveform")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, response.Waveform.Cached)
}

func TestGet_CustomDensity(t *testing.T) {
	router, deps := setupRouter(t)
	storeTone(t, deps, "rec-1", 1.0)

	code, response := getWaveform(t, router, "/recordings/rec-1/waveform?pixels_per_second=10")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 10, response.Waveform.Resolution)
}

func TestGet_ZoomChangeRerenders(t *testing.T) {
	router, deps := setupRouter(t)
	storeTone(t, deps, "rec-1", 2.0)

	code, response := getWaveform(t, router, "/recordings/rec-1/waveform?pixels_per_second=10")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 20, response.Waveform.Resolution)
	assert.False(t, response.Waveform.Cached)

	// A different density must not be served from the stale cache.
	code, response = getWaveform(t, router, "/recordings/rec-1/waveform?pixels_per_second=50")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 100, response.Waveform.Resolution)
	assert.False(t, response.Waveform.Cached)

	// Repeating the new density hits the refreshed cache.
	code, response = getWaveform(t, router, "/recordings/rec-1/waveform?pixels_per_second=50")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 100, response.Waveform.Resolution)
	assert.True(t, response.Waveform.Cached)
}

func TestGet_BadDensity(t *testing.T) {
	router, deps := setupRouter(t)
	storeTone(t, deps, "rec-1", 1.0)

	for _, q := range []string{"0", "-5", "abc"} {
		code, _ := getWaveform(t, router, "/recordings/rec-1/waveform?pixels_per_second="+q)
		assert.Equal(t, http.StatusBadRequest, code, "density %q", q)
	}
}

func TestGet_MissingRecording(t *testing.T) {
	router, _ := setupRouter(t)

	code, _ := getWaveform(t, router, "/recordings/ghost/waveform")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGet_CorruptAudio(t *testing.T) {
	router, deps := setupRouter(t)

	_, err := deps.BlobService.Put(context.Background(), blobs.PutRequest{
		RecordingID: "rec-1",
		Data:        []byte("definitely not a wav file"),
		Format:      "wav",
	})
	require.NoError(t, err)

	code, _ := getWaveform(t, router, "/recordings/rec-1/waveform")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestDelete_InvalidatesCache(t *testing.T) {
	router, deps := setupRouter(t)
	storeTone(t, deps, "rec-1", 1.0)

	code, _ := getWaveform(t, router, "/recordings/rec-1/waveform")
	require.Equal(t, http.StatusOK, code)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/recordings/rec-1/waveform", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	code, response := getWaveform(t, router, "/recordings/rec-1/waveform")
	require.Equal(t, http.StatusOK, code)
	assert.False(t, response.Waveform.Cached)
}
