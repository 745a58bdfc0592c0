package waveform

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/voxnote/memo-api/api/types"
	"github.com/voxnote/memo-api/internal/models"
	"github.com/voxnote/memo-api/internal/services/blobs"
	"github.com/voxnote/memo-api/internal/services/waveforms"
	"github.com/voxnote/memo-api/pkg/codec"
)

// Get returns the rendered peak series for a recording. A cached series
// is served only when it matches the requested pixel density; otherwise
// the stored audio is decoded, re-rendered at the new density, and the
// cache is replaced.
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordingID := c.Param("id")

		pixelsPerSecond := deps.PixelsPerSecond
		if pixelsPerSecond <= 0 {
			pixelsPerSecond = 100
		}
		if raw := c.Query("pixels_per_second"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "pixels_per_second must be a positive number",
				})
				return
			}
			pixelsPerSecond = parsed
		}

		cached, err := deps.WaveformService.GetWaveform(c.Request.Context(), recordingID)
		if err == nil {
			want := waveforms.ResolutionForDuration(cached.Duration, cached.SampleRate, pixelsPerSecond)
			if cached.Resolution == want {
				respondWaveform(c, cached, true)
				return
			}
			// Zoom changed since the cache was written; fall through and
			// re-render at the requested density.
		} else if !errors.Is(err, waveforms.ErrWaveformNotFound) {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to read waveform cache",
				Error:   err.Error(),
			})
			return
		}

		blob, err := deps.BlobService.GetByRecordingID(c.Request.Context(), recordingID)
		if err != nil {
			if errors.Is(err, blobs.ErrBlobNotFound) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Recording has no stored audio",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Storage error",
				Error:   err.Error(),
			})
			return
		}

		registry := deps.Registry
		if registry == nil {
			registry = codec.DefaultRegistry()
		}
		buffer, err := registry.Decode(blob.Format, blob.Data)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Stored audio could not be decoded",
				Error:   err.Error(),
			})
			return
		}

		model, err := waveforms.BuildModel(recordingID, buffer, pixelsPerSecond)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to render waveform",
				Error:   err.Error(),
			})
			return
		}

		if err := deps.WaveformService.SaveWaveform(c.Request.Context(), model); err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to cache waveform",
				Error:   err.Error(),
			})
			return
		}

		respondWaveform(c, model, false)
	}
}

// Delete drops the cached series so the next read re-renders
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordingID := c.Param("id")

		if err := deps.WaveformService.DeleteWaveform(c.Request.Context(), recordingID); err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to delete waveform",
				Error:   err.Error(),
			})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func respondWaveform(c *gin.Context, model *models.Waveform, cached bool) {
	peaks, err := model.Peaks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Stored waveform data is corrupt",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.WaveformResponse{
		BaseResponse: types.BaseResponse{Status: types.StatusOK},
		Waveform: &types.WaveformData{
			RecordingID: model.RecordingID,
			Duration:    model.Duration,
			Resolution:  model.Resolution,
			SampleRate:  model.SampleRate,
			Peaks:       peaks,
			Cached:      cached,
		},
	})
}
