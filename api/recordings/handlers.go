package recordings

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voxnote/memo-api/api/types"
	"github.com/voxnote/memo-api/internal/models"
	"github.com/voxnote/memo-api/internal/services/blobs"
)

// UploadRequest is the JSON body for storing a recording's audio. The
// payload travels base64-encoded.
type UploadRequest struct {
	Format          string         `json:"format" binding:"required"`
	Data            string         `json:"data" binding:"required"`
	DurationSeconds float64        `json:"duration_seconds"`
	Metadata        map[string]any `json:"metadata"`
}

// MetadataRequest is a partial metadata-only update
type MetadataRequest struct {
	Format          *string        `json:"format"`
	DurationSeconds *float64       `json:"duration_seconds"`
	Metadata        map[string]any `json:"metadata"`
}

// Upload stores the audio payload for a recording
func Upload(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordingID := c.Param("id")

		var req UploadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request body",
				Error:   err.Error(),
			})
			return
		}

		data, err := blobs.DecodeBase64(req.Data)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Audio payload is not valid base64",
				Error:   err.Error(),
			})
			return
		}

		blobID, err := deps.BlobService.Put(c.Request.Context(), blobs.PutRequest{
			RecordingID:     recordingID,
			Data:            data,
			Format:          req.Format,
			DurationSeconds: req.DurationSeconds,
			Metadata:        req.Metadata,
		})
		if err != nil {
			switch {
			case errors.Is(err, blobs.ErrDuplicateRecording):
				c.JSON(http.StatusConflict, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Recording already has stored audio",
				})
			case errors.Is(err, blobs.ErrInvalidRecordingID), errors.Is(err, blobs.ErrEmptyPayload):
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: err.Error(),
				})
			default:
				c.JSON(http.StatusInternalServerError, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Failed to store audio",
					Error:   err.Error(),
				})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":       types.StatusOK,
			"blob_id":      blobID,
			"recording_id": recordingID,
		})
	}
}

// Get returns a recording's stored audio. With ?encoding=base64 the
// payload is embedded in the JSON envelope; otherwise the raw bytes
// are served with the matching content type.
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordingID := c.Param("id")

		blob, err := deps.BlobService.GetByRecordingID(c.Request.Context(), recordingID)
		if err != nil {
			respondBlobError(c, err)
			return
		}

		if c.Query("encoding") == "base64" {
			c.JSON(http.StatusOK, types.RecordingResponse{
				BaseResponse: types.BaseResponse{Status: types.StatusOK},
				Recording:    toRecording(blob),
				Data:         blobs.EncodeBase64(blob.Data),
			})
			return
		}

		c.Data(http.StatusOK, contentTypeFor(blob.Format), blob.Data)
	}
}

// Describe returns a recording's blob record without the payload
func Describe(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordingID := c.Param("id")

		blob, err := deps.BlobService.GetByRecordingID(c.Request.Context(), recordingID)
		if err != nil {
			respondBlobError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.RecordingResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Recording:    toRecording(blob),
		})
	}
}

// UpdateMetadata applies a metadata-only partial update
func UpdateMetadata(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordingID := c.Param("id")

		var req MetadataRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request body",
				Error:   err.Error(),
			})
			return
		}

		blob, err := deps.BlobService.GetByRecordingID(c.Request.Context(), recordingID)
		if err != nil {
			respondBlobError(c, err)
			return
		}

		update := blobs.MetadataUpdate{
			Format:          req.Format,
			DurationSeconds: req.DurationSeconds,
			Metadata:        req.Metadata,
		}
		if err := deps.BlobService.UpdateMetadata(c.Request.Context(), blob.ID, update); err != nil {
			respondBlobError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Metadata updated"})
	}
}

// Delete removes a recording's stored audio and its cached waveform
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordingID := c.Param("id")

		if err := deps.BlobService.DeleteByRecordingID(c.Request.Context(), recordingID); err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to delete audio",
				Error:   err.Error(),
			})
			return
		}

		if deps.WaveformService != nil {
			// Stale cache rows are harmless; deletion failures are not surfaced.
			if err := deps.WaveformService.DeleteWaveform(c.Request.Context(), recordingID); err != nil {
				log.Printf("[WARN] Failed to drop cached waveform for %s: %v", recordingID, err)
			}
		}

		c.Status(http.StatusNoContent)
	}
}

// List returns every stored recording without payloads
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := deps.BlobService.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list recordings",
				Error:   err.Error(),
			})
			return
		}

		out := make([]types.Recording, 0, len(all))
		for i := range all {
			out = append(out, *toRecording(&all[i]))
		}

		c.JSON(http.StatusOK, types.RecordingsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Recordings:   out,
			Count:        len(out),
		})
	}
}

func toRecording(blob *models.AudioBlob) *types.Recording {
	meta, err := blob.Metadata()
	if err != nil {
		meta = nil
	}
	if len(meta) == 0 {
		meta = nil
	}
	return &types.Recording{
		BlobID:          blob.ID,
		RecordingID:     blob.RecordingID,
		Format:          blob.Format,
		SizeBytes:       blob.SizeBytes,
		DurationSeconds: blob.DurationSeconds,
		Metadata:        meta,
		CreatedAt:       blob.CreatedAt,
		UpdatedAt:       blob.UpdatedAt,
	}
}

func respondBlobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, blobs.ErrBlobNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Recording has no stored audio",
		})
	case errors.Is(err, blobs.ErrInvalidRecordingID):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status:  types.StatusError,
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Storage error",
			Error:   err.Error(),
		})
	}
}

func contentTypeFor(format string) string {
	switch format {
	case "mp3":
		return "audio/mpeg"
	case "ogg", "vorbis":
		return "audio/ogg"
	default:
		return "audio/wav"
	}
}
