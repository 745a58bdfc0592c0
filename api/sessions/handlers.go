package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voxnote/memo-api/api/types"
	"github.com/voxnote/memo-api/internal/services/blobs"
	"github.com/voxnote/memo-api/internal/services/editlog"
	"github.com/voxnote/memo-api/internal/services/editor"
	"github.com/voxnote/memo-api/pkg/codec"
)

// OpenRequest starts an edit session for a recording
type OpenRequest struct {
	RecordingID string `json:"recording_id" binding:"required"`
}

// EditRequest is the tagged edit union on the wire: "kind" selects the
// operation, the remaining fields are its parameters.
type EditRequest struct {
	Kind       string   `json:"kind" binding:"required"`
	Start      *float64 `json:"start"`
	End        *float64 `json:"end"`
	TargetPeak *float64 `json:"target_peak"`
	Threshold  *float64 `json:"threshold"`
}

// Open creates a new edit session
func Open(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req OpenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request body",
				Error:   err.Error(),
			})
			return
		}

		info, err := deps.EditorService.OpenSession(c.Request.Context(), req.RecordingID)
		if err != nil {
			switch {
			case errors.Is(err, blobs.ErrBlobNotFound):
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Recording has no stored audio",
				})
			case errors.Is(err, codec.ErrUnsupportedFormat), errors.Is(err, codec.ErrCorruptAudio):
				c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Stored audio could not be decoded",
					Error:   err.Error(),
				})
			default:
				c.JSON(http.StatusInternalServerError, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Failed to open session",
					Error:   err.Error(),
				})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":  types.StatusOK,
			"session": info,
		})
	}
}

// Describe returns the current state of a session
func Describe(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := deps.EditorService.GetSession(c.Param("id"))
		if err != nil {
			respondSessionError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  types.StatusOK,
			"session": info,
		})
	}
}

// AppendEdit appends one edit to the session's log
func AppendEdit(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EditRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request body",
				Error:   err.Error(),
			})
			return
		}

		edit, err := req.toEdit()
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: err.Error(),
			})
			return
		}

		editID, err := deps.EditorService.AppendEdit(c.Param("id"), edit)
		if err != nil {
			respondSessionError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":  types.StatusOK,
			"edit_id": editID,
		})
	}
}

// ListEdits returns the session's pending edits in append order
func ListEdits(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := deps.EditorService.ListEdits(c.Param("id"))
		if err != nil {
			respondSessionError(c, err)
			return
		}

		edits := make([]types.EditEntry, 0, len(entries))
		for _, entry := range entries {
			edits = append(edits, types.EditEntry{
				ID:        entry.ID,
				CreatedAt: entry.CreatedAt,
				Kind:      editlog.Kind(entry.Edit),
				Params:    entry.Edit,
			})
		}

		c.JSON(http.StatusOK, types.EditsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Edits:        edits,
			Count:        len(edits),
		})
	}
}

// RemoveEdit removes one edit from the session's log by id
func RemoveEdit(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.EditorService.RemoveEdit(c.Param("id"), c.Param("editID")); err != nil {
			respondSessionError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// Undo removes the most recently appended edit. Undoing an empty log
// is a no-op.
func Undo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.EditorService.Undo(c.Param("id")); err != nil {
			respondSessionError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK})
	}
}

// Preview applies the pending edits without persisting anything and
// reports the resulting duration and peak
func Preview(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := deps.EditorService.Preview(c.Param("id"))
		if err != nil {
			respondSessionError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  types.StatusOK,
			"preview": result,
		})
	}
}

// Commit bakes the pending edits into a new stored blob
func Commit(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := deps.EditorService.GetSession(c.Param("id"))
		if err != nil {
			respondSessionError(c, err)
			return
		}

		blobID, err := deps.EditorService.Commit(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondSessionError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":              types.StatusOK,
			"blob_id":             blobID,
			"export_recording_id": info.RecordingID + editor.ExportSuffix,
		})
	}
}

// Close discards a session and its pending edits
func Close(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.EditorService.CloseSession(c.Param("id")); err != nil {
			respondSessionError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// toEdit maps the wire union onto a concrete edit
func (req EditRequest) toEdit() (editlog.Edit, error) {
	switch req.Kind {
	case "cut":
		if req.Start == nil || req.End == nil {
			return nil, errors.New("cut requires start and end")
		}
		return editlog.Cut{Start: *req.Start, End: *req.End}, nil
	case "normalize":
		if req.TargetPeak == nil {
			return nil, errors.New("normalize requires target_peak")
		}
		return editlog.Normalize{TargetPeak: *req.TargetPeak}, nil
	case "reduce_noise":
		if req.Threshold == nil {
			return nil, errors.New("reduce_noise requires threshold")
		}
		return editlog.ReduceNoise{Threshold: *req.Threshold}, nil
	default:
		return nil, errors.New("unknown edit kind: " + req.Kind)
	}
}

func respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, editor.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Edit session not found",
		})
	case errors.Is(err, editor.ErrApplyInProgress):
		c.JSON(http.StatusConflict, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "An apply is already in progress for this session",
		})
	case errors.Is(err, editlog.ErrInvalidEdit):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status:  types.StatusError,
			Message: err.Error(),
		})
	case errors.Is(err, editlog.ErrEditNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Edit not found",
		})
	case errors.Is(err, editlog.ErrEmptyResult):
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Pending edits would remove all audio content",
		})
	default:
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Session operation failed",
			Error:   err.Error(),
		})
	}
}
