package storage

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voxnote/memo-api/api/types"
)

// ResetRequest gates the destructive clear behind explicit confirmation
type ResetRequest struct {
	Confirm bool `json:"confirm"`
}

// GetStats returns blob store statistics
func GetStats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := deps.BlobService.GetStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to collect storage stats",
				Error:   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": types.StatusOK,
			"stats":  stats,
		})
	}
}

// Reset removes every stored blob. Requires {"confirm": true}.
func Reset(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetRequest
		if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Storage reset requires explicit confirmation",
			})
			return
		}

		if err := deps.BlobService.ClearAll(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to reset storage",
				Error:   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{Status: types.StatusOK, Message: "Storage cleared"})
	}
}
