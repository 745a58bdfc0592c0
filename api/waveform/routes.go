package waveform

import (
	"github.com/gin-gonic/gin"
	"github.com/voxnote/memo-api/api/types"
)

// RegisterRoutes registers waveform routes on the recordings group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/:id/waveform", Get(deps))
	group.DELETE("/:id/waveform", Delete(deps))
}
