package recordings

import (
	"github.com/gin-gonic/gin"
	"github.com/voxnote/memo-api/api/types"
)

// RegisterRoutes registers recording audio routes on the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", List(deps))
	group.POST("/:id/audio", Upload(deps))
	group.GET("/:id/audio", Get(deps))
	group.GET("/:id", Describe(deps))
	group.PATCH("/:id/audio", UpdateMetadata(deps))
	group.DELETE("/:id/audio", Delete(deps))
}
