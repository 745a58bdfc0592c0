package storage

import (
	"github.com/gin-gonic/gin"
	"github.com/voxnote/memo-api/api/types"
)

// RegisterRoutes registers storage administration routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("/stats", GetStats(deps))
	group.POST("/reset", Reset(deps))
}
