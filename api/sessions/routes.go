package sessions

import (
	"github.com/gin-gonic/gin"
	"github.com/voxnote/memo-api/api/types"
)

// RegisterRoutes registers edit session routes on the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("", Open(deps))
	group.GET("/:id", Describe(deps))
	group.DELETE("/:id", Close(deps))

	group.POST("/:id/edits", AppendEdit(deps))
	group.GET("/:id/edits", ListEdits(deps))
	group.DELETE("/:id/edits/:editID", RemoveEdit(deps))

	group.POST("/:id/undo", Undo(deps))
	group.POST("/:id/preview", Preview(deps))
	group.POST("/:id/commit", Commit(deps))
}
