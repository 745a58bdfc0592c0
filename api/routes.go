package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/voxnote/memo-api/api/health"
	"github.com/voxnote/memo-api/api/recordings"
	"github.com/voxnote/memo-api/api/sessions"
	"github.com/voxnote/memo-api/api/storage"
	"github.com/voxnote/memo-api/api/types"
	"github.com/voxnote/memo-api/api/version"
	"github.com/voxnote/memo-api/api/waveform"
	blobsService "github.com/voxnote/memo-api/internal/services/blobs"
	editorService "github.com/voxnote/memo-api/internal/services/editor"
	waveformsService "github.com/voxnote/memo-api/internal/services/waveforms"
	"github.com/voxnote/memo-api/pkg/codec"
	"github.com/voxnote/memo-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	engine.NoRoute(NotFoundHandler())

	v1 := engine.Group("/api/v1")

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	if deps.Registry == nil {
		deps.Registry = codec.DefaultRegistry()
	}
	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = cfg.Server.MaxUploadBytes
	}
	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = 64 * 1024 * 1024
	}
	if deps.PixelsPerSecond <= 0 {
		deps.PixelsPerSecond = cfg.Audio.PixelsPerSecond
	}
	if deps.PixelsPerSecond <= 0 {
		deps.PixelsPerSecond = 100
	}

	if deps.DB != nil && deps.DB.DB != nil {
		initializeServices(deps)

		// Recording audio routes carry payloads, so they get the large
		// body cap and a moderate rate limit (10 req/s, burst of 20)
		recordingGroup := v1.Group("/recordings")
		recordingGroup.Use(RequestSizeLimitWithSize(deps.MaxUploadBytes))
		recordingGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		recordings.RegisterRoutes(recordingGroup, deps)

		// Waveform rendering is CPU bound on cache misses (5 req/s, burst of 10)
		waveformGroup := v1.Group("/recordings")
		waveformGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
		waveform.RegisterRoutes(waveformGroup, deps)

		// Session routes are small JSON bodies (10 req/s, burst of 20)
		sessionGroup := v1.Group("/sessions")
		sessionGroup.Use(RequestSizeLimit())
		sessionGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		sessions.RegisterRoutes(sessionGroup, deps)

		// Storage administration is strictly limited (1 req/s, burst of 2)
		storageGroup := v1.Group("/storage")
		storageGroup.Use(RequestSizeLimit())
		storageGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 2))
		storage.RegisterRoutes(storageGroup, deps)
	}

	return nil
}

// initializeServices builds the service graph for handlers that have
// not been given one
func initializeServices(deps *types.Dependencies) {
	if deps.BlobService == nil {
		deps.BlobService = blobsService.NewService(blobsService.NewRepository(deps.DB.DB))
	}
	if deps.WaveformService == nil {
		deps.WaveformService = waveformsService.NewService(waveformsService.NewRepository(deps.DB.DB))
	}
	if deps.EditorService == nil {
		deps.EditorService = editorService.NewService(deps.BlobService, deps.WaveformService, deps.Registry)
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
