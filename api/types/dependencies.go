package types

import (
	"github.com/voxnote/memo-api/internal/database"
	"github.com/voxnote/memo-api/internal/services/blobs"
	"github.com/voxnote/memo-api/internal/services/editor"
	"github.com/voxnote/memo-api/internal/services/waveforms"
	"github.com/voxnote/memo-api/pkg/codec"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	BlobService     blobs.Service
	WaveformService waveforms.Service
	EditorService   *editor.Service
	Registry        *codec.Registry

	// MaxUploadBytes caps audio upload bodies. Zero means the
	// global default applies.
	MaxUploadBytes int64

	// PixelsPerSecond is the waveform rendering density used when a
	// request does not ask for a specific one.
	PixelsPerSecond float64
}
