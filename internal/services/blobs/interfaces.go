package blobs

import (
	"context"

	"github.com/voxnote/memo-api/internal/models"
)

// PutRequest carries everything needed to persist a recording's audio.
type PutRequest struct {
	RecordingID     string
	Data            []byte
	Format          string
	DurationSeconds float64
	Metadata        map[string]any
}

// MetadataUpdate is a partial, metadata-only update. Nil fields are
// left untouched; the byte payload is never updated in place.
type MetadataUpdate struct {
	Format          *string
	DurationSeconds *float64
	Metadata        map[string]any
}

// Stats summarizes the store for the storage-health view.
type Stats struct {
	Count        int64 `json:"count"`
	TotalBytes   int64 `json:"total_bytes"`
	AverageBytes int64 `json:"average_bytes"`
}

// Service defines the blob store operations exposed to the UI shell.
type Service interface {
	// Put stores a recording's audio. Fails with ErrDuplicateRecording
	// when the recording already has a blob.
	Put(ctx context.Context, req PutRequest) (string, error)

	// Get retrieves a blob by its id; (nil, ErrBlobNotFound) when absent.
	Get(ctx context.Context, blobID string) (*models.AudioBlob, error)

	// GetByRecordingID retrieves the blob owned by a recording.
	GetByRecordingID(ctx context.Context, recordingID string) (*models.AudioBlob, error)

	// UpdateMetadata applies a metadata-only partial update.
	UpdateMetadata(ctx context.Context, blobID string, update MetadataUpdate) error

	// Delete removes a blob by id. Deleting a missing blob is a no-op.
	Delete(ctx context.Context, blobID string) error

	// DeleteByRecordingID removes the blob owned by a recording, if any.
	DeleteByRecordingID(ctx context.Context, recordingID string) error

	// List returns every stored record, payloads included.
	List(ctx context.Context) ([]models.AudioBlob, error)

	// GetStats returns count/size statistics.
	GetStats(ctx context.Context) (*Stats, error)

	// ClearAll removes every blob in a single transaction. The caller is
	// responsible for gating this behind explicit confirmation.
	ClearAll(ctx context.Context) error
}

// Repository defines the blob store's data access layer.
type Repository interface {
	Create(ctx context.Context, blob *models.AudioBlob) error
	GetByID(ctx context.Context, id string) (*models.AudioBlob, error)
	GetByRecordingID(ctx context.Context, recordingID string) (*models.AudioBlob, error)
	Update(ctx context.Context, blob *models.AudioBlob) error
	DeleteByID(ctx context.Context, id string) (int64, error)
	DeleteByRecordingID(ctx context.Context, recordingID string) (int64, error)
	List(ctx context.Context) ([]models.AudioBlob, error)
	GetStats(ctx context.Context) (*Stats, error)
	DeleteAll(ctx context.Context) error
}
