package blobs

import (
	"context"
	"log"
	"strings"

	"github.com/voxnote/memo-api/internal/models"
)

// service implements Service
type service struct {
	repo Repository
}

// NewService creates a new blob store service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Put stores a recording's audio payload
func (s *service) Put(ctx context.Context, req PutRequest) (string, error) {
	if req.RecordingID == "" {
		return "", ErrInvalidRecordingID
	}
	if len(req.Data) == 0 {
		return "", ErrEmptyPayload
	}

	blob := &models.AudioBlob{
		RecordingID:     req.RecordingID,
		Data:            cloneBytes(req.Data),
		SizeBytes:       int64(len(req.Data)),
		Format:          req.Format,
		DurationSeconds: req.DurationSeconds,
	}
	if err := blob.SetMetadata(req.Metadata); err != nil {
		return "", err
	}

	if err := s.repo.Create(ctx, blob); err != nil {
		// The uniqueIndex on recording_id is the store's one concurrency
		// invariant; surface its violation as a duplicate, whether we
		// found it up front or raced another writer.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return "", ErrDuplicateRecording
		}
		return "", err
	}

	log.Printf("[DEBUG] Stored audio blob %s for recording %s (%d bytes)", blob.ID, blob.RecordingID, blob.SizeBytes)
	return blob.ID, nil
}

// Get retrieves a blob by id
func (s *service) Get(ctx context.Context, blobID string) (*models.AudioBlob, error) {
	blob, err := s.repo.GetByID(ctx, blobID)
	if err != nil {
		return nil, err
	}
	return detach(blob), nil
}

// GetByRecordingID retrieves the blob owned by a recording
func (s *service) GetByRecordingID(ctx context.Context, recordingID string) (*models.AudioBlob, error) {
	if recordingID == "" {
		return nil, ErrInvalidRecordingID
	}
	blob, err := s.repo.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return nil, err
	}
	return detach(blob), nil
}

// UpdateMetadata applies a metadata-only partial update to an existing blob
func (s *service) UpdateMetadata(ctx context.Context, blobID string, update MetadataUpdate) error {
	blob, err := s.repo.GetByID(ctx, blobID)
	if err != nil {
		return err
	}

	if update.Format != nil {
		blob.Format = *update.Format
	}
	if update.DurationSeconds != nil {
		blob.DurationSeconds = *update.DurationSeconds
	}
	if update.Metadata != nil {
		meta, err := blob.Metadata()
		if err != nil {
			meta = map[string]any{}
		}
		for k, v := range update.Metadata {
			meta[k] = v
		}
		if err := blob.SetMetadata(meta); err != nil {
			return err
		}
	}

	return s.repo.Update(ctx, blob)
}

// Delete removes a blob by id; missing blobs are a silent no-op
func (s *service) Delete(ctx context.Context, blobID string) error {
	rows, err := s.repo.DeleteByID(ctx, blobID)
	if err != nil {
		return err
	}
	if rows == 0 {
		log.Printf("[DEBUG] Delete of absent blob %s ignored", blobID)
	}
	return nil
}

// DeleteByRecordingID removes the blob owned by a recording, if any
func (s *service) DeleteByRecordingID(ctx context.Context, recordingID string) error {
	if recordingID == "" {
		return ErrInvalidRecordingID
	}
	_, err := s.repo.DeleteByRecordingID(ctx, recordingID)
	return err
}

// List returns every stored record
func (s *service) List(ctx context.Context) ([]models.AudioBlob, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.AudioBlob, len(records))
	for i := range records {
		out[i] = *detach(&records[i])
	}
	return out, nil
}

// GetStats returns count/size statistics
func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	return s.repo.GetStats(ctx)
}

// ClearAll removes every blob
func (s *service) ClearAll(ctx context.Context) error {
	log.Printf("[WARN] Clearing all stored audio blobs")
	return s.repo.DeleteAll(ctx)
}

// detach copies the fields a caller may hold on to, so nothing aliases
// the repository's internal storage.
func detach(blob *models.AudioBlob) *models.AudioBlob {
	out := *blob
	out.Data = cloneBytes(blob.Data)
	out.MetadataJSON = cloneBytes(blob.MetadataJSON)
	return &out
}

func cloneBytes(data []byte) []byte {
	if data == nil {
		return nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
