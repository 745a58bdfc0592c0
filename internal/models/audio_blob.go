package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AudioBlob is the durable record for one recording's audio payload.
// RecordingID carries a uniqueIndex: the store holds at most one blob
// per recording, callers replace by deleting first.
type AudioBlob struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	RecordingID string `gorm:"uniqueIndex;not null;size:64" json:"recording_id"`

	// Data is the byte payload. Never exposed over JSON; callers go
	// through the service, which hands out copies.
	Data []byte `gorm:"type:blob;not null" json:"-"`

	SizeBytes       int64   `gorm:"not null" json:"size_bytes"`
	Format          string  `gorm:"size:32" json:"format"`
	DurationSeconds float64 `json:"duration_seconds"`

	// MetadataJSON holds arbitrary caller metadata as a JSON object.
	MetadataJSON []byte `gorm:"type:blob" json:"-"`
}

// TableName returns the table name for the AudioBlob model
func (AudioBlob) TableName() string {
	return "audio_blobs"
}

// BeforeCreate hook to assign an id and timestamps
func (b *AudioBlob) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

// BeforeUpdate hook to refresh the update timestamp
func (b *AudioBlob) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// Metadata decodes the stored metadata object. A missing payload
// decodes to an empty map.
func (b *AudioBlob) Metadata() (map[string]any, error) {
	if len(b.MetadataJSON) == 0 {
		return map[string]any{}, nil
	}
	var meta map[string]any
	if err := json.Unmarshal(b.MetadataJSON, &meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// SetMetadata encodes and stores the metadata object.
func (b *AudioBlob) SetMetadata(meta map[string]any) error {
	if meta == nil {
		b.MetadataJSON = nil
		return nil
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	b.MetadataJSON = data
	return nil
}
