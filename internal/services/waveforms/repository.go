package waveforms

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/voxnote/memo-api/internal/models"
)

// repository implements Repository
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new waveform repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByRecordingID retrieves a waveform by recording ID
func (r *repository) GetByRecordingID(ctx context.Context, recordingID string) (*models.Waveform, error) {
	var waveform models.Waveform
	err := r.db.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		First(&waveform).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWaveformNotFound
		}
		return nil, err
	}

	return &waveform, nil
}

// Create saves a new waveform
func (r *repository) Create(ctx context.Context, waveform *models.Waveform) error {
	return r.db.WithContext(ctx).Create(waveform).Error
}

// Update modifies an existing waveform
func (r *repository) Update(ctx context.Context, waveform *models.Waveform) error {
	return r.db.WithContext(ctx).Save(waveform).Error
}

// Delete removes a waveform by recording ID. Deleting a recording with
// no cached waveform is a no-op, matching the blob store's delete.
func (r *repository) Delete(ctx context.Context, recordingID string) error {
	return r.db.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		Delete(&models.Waveform{}).Error
}

// Exists checks if a waveform exists for a recording
func (r *repository) Exists(ctx context.Context, recordingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Waveform{}).
		Where("recording_id = ?", recordingID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
