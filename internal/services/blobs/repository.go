package blobs

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/voxnote/memo-api/internal/models"
)

// repository implements Repository using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new blob repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create saves a new blob row
func (r *repository) Create(ctx context.Context, blob *models.AudioBlob) error {
	return r.db.WithContext(ctx).Create(blob).Error
}

// GetByID retrieves a blob by primary key
func (r *repository) GetByID(ctx context.Context, id string) (*models.AudioBlob, error) {
	var blob models.AudioBlob
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlobNotFound
		}
		return nil, err
	}
	return &blob, nil
}

// GetByRecordingID retrieves the blob owned by a recording
func (r *repository) GetByRecordingID(ctx context.Context, recordingID string) (*models.AudioBlob, error) {
	var blob models.AudioBlob
	err := r.db.WithContext(ctx).Where("recording_id = ?", recordingID).First(&blob).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlobNotFound
		}
		return nil, err
	}
	return &blob, nil
}

// Update saves all fields of an existing blob row
func (r *repository) Update(ctx context.Context, blob *models.AudioBlob) error {
	return r.db.WithContext(ctx).Save(blob).Error
}

// DeleteByID removes a blob row, returning the number of rows removed
func (r *repository) DeleteByID(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AudioBlob{})
	return result.RowsAffected, result.Error
}

// DeleteByRecordingID removes the blob owned by a recording
func (r *repository) DeleteByRecordingID(ctx context.Context, recordingID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("recording_id = ?", recordingID).Delete(&models.AudioBlob{})
	return result.RowsAffected, result.Error
}

// List returns all blob rows ordered by creation time
func (r *repository) List(ctx context.Context) ([]models.AudioBlob, error) {
	var out []models.AudioBlob
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error
	return out, err
}

// GetStats aggregates count and size over the whole table
func (r *repository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	if err := r.db.WithContext(ctx).Model(&models.AudioBlob{}).Count(&stats.Count).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&models.AudioBlob{}).
		Select("COALESCE(SUM(size_bytes), 0)").
		Scan(&stats.TotalBytes).Error; err != nil {
		return nil, err
	}

	if stats.Count > 0 {
		stats.AverageBytes = stats.TotalBytes / stats.Count
	}

	return stats, nil
}

// DeleteAll removes every blob row inside one transaction so concurrent
// readers see either the full table or an empty one
func (r *repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("1 = 1").Delete(&models.AudioBlob{}).Error
	})
}
