package waveforms

import (
	"context"

	"github.com/voxnote/memo-api/internal/models"
)

// Service defines the interface for waveform cache operations
type Service interface {
	// GetWaveform retrieves cached waveform data for a recording
	GetWaveform(ctx context.Context, recordingID string) (*models.Waveform, error)

	// SaveWaveform stores waveform data for a recording, replacing any
	// existing series
	SaveWaveform(ctx context.Context, waveform *models.Waveform) error

	// DeleteWaveform removes cached waveform data for a recording
	DeleteWaveform(ctx context.Context, recordingID string) error

	// WaveformExists checks if waveform data exists for a recording
	WaveformExists(ctx context.Context, recordingID string) (bool, error)
}

// Repository defines the interface for waveform data access
type Repository interface {
	GetByRecordingID(ctx context.Context, recordingID string) (*models.Waveform, error)
	Create(ctx context.Context, waveform *models.Waveform) error
	Update(ctx context.Context, waveform *models.Waveform) error
	Delete(ctx context.Context, recordingID string) error
	Exists(ctx context.Context, recordingID string) (bool, error)
}
