package waveforms

import (
	"context"
	"log"
	"strings"

	"github.com/voxnote/memo-api/internal/models"
	"github.com/voxnote/memo-api/pkg/audio"
)

// service implements Service
type service struct {
	repo Repository
}

// NewService creates a new waveform service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetWaveform retrieves cached waveform data for a recording
func (s *service) GetWaveform(ctx context.Context, recordingID string) (*models.Waveform, error) {
	if recordingID == "" {
		return nil, ErrInvalidRecordingID
	}

	waveform, err := s.repo.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return nil, err
	}

	log.Printf("[DEBUG] Found waveform for recording %s: resolution=%d, duration=%.2f",
		recordingID, waveform.Resolution, waveform.Duration)

	return waveform, nil
}

// SaveWaveform stores waveform data for a recording
func (s *service) SaveWaveform(ctx context.Context, waveform *models.Waveform) error {
	if waveform.RecordingID == "" {
		return ErrInvalidRecordingID
	}

	if len(waveform.PeaksData) == 0 {
		return ErrInvalidPeaksData
	}

	exists, err := s.repo.Exists(ctx, waveform.RecordingID)
	if err != nil {
		return err
	}

	if exists {
		log.Printf("[DEBUG] Updating existing waveform for recording %s", waveform.RecordingID)
		existing, err := s.repo.GetByRecordingID(ctx, waveform.RecordingID)
		if err != nil {
			return err
		}
		waveform.ID = existing.ID
		return s.repo.Update(ctx, waveform)
	}

	err = s.repo.Create(ctx, waveform)
	if err != nil {
		// Another writer may have created the row between Exists and
		// Create; fall back to updating theirs.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			existing, getErr := s.repo.GetByRecordingID(ctx, waveform.RecordingID)
			if getErr != nil {
				return getErr
			}
			waveform.ID = existing.ID
			return s.repo.Update(ctx, waveform)
		}
		return err
	}
	return nil
}

// DeleteWaveform removes cached waveform data for a recording
func (s *service) DeleteWaveform(ctx context.Context, recordingID string) error {
	if recordingID == "" {
		return ErrInvalidRecordingID
	}
	return s.repo.Delete(ctx, recordingID)
}

// WaveformExists checks if waveform data exists for a recording
func (s *service) WaveformExists(ctx context.Context, recordingID string) (bool, error) {
	if recordingID == "" {
		return false, ErrInvalidRecordingID
	}
	return s.repo.Exists(ctx, recordingID)
}

// BuildModel decimates a decoded buffer and packages the result as the
// persistable waveform row for a recording.
func BuildModel(recordingID string, b *audio.Buffer, pixelsPerSecond float64) (*models.Waveform, error) {
	if recordingID == "" {
		return nil, ErrInvalidRecordingID
	}

	window := WindowForPixelDensity(b.SampleRate, pixelsPerSecond)
	series, err := ComputePeakSeries(b, window)
	if err != nil {
		return nil, err
	}

	waveform := &models.Waveform{
		RecordingID: recordingID,
		Duration:    b.Duration(),
		SampleRate:  b.SampleRate,
	}
	if err := waveform.SetPeaks(FlattenPeaks(series)); err != nil {
		return nil, err
	}

	return waveform, nil
}
