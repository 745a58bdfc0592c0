package waveforms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxnote/memo-api/internal/models"
	"github.com/voxnote/memo-api/pkg/audio"
)

// mockRepository is an in-memory Repository for service tests
type mockRepository struct {
	waveforms map[string]*models.Waveform
	shouldErr bool
}

func newMockRepository() *mockRepository {
	return &mockRepository{waveforms: make(map[string]*models.Waveform)}
}

func (m *mockRepository) GetByRecordingID(ctx context.Context, recordingID string) (*models.Waveform, error) {
	if m.shouldErr {
		return nil, errors.New("mock database error")
	}
	waveform, exists := m.waveforms[recordingID]
	if !exists {
		return nil, ErrWaveformNotFound
	}
	return waveform, nil
}

func (m *mockRepository) Create(ctx context.Context, waveform *models.Waveform) error {
	if m.shouldErr {
		return errors.New("mock database error")
	}
	if _, exists := m.waveforms[waveform.RecordingID]; exists {
		return errors.New("UNIQUE constraint failed: waveforms.recording_id")
	}
	m.waveforms[waveform.RecordingID] = waveform
	return nil
}

func (m *mockRepository) Update(ctx context.Context, waveform *models.Waveform) error {
	if m.shouldErr {
		return errors.New("mock database error")
	}
	m.waveforms[waveform.RecordingID] = waveform
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, recordingID string) error {
	if m.shouldErr {
		return errors.New("mock database error")
	}
	delete(m.waveforms, recordingID)
	return nil
}

func (m *mockRepository) Exists(ctx context.Context, recordingID string) (bool, error) {
	if m.shouldErr {
		return false, errors.New("mock database error")
	}
	_, exists := m.waveforms[recordingID]
	return exists, nil
}

func cachedWaveform(t *testing.T, recordingID string) *models.Waveform {
	t.Helper()
	w := &models.Waveform{
		RecordingID: recordingID,
		Duration:    30.0,
		SampleRate:  44100,
	}
	if err := w.SetPeaks([]float64{-0.5, 0.5, -0.3, 0.8}); err != nil {
		t.Fatalf("SetPeaks() error = %v", err)
	}
	return w
}

func TestService_GetWaveform(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	repo.waveforms["rec-1"] = cachedWaveform(t, "rec-1")

	waveform, err := svc.GetWaveform(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, 2, waveform.Resolution)

	_, err = svc.GetWaveform(ctx, "rec-2")
	assert.ErrorIs(t, err, ErrWaveformNotFound)

	_, err = svc.GetWaveform(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidRecordingID)
}

func TestService_SaveWaveform(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SaveWaveform(ctx, cachedWaveform(t, "rec-1")))

	// Saving again replaces the series instead of failing.
	replacement := cachedWaveform(t, "rec-1")
	require.NoError(t, replacement.SetPeaks([]float64{-1, 1}))
	require.NoError(t, svc.SaveWaveform(ctx, replacement))

	stored, err := svc.GetWaveform(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Resolution)
}

func TestService_SaveWaveformValidation(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	err := svc.SaveWaveform(ctx, &models.Waveform{RecordingID: ""})
	assert.ErrorIs(t, err, ErrInvalidRecordingID)

	err = svc.SaveWaveform(ctx, &models.Waveform{RecordingID: "rec-1"})
	assert.ErrorIs(t, err, ErrInvalidPeaksData)
}

func TestService_DeleteWaveform(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	repo.waveforms["rec-1"] = cachedWaveform(t, "rec-1")

	require.NoError(t, svc.DeleteWaveform(ctx, "rec-1"))

	// Deleting again is a no-op, like the blob store's delete.
	assert.NoError(t, svc.DeleteWaveform(ctx, "rec-1"))
}

func TestService_WaveformExists(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	exists, err := svc.WaveformExists(ctx, "rec-1")
	require.NoError(t, err)
	assert.False(t, exists)

	repo.waveforms["rec-1"] = cachedWaveform(t, "rec-1")

	exists, err = svc.WaveformExists(ctx, "rec-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBuildModel(t *testing.T) {
	b := audio.Allocate(1000, 1, 2.0)
	for i := range b.Channels[0] {
		b.Channels[0][i] = 0.25
	}

	waveform, err := BuildModel("rec-1", b, 10) // 100-sample windows
	require.NoError(t, err)

	assert.Equal(t, "rec-1", waveform.RecordingID)
	assert.InDelta(t, 2.0, waveform.Duration, 1e-9)
	assert.Equal(t, 1000, waveform.SampleRate)
	assert.Equal(t, 20, waveform.Resolution)

	peaks, err := waveform.Peaks()
	require.NoError(t, err)
	series := UnflattenPeaks(peaks)
	require.Len(t, series, 20)
	assert.InDelta(t, 0.25, series[0].Max, 1e-9)
}

func TestBuildModel_EmptyRecordingID(t *testing.T) {
	_, err := BuildModel("", audio.Allocate(1000, 1, 1), 10)
	assert.ErrorIs(t, err, ErrInvalidRecordingID)
}
