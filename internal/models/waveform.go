package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Waveform caches the decimated peak series rendered for a recording.
// Peaks are stored interleaved as [min0, max0, min1, max1, ...].
type Waveform struct {
	gorm.Model
	RecordingID string  `json:"recording_id" gorm:"not null;uniqueIndex;size:64"`
	PeaksData   []byte  `json:"-" gorm:"type:blob;not null"`                // JSON-encoded []float64, min/max interleaved
	Duration    float64 `json:"duration" gorm:"not null"`                   // Duration in seconds
	Resolution  int     `json:"resolution" gorm:"not null"`                 // Number of peak pairs
	SampleRate  int     `json:"sample_rate,omitempty" gorm:"default:44100"` // Sample rate of source audio
}

// Peaks returns the decoded interleaved min/max values.
func (w *Waveform) Peaks() ([]float64, error) {
	var peaks []float64
	if err := json.Unmarshal(w.PeaksData, &peaks); err != nil {
		return nil, err
	}
	return peaks, nil
}

// SetPeaks encodes and sets the interleaved min/max values.
func (w *Waveform) SetPeaks(peaks []float64) error {
	data, err := json.Marshal(peaks)
	if err != nil {
		return err
	}
	w.PeaksData = data
	w.Resolution = len(peaks) / 2
	return nil
}
