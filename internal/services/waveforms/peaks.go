package waveforms

import (
	"math"

	"github.com/voxnote/memo-api/pkg/audio"
)

// PeakPair is the {min, max} amplitude extrema over one window of
// samples, one pair per rendered pixel column.
type PeakPair struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ComputePeakSeries decimates channel 0 of the buffer into one PeakPair
// per non-overlapping window of windowSamples (the last window may be
// shorter). Series length = ceil(len / windowSamples). The series is
// regenerated, never patched, whenever the source or zoom changes.
func ComputePeakSeries(b *audio.Buffer, windowSamples int) ([]PeakPair, error) {
	if b == nil {
		return nil, ErrNilBuffer
	}
	if b.NumChannels() == 0 || b.Len() == 0 {
		return nil, ErrEmptyBuffer
	}
	if windowSamples <= 0 {
		return nil, ErrInvalidWindow
	}

	samples := b.Channels[0]
	count := (len(samples) + windowSamples - 1) / windowSamples
	series := make([]PeakPair, 0, count)

	for start := 0; start < len(samples); start += windowSamples {
		end := start + windowSamples
		if end > len(samples) {
			end = len(samples)
		}

		pair := PeakPair{Min: samples[start], Max: samples[start]}
		for _, s := range samples[start+1 : end] {
			if s < pair.Min {
				pair.Min = s
			}
			if s > pair.Max {
				pair.Max = s
			}
		}
		series = append(series, pair)
	}

	return series, nil
}

// WindowForPixelDensity derives the decimation window from the desired
// horizontal pixel density. At least one sample per window.
func WindowForPixelDensity(sampleRate int, pixelsPerSecond float64) int {
	if pixelsPerSecond <= 0 {
		return 1
	}
	window := int(float64(sampleRate) / pixelsPerSecond)
	if window < 1 {
		window = 1
	}
	return window
}

// ResolutionForDuration returns the peak-pair count a render at the
// given density would produce for audio of the given length. Matches
// ComputePeakSeries with WindowForPixelDensity's window.
func ResolutionForDuration(durationSeconds float64, sampleRate int, pixelsPerSecond float64) int {
	samples := int(math.Round(durationSeconds * float64(sampleRate)))
	if samples <= 0 {
		return 0
	}
	window := WindowForPixelDensity(sampleRate, pixelsPerSecond)
	return (samples + window - 1) / window
}

// FlattenPeaks interleaves a peak series as [min0, max0, min1, max1, ...]
// for storage.
func FlattenPeaks(series []PeakPair) []float64 {
	out := make([]float64, 0, len(series)*2)
	for _, p := range series {
		out = append(out, p.Min, p.Max)
	}
	return out
}

// UnflattenPeaks reverses FlattenPeaks. A trailing odd value is dropped.
func UnflattenPeaks(interleaved []float64) []PeakPair {
	series := make([]PeakPair, 0, len(interleaved)/2)
	for i := 0; i+1 < len(interleaved); i += 2 {
		series = append(series, PeakPair{Min: interleaved[i], Max: interleaved[i+1]})
	}
	return series
}
