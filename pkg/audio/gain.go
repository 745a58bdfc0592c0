package audio

import "math"

// DefaultTargetPeak is the peak amplitude normalization aims for when
// the caller does not supply one.
const DefaultTargetPeak = 0.89

// noiseFloorDamping is the gain applied to samples under the noise gate
// threshold.
const noiseFloorDamping = 0.1

// Peak returns the maximum absolute sample value across all channels.
func Peak(b *Buffer) float64 {
	peak := 0.0
	for _, ch := range b.Channels {
		for _, s := range ch {
			if abs := math.Abs(s); abs > peak {
				peak = abs
			}
		}
	}
	return peak
}

// Normalize scales every sample so the global peak lands at targetPeak.
// An all-zero buffer is returned unchanged rather than dividing by zero.
func Normalize(b *Buffer, targetPeak float64) *Buffer {
	if targetPeak <= 0 {
		targetPeak = DefaultTargetPeak
	}

	peak := Peak(b)
	if peak == 0 {
		return b
	}

	gain := targetPeak / peak
	out := &Buffer{Channels: make([][]float64, len(b.Channels)), SampleRate: b.SampleRate}
	for ch := range b.Channels {
		out.Channels[ch] = make([]float64, len(b.Channels[ch]))
		for i, s := range b.Channels[ch] {
			out.Channels[ch][i] = s * gain
		}
	}
	return out
}

// AttenuateBelowThreshold damps every sample whose absolute value is
// below threshold, leaving louder samples untouched. A plain noise gate;
// no spectral analysis involved.
func AttenuateBelowThreshold(b *Buffer, threshold float64) *Buffer {
	out := &Buffer{Channels: make([][]float64, len(b.Channels)), SampleRate: b.SampleRate}
	for ch := range b.Channels {
		out.Channels[ch] = make([]float64, len(b.Channels[ch]))
		for i, s := range b.Channels[ch] {
			if math.Abs(s) < threshold {
				out.Channels[ch][i] = s * noiseFloorDamping
			} else {
				out.Channels[ch][i] = s
			}
		}
	}
	return out
}
