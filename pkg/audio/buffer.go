package audio

import "math"

// Buffer holds multi-channel floating point audio samples in [-1, 1].
// All channels share the same length and sample rate. Buffers returned
// by the primitives in this package are freshly allocated; callers must
// treat a Buffer as immutable once it has been handed to another
// component.
type Buffer struct {
	// Channels holds one sample slice per channel, all equal length.
	Channels [][]float64
	// SampleRate in Hz.
	SampleRate int
}

// Allocate returns an all-zero buffer with length = ceil(rate * seconds)
// per channel.
func Allocate(sampleRate, channelCount int, durationSeconds float64) *Buffer {
	if sampleRate <= 0 || channelCount <= 0 || durationSeconds < 0 {
		return &Buffer{Channels: make([][]float64, 0), SampleRate: sampleRate}
	}

	length := int(math.Ceil(float64(sampleRate) * durationSeconds))
	channels := make([][]float64, channelCount)
	for ch := range channels {
		channels[ch] = make([]float64, length)
	}

	return &Buffer{Channels: channels, SampleRate: sampleRate}
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int {
	return len(b.Channels)
}

// Len returns the per-channel sample count.
func (b *Buffer) Len() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Duration returns the buffer duration in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Len()) / float64(b.SampleRate)
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	channels := make([][]float64, len(b.Channels))
	for ch := range b.Channels {
		channels[ch] = make([]float64, len(b.Channels[ch]))
		copy(channels[ch], b.Channels[ch])
	}
	return &Buffer{Channels: channels, SampleRate: b.SampleRate}
}

// Slice returns the samples in [startSeconds, endSeconds) as a new
// buffer. Bounds are clamped to the buffer; the result preserves the
// source's channel count and sample rate. The slice length is
// round((end-start) * rate) so that adjacent slices tile the source
// without gaps.
func Slice(b *Buffer, startSeconds, endSeconds float64) *Buffer {
	rate := float64(b.SampleRate)

	startSample := int(math.Round(startSeconds * rate))
	endSample := int(math.Round(endSeconds * rate))

	if startSample < 0 {
		startSample = 0
	}
	if startSample > b.Len() {
		startSample = b.Len()
	}
	if endSample > b.Len() {
		endSample = b.Len()
	}
	if endSample < startSample {
		endSample = startSample
	}

	length := endSample - startSample
	channels := make([][]float64, len(b.Channels))
	for ch := range b.Channels {
		channels[ch] = make([]float64, length)
		copy(channels[ch], b.Channels[ch][startSample:endSample])
	}

	return &Buffer{Channels: channels, SampleRate: b.SampleRate}
}

// Concat joins the given buffers in order into a new buffer. All inputs
// must share the same sample rate and channel count; silently coercing
// mismatched inputs to the first buffer's format is exactly the kind of
// bug this guard exists for.
func Concat(buffers ...*Buffer) (*Buffer, error) {
	if len(buffers) == 0 {
		return nil, ErrEmptyInput
	}

	first := buffers[0]
	total := 0
	for _, b := range buffers {
		if b.SampleRate != first.SampleRate || b.NumChannels() != first.NumChannels() {
			return nil, ErrMismatchedFormat
		}
		total += b.Len()
	}

	channels := make([][]float64, first.NumChannels())
	for ch := range channels {
		channels[ch] = make([]float64, 0, total)
		for _, b := range buffers {
			channels[ch] = append(channels[ch], b.Channels[ch]...)
		}
	}

	return &Buffer{Channels: channels, SampleRate: first.SampleRate}, nil
}
