package codec

import (
	"strings"
	"sync"

	"github.com/voxnote/memo-api/pkg/audio"
)

// Decoder turns encoded container bytes into a sample buffer.
type Decoder interface {
	Decode(data []byte) (*audio.Buffer, error)
}

// Registry maps format tags (e.g. "wav", "mp3", "ogg") to decoders.
type Registry struct {
	mtx      sync.Mutex
	decoders map[string]Decoder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]Decoder)}
}

// Register adds or replaces the decoder for a format tag.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.decoders[normalizeFormat(format)] = d
}

// Get returns the decoder registered for the format tag.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	d, ok := r.decoders[normalizeFormat(format)]
	return d, ok
}

// Decode looks up the format's decoder and runs it.
func (r *Registry) Decode(format string, data []byte) (*audio.Buffer, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	return d.Decode(data)
}

func normalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	switch f {
	case "audio/wav", "audio/x-wav", "wave":
		return "wav"
	case "audio/mpeg", "audio/mp3":
		return "mp3"
	case "audio/ogg", "oga", "vorbis":
		return "ogg"
	}
	return f
}

// DefaultRegistry returns a registry with every built-in decoder
// registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("wav", WAVDecoder{})
	r.Register("mp3", MP3Decoder{})
	r.Register("ogg", VorbisDecoder{})
	return r
}

// deinterleave splits interleaved samples into per-channel slices.
func deinterleave(samples []float64, channels int) [][]float64 {
	if channels < 1 {
		channels = 1
	}
	frames := len(samples) / channels
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
		for f := 0; f < frames; f++ {
			out[ch][f] = samples[f*channels+ch]
		}
	}
	return out
}
