package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxnote/memo-api/pkg/audio"
)

func toneBuffer(sampleRate, channels int, seconds float64) *audio.Buffer {
	b := audio.Allocate(sampleRate, channels, seconds)
	for ch := range b.Channels {
		for i := range b.Channels[ch] {
			t := float64(i) / float64(sampleRate)
			b.Channels[ch][i] = 0.5 * math.Sin(2*math.Pi*440*t)
		}
	}
	return b
}

func TestRegistry_FormatNormalization(t *testing.T) {
	r := DefaultRegistry()

	for _, tag := range []string{"wav", "WAV", ".wav", "audio/wav", "wave"} {
		_, ok := r.Get(tag)
		assert.True(t, ok, "expected decoder for %q", tag)
	}

	for _, tag := range []string{"mp3", "audio/mpeg", "ogg", "audio/ogg", "oga"} {
		_, ok := r.Get(tag)
		assert.True(t, ok, "expected decoder for %q", tag)
	}

	_, ok := r.Get("flac")
	assert.False(t, ok)
}

func TestRegistry_DecodeUnsupported(t *testing.T) {
	r := DefaultRegistry()
	_, err := r.Decode("flac", []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWAV_EncodeDecodeRoundTrip(t *testing.T) {
	src := toneBuffer(8000, 2, 0.25)

	data, err := EncodeWAV(src)
	require.NoError(t, err)
	require.Equal(t, 44+src.Len()*4, len(data))

	out, err := DefaultRegistry().Decode("wav", data)
	require.NoError(t, err)

	assert.Equal(t, src.SampleRate, out.SampleRate)
	assert.Equal(t, src.NumChannels(), out.NumChannels())
	require.Equal(t, src.Len(), out.Len())

	// 16-bit quantization loses precision but not much.
	for ch := range src.Channels {
		for i := range src.Channels[ch] {
			assert.InDelta(t, src.Channels[ch][i], out.Channels[ch][i], 1.0/16384)
		}
	}
}

func TestWAV_DecodeGarbage(t *testing.T) {
	_, err := (WAVDecoder{}).Decode([]byte("definitely not a RIFF container"))
	assert.ErrorIs(t, err, ErrCorruptAudio)
}

func TestMP3_DecodeGarbage(t *testing.T) {
	_, err := (MP3Decoder{}).Decode([]byte{0x00, 0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, ErrCorruptAudio)
}

func TestVorbis_DecodeGarbage(t *testing.T) {
	_, err := (VorbisDecoder{}).Decode([]byte("OggS but not really"))
	assert.ErrorIs(t, err, ErrCorruptAudio)
}

func TestEncodeWAV_EmptyBuffer(t *testing.T) {
	_, err := EncodeWAV(audio.Allocate(44100, 1, 0))
	assert.ErrorIs(t, err, ErrEmptyBuffer)

	_, err = EncodeWAV(nil)
	assert.ErrorIs(t, err, ErrEmptyBuffer)
}

func TestEncodeWAV_ClipsOutOfRange(t *testing.T) {
	b := audio.Allocate(8000, 1, 0.001)
	for i := range b.Channels[0] {
		b.Channels[0][i] = 2.0
	}

	data, err := EncodeWAV(b)
	require.NoError(t, err)

	out, err := (WAVDecoder{}).Decode(data)
	require.NoError(t, err)
	for _, s := range out.Channels[0] {
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestDeinterleave(t *testing.T) {
	got := deinterleave([]float64{1, -1, 2, -2, 3, -3}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, []float64{1, 2, 3}, got[0])
	assert.Equal(t, []float64{-1, -2, -3}, got[1])
}
