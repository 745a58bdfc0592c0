package codec

import (
	"bytes"
	"encoding/binary"

	"github.com/voxnote/memo-api/pkg/audio"
)

// EncodeWAV serializes the buffer as a 16-bit PCM RIFF/WAVE container
// with interleaved channels. Samples outside [-1, 1] are clipped.
func EncodeWAV(b *audio.Buffer) ([]byte, error) {
	if b == nil || b.NumChannels() == 0 || b.Len() == 0 {
		return nil, ErrEmptyBuffer
	}

	numChannels := uint16(b.NumChannels())
	bitsPerSample := uint16(16)
	sampleRate := uint32(b.SampleRate)
	byteRate := sampleRate * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * bitsPerSample / 8
	dataSize := uint32(b.Len()) * uint32(blockAlign)
	riffSize := 36 + dataSize

	var out bytes.Buffer
	out.Grow(44 + int(dataSize))

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], sampleRate)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)
	out.Write(header)

	frame := make([]byte, blockAlign)
	for i := 0; i < b.Len(); i++ {
		for ch := 0; ch < int(numChannels); ch++ {
			binary.LittleEndian.PutUint16(frame[2*ch:2*ch+2], uint16(floatToInt16(b.Channels[ch][i])))
		}
		out.Write(frame)
	}

	return out.Bytes(), nil
}

func floatToInt16(s float64) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	v := s * 32767
	return int16(v)
}
