// Package codec sits at the engine boundary: it decodes captured
// container bytes (WAV, MP3, Ogg Vorbis) into sample buffers and
// re-encodes finalized buffers as portable 16-bit PCM WAV. The engine
// itself never touches container formats.
package codec
