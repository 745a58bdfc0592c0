package blobs

import "encoding/base64"

// EncodeBase64 renders a byte payload as base64 text for crossing a
// serialization boundary, e.g. embedding a clip in exported JSON.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 reverses EncodeBase64.
func DecodeBase64(text string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(text)
}
