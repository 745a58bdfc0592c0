package types

import "time"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Recording describes a stored audio blob without its payload
type Recording struct {
	BlobID          string         `json:"blob_id"`
	RecordingID     string         `json:"recording_id"`
	Format          string         `json:"format"`
	SizeBytes       int64          `json:"size_bytes"`
	DurationSeconds float64        `json:"duration_seconds"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// RecordingResponse wraps a single recording, optionally with its
// base64-encoded payload
type RecordingResponse struct {
	BaseResponse
	Recording *Recording `json:"recording"`
	Data      string     `json:"data,omitempty"`
}

// RecordingsResponse for recording lists
type RecordingsResponse struct {
	BaseResponse
	Recordings []Recording `json:"recordings"`
	Count      int         `json:"count"`
}

// WaveformData is the rendered peak series for one recording
type WaveformData struct {
	RecordingID string    `json:"recording_id"`
	Duration    float64   `json:"duration"`
	Resolution  int       `json:"resolution"`
	SampleRate  int       `json:"sample_rate"`
	Peaks       []float64 `json:"peaks"`
	Cached      bool      `json:"cached"`
}

// WaveformResponse for waveform data
type WaveformResponse struct {
	BaseResponse
	Waveform *WaveformData `json:"waveform"`
}

// EditEntry is one appended edit on the wire: the concrete parameters
// live under "params", discriminated by "kind"
type EditEntry struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Kind      string      `json:"kind"`
	Params    interface{} `json:"params"`
}

// EditsResponse for edit log listings
type EditsResponse struct {
	BaseResponse
	Edits []EditEntry `json:"edits"`
	Count int         `json:"count"`
}
