package editor

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/voxnote/memo-api/internal/services/blobs"
	"github.com/voxnote/memo-api/internal/services/editlog"
	"github.com/voxnote/memo-api/internal/services/waveforms"
	"github.com/voxnote/memo-api/pkg/audio"
	"github.com/voxnote/memo-api/pkg/codec"
)

// ExportSuffix is appended to a recording id to form the key the
// committed (post-edit) blob is stored under.
const ExportSuffix = "-edited"

// SessionInfo describes an open edit session to the caller.
type SessionInfo struct {
	ID          string  `json:"id"`
	RecordingID string  `json:"recording_id"`
	Duration    float64 `json:"duration"`
	SampleRate  int     `json:"sample_rate"`
	Channels    int     `json:"channels"`
	EditCount   int     `json:"edit_count"`
}

// PreviewResult summarizes an audition run without persisting anything.
type PreviewResult struct {
	Duration float64 `json:"duration"`
	Peak     float64 `json:"peak"`
	Samples  int     `json:"samples"`
}

// session binds one decoded source buffer to its pending edit log.
type session struct {
	id          string
	recordingID string
	log         *editlog.Log

	mtx      sync.Mutex
	applying bool
}

// Service owns the edit sessions: it loads a recording's bytes from the
// blob store, decodes them once, accumulates edits, and on commit bakes
// them into a WAV export stored back under the recording's export key.
type Service struct {
	blobStore blobs.Service
	waveforms waveforms.Service
	registry  *codec.Registry

	mtx      sync.Mutex
	sessions map[string]*session
}

// NewService creates an editor service.
func NewService(blobStore blobs.Service, waveformService waveforms.Service, registry *codec.Registry) *Service {
	if registry == nil {
		registry = codec.DefaultRegistry()
	}
	return &Service{
		blobStore: blobStore,
		waveforms: waveformService,
		registry:  registry,
		sessions:  make(map[string]*session),
	}
}

// OpenSession fetches the recording's blob, decodes it and starts an
// empty edit log over the result.
func (s *Service) OpenSession(ctx context.Context, recordingID string) (*SessionInfo, error) {
	blob, err := s.blobStore.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return nil, err
	}

	buffer, err := s.registry.Decode(blob.Format, blob.Data)
	if err != nil {
		return nil, err
	}

	sess := &session{
		id:          uuid.NewString(),
		recordingID: recordingID,
		log:         editlog.NewLog(buffer),
	}

	s.mtx.Lock()
	s.sessions[sess.id] = sess
	s.mtx.Unlock()

	log.Printf("[DEBUG] Opened edit session %s for recording %s (%.2fs, %d channels)",
		sess.id, recordingID, buffer.Duration(), buffer.NumChannels())

	return s.info(sess), nil
}

// GetSession returns the current state of an open session.
func (s *Service) GetSession(sessionID string) (*SessionInfo, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return s.info(sess), nil
}

// AppendEdit validates and appends an edit, returning its id.
func (s *Service) AppendEdit(sessionID string, edit editlog.Edit) (string, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return "", err
	}
	return sess.log.Append(edit)
}

// RemoveEdit removes one edit by id.
func (s *Service) RemoveEdit(sessionID, editID string) error {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}
	return sess.log.Remove(editID)
}

// Undo drops the most recently appended edit.
func (s *Service) Undo(sessionID string) error {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}
	sess.log.UndoLast()
	return nil
}

// ListEdits returns the pending edits in append order.
func (s *Service) ListEdits(sessionID string) ([]editlog.Entry, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.log.Snapshot(), nil
}

// Preview applies the current log snapshot and reports what the result
// would look like. Nothing is persisted.
func (s *Service) Preview(sessionID string) (*PreviewResult, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.beginApply(); err != nil {
		return nil, err
	}
	defer sess.endApply()

	result, err := editlog.Preview(sess.log)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Duration: result.Duration(),
		Peak:     audio.Peak(result),
		Samples:  result.Len(),
	}, nil
}

// Commit applies the current log snapshot, encodes the result as WAV
// and stores it under the session's export key, replacing any previous
// export. Edits made while the apply runs are not part of the export.
func (s *Service) Commit(ctx context.Context, sessionID string) (string, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return "", err
	}

	if err := sess.beginApply(); err != nil {
		return "", err
	}
	defer sess.endApply()

	result, err := editlog.ApplyLog(sess.log)
	if err != nil {
		return "", err
	}

	data, err := codec.EncodeWAV(result)
	if err != nil {
		return "", err
	}

	exportID := sess.recordingID + ExportSuffix

	// A close that raced the apply wins: results for a closed session
	// are discarded, never persisted.
	if _, err := s.lookup(sessionID); err != nil {
		return "", err
	}

	// Replace rather than duplicate: the store's one-blob-per-recording
	// rule means the old export has to go first.
	if err := s.blobStore.DeleteByRecordingID(ctx, exportID); err != nil {
		return "", err
	}

	if _, err := s.lookup(sessionID); err != nil {
		return "", err
	}

	blobID, err := s.blobStore.Put(ctx, blobs.PutRequest{
		RecordingID:     exportID,
		Data:            data,
		Format:          "wav",
		DurationSeconds: result.Duration(),
		Metadata: map[string]any{
			"source_recording_id": sess.recordingID,
			"edit_count":          sess.log.Len(),
		},
	})
	if err != nil {
		return "", err
	}

	// The cached waveform for a previous export no longer matches.
	if s.waveforms != nil {
		if err := s.waveforms.DeleteWaveform(ctx, exportID); err != nil {
			log.Printf("[WARN] Failed to invalidate waveform cache for %s: %v", exportID, err)
		}
	}

	log.Printf("[INFO] Committed session %s: %d bytes exported for recording %s", sessionID, len(data), sess.recordingID)
	return blobID, nil
}

// CloseSession discards a session and its pending edits.
func (s *Service) CloseSession(sessionID string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *Service) lookup(sessionID string) (*session, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) info(sess *session) *SessionInfo {
	src := sess.log.Source()
	return &SessionInfo{
		ID:          sess.id,
		RecordingID: sess.recordingID,
		Duration:    src.Duration(),
		SampleRate:  src.SampleRate,
		Channels:    src.NumChannels(),
		EditCount:   sess.log.Len(),
	}
}

func (sess *session) beginApply() error {
	sess.mtx.Lock()
	defer sess.mtx.Unlock()
	if sess.applying {
		return ErrApplyInProgress
	}
	sess.applying = true
	return nil
}

func (sess *session) endApply() {
	sess.mtx.Lock()
	sess.applying = false
	sess.mtx.Unlock()
}
