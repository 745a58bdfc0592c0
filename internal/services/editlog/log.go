package editlog

import (
	"sync"

	"github.com/voxnote/memo-api/pkg/audio"
)

// Log is an ordered list of pending edits bound to one source buffer.
// Operations are applied in the order issued; Apply and Preview work on
// a snapshot, so edits appended while an apply is running are not
// visible to it.
type Log struct {
	mtx     sync.Mutex
	source  *audio.Buffer
	entries []Entry
}

// NewLog creates an empty log for the given source buffer.
func NewLog(source *audio.Buffer) *Log {
	return &Log{source: source}
}

// Source returns the buffer the log edits. The buffer is shared and
// must not be mutated.
func (l *Log) Source() *audio.Buffer {
	return l.source
}

// Append validates the edit against the source and adds it to the end
// of the log, returning the new entry's id.
func (l *Log) Append(e Edit) (string, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if err := validate(e, l.source.Duration()); err != nil {
		return "", err
	}

	entry := newEntry(e)
	l.entries = append(l.entries, entry)
	return entry.ID, nil
}

// Remove deletes the entry with the given id, preserving the order of
// the rest.
func (l *Log) Remove(id string) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	for i, entry := range l.entries {
		if entry.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return nil
		}
	}
	return ErrEditNotFound
}

// UndoLast removes the most recently appended entry. Undoing an empty
// log is a no-op.
func (l *Log) UndoLast() {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	if len(l.entries) > 0 {
		l.entries = l.entries[:len(l.entries)-1]
	}
}

// Clear removes every entry.
func (l *Log) Clear() {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.entries = nil
}

// Len returns the number of pending edits.
func (l *Log) Len() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return len(l.entries)
}

// Snapshot returns a copy of the current entries in append order.
func (l *Log) Snapshot() []Entry {
	l.mtx.Lock()
	defer l.mtx.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
