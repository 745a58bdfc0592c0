package playback

import "sync"

// StopFunc halts one playback surface. It must be safe to call once;
// the coordinator never calls it twice.
type StopFunc func()

// Coordinator guarantees at most one audio element plays at a time for
// the surfaces sharing it. It is an explicit handle owned by the UI
// shell, not package state, so independent surfaces (and tests) can
// each run their own without cross-talk.
type Coordinator struct {
	mtx       sync.Mutex
	currentID string
	stop      StopFunc
}

// NewCoordinator returns a coordinator with nothing playing.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Play registers id as the active playback, first stopping whatever was
// playing. stop may be nil for surfaces that cannot be interrupted.
func (c *Coordinator) Play(id string, stop StopFunc) {
	c.mtx.Lock()
	prev := c.stop
	c.currentID = id
	c.stop = stop
	c.mtx.Unlock()

	if prev != nil {
		prev()
	}
}

// Stop halts playback for id if it is the active one. Stopping a
// surface that is no longer active is a no-op.
func (c *Coordinator) Stop(id string) {
	c.mtx.Lock()
	if c.currentID != id {
		c.mtx.Unlock()
		return
	}
	stop := c.stop
	c.currentID = ""
	c.stop = nil
	c.mtx.Unlock()

	if stop != nil {
		stop()
	}
}

// StopAll halts whatever is playing.
func (c *Coordinator) StopAll() {
	c.mtx.Lock()
	stop := c.stop
	c.currentID = ""
	c.stop = nil
	c.mtx.Unlock()

	if stop != nil {
		stop()
	}
}

// Current returns the id of the active playback, or "" when idle.
func (c *Coordinator) Current() string {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.currentID
}
