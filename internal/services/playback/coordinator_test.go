package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinator_AtMostOneActive(t *testing.T) {
	c := NewCoordinator()

	stoppedA := false
	c.Play("a", func() { stoppedA = true })
	assert.Equal(t, "a", c.Current())

	stoppedB := false
	c.Play("b", func() { stoppedB = true })

	assert.True(t, stoppedA, "starting b must stop a")
	assert.False(t, stoppedB)
	assert.Equal(t, "b", c.Current())
}

func TestCoordinator_StopOnlyActive(t *testing.T) {
	c := NewCoordinator()

	stopped := false
	c.Play("a", func() { stopped = true })

	// Stopping something that is not playing changes nothing.
	c.Stop("b")
	assert.False(t, stopped)
	assert.Equal(t, "a", c.Current())

	c.Stop("a")
	assert.True(t, stopped)
	assert.Empty(t, c.Current())

	// Stop is not called a second time.
	stopped = false
	c.Stop("a")
	assert.False(t, stopped)
}

func TestCoordinator_StopAll(t *testing.T) {
	c := NewCoordinator()

	stopped := false
	c.Play("a", func() { stopped = true })
	c.StopAll()

	assert.True(t, stopped)
	assert.Empty(t, c.Current())

	// Idle StopAll is fine.
	c.StopAll()
}

func TestCoordinator_NilStopFunc(t *testing.T) {
	c := NewCoordinator()

	c.Play("a", nil)
	c.Play("b", nil)
	c.StopAll()
	assert.Empty(t, c.Current())
}

func TestCoordinator_IndependentHandles(t *testing.T) {
	c1 := NewCoordinator()
	c2 := NewCoordinator()

	stopped := false
	c1.Play("a", func() { stopped = true })
	c2.Play("a", nil)
	c2.StopAll()

	// A second coordinator never reaches into the first one's playback.
	assert.False(t, stopped)
	assert.Equal(t, "a", c1.Current())
}
