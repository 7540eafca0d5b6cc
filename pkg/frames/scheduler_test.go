package frames

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_Tick(t *testing.T) {
	s := NewScheduler()
	assert.False(t, s.Tick())

	calls := 0
	s.RequestFrame(func() { calls++ })
	assert.True(t, s.Pending())
	assert.True(t, s.Tick())
	assert.False(t, s.Pending())
	assert.False(t, s.Tick())
	assert.Equal(t, 1, calls)
}

func TestScheduler_CallbackRearms(t *testing.T) {
	s := NewScheduler()
	calls := 0
	var frame func()
	frame = func() {
		calls++
		if calls < 3 {
			s.RequestFrame(frame)
		}
	}
	s.RequestFrame(frame)

	for s.Tick() {
	}
	assert.Equal(t, 3, calls)
}

func TestScheduler_CancelFrame(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.RequestFrame(func() { fired = true })

	s.CancelFrame(0)
	assert.True(t, s.Pending())

	s.CancelFrame(id + 1)
	assert.True(t, s.Pending())

	s.CancelFrame(id)
	assert.False(t, s.Pending())
	assert.False(t, s.Tick())
	assert.False(t, fired)
}

func TestScheduler_RequestReplacesPending(t *testing.T) {
	s := NewScheduler()
	first, second := 0, 0
	firstID := s.RequestFrame(func() { first++ })
	secondID := s.RequestFrame(func() { second++ })
	assert.NotEqual(t, firstID, secondID)

	// cancelling the stale ID leaves the newer request alone
	s.CancelFrame(firstID)
	assert.True(t, s.Tick())
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}
