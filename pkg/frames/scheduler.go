package frames

// ID identifies a requested frame. The zero ID is never issued.
type ID uint64

// Scheduler holds at most one pending frame callback and fires it on the next Tick.
// It stands in for a display-synced callback: the display loop calls Tick once per refresh.
// It is not safe for concurrent use; it belongs to the display loop goroutine.
type Scheduler struct {
	lastID    ID
	pendingID ID
	pending   func()
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// RequestFrame schedules callback for the next Tick and returns its ID.
// A previously pending callback is replaced.
func (s *Scheduler) RequestFrame(callback func()) ID {
	s.lastID++
	s.pendingID = s.lastID
	s.pending = callback
	return s.pendingID
}

// CancelFrame drops the pending callback if it has the given ID.
func (s *Scheduler) CancelFrame(id ID) {
	if id == 0 || id != s.pendingID {
		return
	}
	s.pendingID = 0
	s.pending = nil
}

// Pending reports whether a callback is waiting for the next Tick.
func (s *Scheduler) Pending() bool {
	return s.pending != nil
}

// Tick fires the pending callback, if any, and reports whether one fired.
// The slot is cleared before the callback runs so it may request the next frame.
func (s *Scheduler) Tick() bool {
	callback := s.pending
	if callback == nil {
		return false
	}
	s.pendingID = 0
	s.pending = nil
	callback()
	return true
}
