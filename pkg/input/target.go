package input

import (
	"math"
	"sync/atomic"
)

// noTarget marks an empty Target; it is a NaN bit pattern no Set call stores.
const noTarget uint64 = 0x7ff8dead0000beef

// Target holds the most recent paddle position requested by an input handler.
// Writers and the reading loop may run on different goroutines; only the latest value is kept.
type Target struct {
	bits atomic.Uint64
}

func NewTarget() *Target {
	t := &Target{}
	t.bits.Store(noTarget)
	return t
}

// Set records y as the latest requested paddle top. NaN values are ignored.
func (t *Target) Set(y float64) {
	if math.IsNaN(y) {
		return
	}
	t.bits.Store(math.Float64bits(y))
}

// Take returns the latest value and empties the Target.
func (t *Target) Take() (float64, bool) {
	bits := t.bits.Swap(noTarget)
	if bits == noTarget {
		return 0, false
	}
	return math.Float64frombits(bits), true
}

// Clear discards any pending value.
func (t *Target) Clear() {
	t.bits.Store(noTarget)
}
