package input

// PointerTracker turns sampled pointer positions into paddle targets.
// A position only counts when it lies over the court and differs from the previous sample,
// so a resting pointer never overrides a cleared Target.
type PointerTracker struct {
	width        float64
	height       float64
	paddleHeight float64

	lastX float64
	lastY float64
	seen  bool
}

func NewPointerTracker(width, height, paddleHeight float64) *PointerTracker {
	return &PointerTracker{
		width:        width,
		height:       height,
		paddleHeight: paddleHeight,
	}
}

// Observe returns the paddle top that centers the paddle on the pointer at (x, y).
// ok is false when the pointer is outside the court or has not moved.
func (p *PointerTracker) Observe(x, y float64) (float64, bool) {
	moved := !p.seen || x != p.lastX || y != p.lastY
	p.lastX, p.lastY, p.seen = x, y, true

	if !moved || x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, false
	}
	return y - p.paddleHeight/2, true
}

// Forget drops the previous sample, e.g. when a touch ends.
func (p *PointerTracker) Forget() {
	p.seen = false
}
