package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPosition returns the position of the first active touch, or the mouse cursor when nothing touches the screen.
// touched reports whether the position comes from a touch.
func PointerPosition() (x, y float64, touched bool) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		return float64(tx), float64(ty), true
	}
	cx, cy := ebiten.CursorPosition()
	return float64(cx), float64(cy), false
}

// IsTouchJustReleased reports whether any touch ended this tick.
func IsTouchJustReleased() bool {
	return len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0
}

// IsStartJustPressed is the keyboard shortcut for the start button.
func IsStartJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

// IsResetJustPressed is the keyboard shortcut for the reset button.
func IsResetJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
