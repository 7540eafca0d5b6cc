package kinematic

// This package includes the vector math used by the ball and paddles.
// Motion is integrated per frame, not per elapsed second.

import (
	"math"
)

// MaxBounceAngle is the largest deflection off a paddle edge (45 degrees).
const MaxBounceAngle float64 = math.Pi / 4

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by factor.
func (v Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Magnitude returns the length of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// FromAngle returns a vector of the given magnitude pointing at angle radians.
func FromAngle(angle float64, magnitude float64) Vector {
	return Vector{
		X: math.Cos(angle) * magnitude,
		Y: math.Sin(angle) * magnitude,
	}
}

// HitPosition returns where along a paddle of the given height a contact at y landed,
// 0 at the paddle top and 1 at its bottom.
func HitPosition(y float64, paddleTop float64, paddleHeight float64) float64 {
	return (y - paddleTop) / paddleHeight
}

// BounceAngle maps a hit position in [0, 1] linearly to [-MaxBounceAngle, MaxBounceAngle].
// A center hit returns 0.
func BounceAngle(hitPosition float64) float64 {
	return hitPosition*math.Pi/2 - MaxBounceAngle
}

// Clamp limits value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Segment is a straight line between two points.
type Segment struct {
	From Vector
	To   Vector
}

// DashSegments splits the line from a to b into dashes of length dash separated by gap,
// starting with a dash at a. The last dash is cut short at b.
func DashSegments(a, b Vector, dash, gap float64) []Segment {
	delta := Vector{X: b.X - a.X, Y: b.Y - a.Y}
	length := delta.Magnitude()
	if length == 0 || dash <= 0 || gap < 0 {
		return nil
	}
	unit := delta.Scale(1 / length)

	var segments []Segment
	for d := 0.0; d < length; d += dash + gap {
		end := math.Min(d+dash, length)
		segments = append(segments, Segment{
			From: a.Add(unit.Scale(d)),
			To:   a.Add(unit.Scale(end)),
		})
	}
	return segments
}
