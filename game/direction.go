package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RotationDirection is one of the four legal quarter-turn operations.
// Up and Down pitch the cube about its X axis and bring a new face to the
// front. Left and Right roll about the Z axis, the front face stays front.
// The Y axis is never rotated about.
type RotationDirection int

const (
	TurnRight RotationDirection = iota
	TurnLeft
	TurnUp
	TurnDown
)

// AllDirections returns the directions in their fixed evaluation order.
// The order doubles as the last-resort tie-break for corner triggers.
func AllDirections() []RotationDirection {
	return []RotationDirection{TurnRight, TurnLeft, TurnUp, TurnDown}
}

func (d RotationDirection) String() string {
	switch d {
	case TurnRight:
		return "TurnRight"
	case TurnLeft:
		return "TurnLeft"
	case TurnUp:
		return "TurnUp"
	case TurnDown:
		return "TurnDown"
	default:
		return "Unknown"
	}
}

// Axis returns the cube-local rotation axis for this direction.
func (d RotationDirection) Axis() mgl32.Vec3 {
	switch d {
	case TurnUp, TurnDown:
		return mgl32.Vec3{1, 0, 0}
	default:
		return mgl32.Vec3{0, 0, 1}
	}
}

// Angle returns the signed quarter-turn angle in radians.
func (d RotationDirection) Angle() float32 {
	switch d {
	case TurnUp, TurnLeft:
		return math.Pi / 2
	default:
		return -math.Pi / 2
	}
}

// Delta returns the quaternion for one quarter-turn in this direction.
func (d RotationDirection) Delta() mgl32.Quat {
	return mgl32.QuatRotate(d.Angle(), d.Axis())
}

// Inverse returns the direction that algebraically undoes this one.
func (d RotationDirection) Inverse() RotationDirection {
	switch d {
	case TurnRight:
		return TurnLeft
	case TurnLeft:
		return TurnRight
	case TurnUp:
		return TurnDown
	default:
		return TurnUp
	}
}

// IntentDir returns the in-plane unit vector an agent walks towards to
// trigger this direction, expressed in the front-facing axes.
func (d RotationDirection) IntentDir() mgl32.Vec2 {
	switch d {
	case TurnRight:
		return mgl32.Vec2{1, 0}
	case TurnLeft:
		return mgl32.Vec2{-1, 0}
	case TurnUp:
		return mgl32.Vec2{0, 1}
	default:
		return mgl32.Vec2{0, -1}
	}
}

// EdgeDir3 embeds IntentDir into the front face plane.
func (d RotationDirection) EdgeDir3() mgl32.Vec3 {
	planar := d.IntentDir()
	return mgl32.Vec3{planar.X(), planar.Y(), 0}
}
