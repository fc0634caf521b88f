package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubenav/engine/util"
)

// AnchorSet holds the orbit anchor for every face and the edge detector for
// every rotation direction. All of them are rigidly attached to the cube
// body, so they sweep along with a turn. Whenever the engine is idle their
// world positions must equal the canonical positions exactly, which is why
// ResetToCanonical runs after every completed quarter-turn.
type AnchorSet struct {
	body       *util.Transform
	faces      map[FaceID]*util.Transform
	detectors  map[RotationDirection]*util.Transform
	halfExtent float32
}

// NewAnchorSet creates the full set, one anchor per face and one detector
// per direction.
func NewAnchorSet(body *util.Transform, halfExtent float32) *AnchorSet {
	return NewAnchorSetForFaces(body, halfExtent, AllFaces()...)
}

// NewAnchorSetForFaces creates a set covering only the given faces.
// Detectors are always complete, they belong to directions, not faces.
func NewAnchorSetForFaces(body *util.Transform, halfExtent float32, faces ...FaceID) *AnchorSet {
	a := &AnchorSet{
		body:       body,
		faces:      make(map[FaceID]*util.Transform),
		detectors:  make(map[RotationDirection]*util.Transform),
		halfExtent: halfExtent,
	}
	for _, face := range faces {
		t := util.NewDefaultTransform(fmt.Sprintf("anchor.%s", face))
		t.SetParent(body)
		a.faces[face] = t
	}
	for _, dir := range AllDirections() {
		t := util.NewDefaultTransform(fmt.Sprintf("detector.%s", dir))
		t.SetParent(body)
		a.detectors[dir] = t
	}
	a.ResetToCanonical()
	return a
}

func (a *AnchorSet) HalfExtent() float32 {
	return a.halfExtent
}

// CanonicalFacePosition is the center of the face, on the surface.
func (a *AnchorSet) CanonicalFacePosition(face FaceID) mgl32.Vec3 {
	return face.Normal().Mul(a.halfExtent)
}

// CanonicalDetectorPosition is the midpoint of the front face edge the
// direction walks through.
func (a *AnchorSet) CanonicalDetectorPosition(dir RotationDirection) mgl32.Vec3 {
	return dir.EdgeDir3().Mul(a.halfExtent).Add(mgl32.Vec3{0, 0, a.halfExtent})
}

// ResetToCanonical re-derives every anchor's local offset so that the
// composed world position lands exactly on the canonical position again,
// regardless of how the body is oriented.
func (a *AnchorSet) ResetToCanonical() {
	inverse := a.body.GetRotation().Inverse()
	for face, t := range a.faces {
		t.SetPosition(inverse.Rotate(a.CanonicalFacePosition(face)))
	}
	for dir, t := range a.detectors {
		t.SetPosition(inverse.Rotate(a.CanonicalDetectorPosition(dir)))
	}
}

func (a *AnchorSet) FaceAnchor(face FaceID) (*util.Transform, bool) {
	t, ok := a.faces[face]
	return t, ok
}

func (a *AnchorSet) Detector(dir RotationDirection) (*util.Transform, bool) {
	t, ok := a.detectors[dir]
	return t, ok
}

func (a *AnchorSet) DetectorWorldPosition(dir RotationDirection) mgl32.Vec3 {
	t, ok := a.detectors[dir]
	if !ok {
		return mgl32.Vec3{}
	}
	return t.GetWorldPosition()
}

// IsCanonical reports whether all anchors sit on their canonical world
// positions within epsilon. Must hold whenever the engine is idle.
func (a *AnchorSet) IsCanonical(epsilon float32) bool {
	for face, t := range a.faces {
		if util.EucledianDistance3D(t.GetWorldPosition(), a.CanonicalFacePosition(face)) > epsilon {
			return false
		}
	}
	for dir, t := range a.detectors {
		if util.EucledianDistance3D(t.GetWorldPosition(), a.CanonicalDetectorPosition(dir)) > epsilon {
			return false
		}
	}
	return true
}
