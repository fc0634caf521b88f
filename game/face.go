package game

import "github.com/go-gl/mathgl/mgl32"

// FaceID identifies one of the six battlefields on the cube surface.
// Front, Right, Back and Left form the horizontal 4-cycle, Top and Bottom
// close the cube.
type FaceID int

const (
	FaceFront FaceID = iota
	FaceRight
	FaceBack
	FaceLeft
	FaceTop
	FaceBottom
)

func (f FaceID) String() string {
	switch f {
	case FaceFront:
		return "Front"
	case FaceRight:
		return "Right"
	case FaceBack:
		return "Back"
	case FaceLeft:
		return "Left"
	case FaceTop:
		return "Top"
	case FaceBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Normal returns the outward face normal in the cube's canonical pose.
func (f FaceID) Normal() mgl32.Vec3 {
	switch f {
	case FaceFront:
		return mgl32.Vec3{0, 0, 1}
	case FaceRight:
		return mgl32.Vec3{1, 0, 0}
	case FaceBack:
		return mgl32.Vec3{0, 0, -1}
	case FaceLeft:
		return mgl32.Vec3{-1, 0, 0}
	case FaceTop:
		return mgl32.Vec3{0, 1, 0}
	case FaceBottom:
		return mgl32.Vec3{0, -1, 0}
	default:
		return mgl32.Vec3{0, 0, 1}
	}
}

func AllFaces() []FaceID {
	return []FaceID{FaceFront, FaceRight, FaceBack, FaceLeft, FaceTop, FaceBottom}
}

// ClassifyFace maps a position relative to the cube center onto the face
// whose outward normal is most aligned with it. The dominant axis wins,
// exact ties resolve in the fixed order Z, X, Y. The zero vector maps to
// FaceFront.
func ClassifyFace(pos mgl32.Vec3) FaceID {
	ax := absf(pos.X())
	ay := absf(pos.Y())
	az := absf(pos.Z())

	if az >= ax && az >= ay {
		if pos.Z() >= 0 {
			return FaceFront
		}
		return FaceBack
	}
	if ax >= ay {
		if pos.X() >= 0 {
			return FaceRight
		}
		return FaceLeft
	}
	if pos.Y() >= 0 {
		return FaceTop
	}
	return FaceBottom
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
