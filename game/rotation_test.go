package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubenav/engine/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStep = 1.0 / 60.0

func newTestEngine(t *testing.T) (*RotationEngine, *util.Transform, *AnchorSet, *Notifier) {
	t.Helper()
	body := util.NewDefaultTransform("cube.body")
	anchors := NewAnchorSet(body, 5.0)
	notifier := NewNotifier()
	engine := NewRotationEngine(body, anchors, notifier, 0.5)
	require.NoError(t, engine.Setup())
	return engine, body, anchors, notifier
}

func finishTurn(t *testing.T, engine *RotationEngine) {
	t.Helper()
	for i := 0; i < 1000 && engine.IsRotating(); i++ {
		engine.Update(testStep)
	}
	require.False(t, engine.IsRotating(), "turn did not finish")
}

func runTurn(t *testing.T, engine *RotationEngine, direction RotationDirection) {
	t.Helper()
	require.True(t, engine.RequestRotation(direction))
	finishTurn(t, engine)
}

// assertLatticeOrientation checks that the orientation still maps the
// canonical axes onto signed unit axes, i.e. it never drifted off the
// quarter-turn lattice.
func assertLatticeOrientation(t *testing.T, orientation mgl32.Quat) {
	t.Helper()
	axes := []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for _, axis := range axes {
		rotated := orientation.Rotate(axis)
		for i := 0; i < 3; i++ {
			component := util.Abs(rotated[i])
			snapped := util.Round(component)
			assert.InDelta(t, snapped, component, 1e-3, "axis %v rotated to %v, off lattice", axis, rotated)
		}
	}
}

func TestTurnFollowedByInverseRestoresPose(t *testing.T) {
	for _, direction := range AllDirections() {
		engine, _, _, _ := newTestEngine(t)
		runTurn(t, engine, direction)
		runTurn(t, engine, direction.Inverse())

		dot := util.Abs(engine.Orientation().Dot(mgl32.QuatIdent()))
		assert.InDelta(t, 1.0, dot, 1e-4, "%s then %s must restore the identity pose", direction, direction.Inverse())
		assert.Equal(t, FaceFront, engine.CurrentFace())
	}
}

func TestFrontFaceTransitions(t *testing.T) {
	expected := map[RotationDirection]FaceID{
		TurnUp:    FaceTop,
		TurnDown:  FaceBottom,
		TurnLeft:  FaceFront,
		TurnRight: FaceFront,
	}
	for direction, face := range expected {
		engine, _, _, _ := newTestEngine(t)
		runTurn(t, engine, direction)
		assert.Equal(t, face, engine.CurrentFace(), "front face after %s", direction)
	}
}

func TestFourUpTurnsComeFullCircle(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	faces := []FaceID{FaceTop, FaceBack, FaceBottom, FaceFront}
	for _, face := range faces {
		runTurn(t, engine, TurnUp)
		assert.Equal(t, face, engine.CurrentFace())
	}
	dot := util.Abs(engine.Orientation().Dot(mgl32.QuatIdent()))
	assert.InDelta(t, 1.0, dot, 1e-4)
}

func TestRollsKeepFrontFaceThroughPitches(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	runTurn(t, engine, TurnUp)
	require.Equal(t, FaceTop, engine.CurrentFace())
	runTurn(t, engine, TurnRight)
	assert.Equal(t, FaceTop, engine.CurrentFace(), "a roll must not change the front face")
	runTurn(t, engine, TurnLeft)
	assert.Equal(t, FaceTop, engine.CurrentFace())
}

func TestLongTurnSequenceStaysOnLattice(t *testing.T) {
	engine, _, anchors, _ := newTestEngine(t)
	pattern := []RotationDirection{TurnRight, TurnUp, TurnLeft, TurnUp, TurnDown, TurnRight, TurnDown, TurnLeft}
	for i := 0; i < 120; i++ {
		runTurn(t, engine, pattern[i%len(pattern)])
		assertLatticeOrientation(t, engine.Orientation())
		assert.True(t, anchors.IsCanonical(1e-3), "anchors off canonical after turn %d", i+1)
	}
}

func TestSettleSnapsExactlyToTarget(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	expected := TurnLeft.Delta().Mul(mgl32.QuatIdent()).Normalize()
	runTurn(t, engine, TurnLeft)
	actual := engine.Orientation()
	assert.InDelta(t, float64(expected.W), float64(actual.W), 1e-6)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, float64(expected.V[i]), float64(actual.V[i]), 1e-6)
	}
}

func TestConcurrentRequestIsRejectedAndHarmless(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	require.True(t, engine.RequestRotation(TurnUp))
	for i := 0; i < 5; i++ {
		engine.Update(testStep)
	}
	require.True(t, engine.IsRotating())

	before := engine.Orientation()
	progressBefore := engine.Progress()
	assert.False(t, engine.RequestRotation(TurnLeft))
	assert.Equal(t, before, engine.Orientation(), "rejected request must not touch the orientation")
	assert.Equal(t, progressBefore, engine.Progress(), "rejected request must not restart the interpolation")

	finishTurn(t, engine)
	expected := TurnUp.Delta()
	dot := util.Abs(engine.Orientation().Dot(expected))
	assert.InDelta(t, 1.0, dot, 1e-4, "the original turn must run to its own target")
}

func TestRequestBeforeSetupIsRejected(t *testing.T) {
	body := util.NewDefaultTransform("cube.body")
	anchors := NewAnchorSet(body, 5.0)
	engine := NewRotationEngine(body, anchors, NewNotifier(), 0.5)
	assert.False(t, engine.RequestRotation(TurnUp))
}

func TestMissingFaceAnchorFailsSetup(t *testing.T) {
	body := util.NewDefaultTransform("cube.body")
	anchors := NewAnchorSetForFaces(body, 5.0, FaceFront, FaceRight, FaceBack, FaceLeft, FaceTop)
	engine := NewRotationEngine(body, anchors, NewNotifier(), 0.5)
	assert.Error(t, engine.Setup())
	assert.False(t, engine.RequestRotation(TurnUp))
}

func TestAnchorsSweepWithTheBodyMidTurn(t *testing.T) {
	engine, _, anchors, _ := newTestEngine(t)
	require.True(t, anchors.IsCanonical(1e-4))
	require.True(t, engine.RequestRotation(TurnUp))
	for i := 0; i < 10; i++ {
		engine.Update(testStep)
	}
	require.True(t, engine.IsRotating())
	assert.False(t, anchors.IsCanonical(1e-3), "anchors must ride along while the body rotates")
	finishTurn(t, engine)
	assert.True(t, anchors.IsCanonical(1e-4), "anchors must be back on canonical positions once idle")
}

func TestEngineEventOrdering(t *testing.T) {
	engine, _, _, notifier := newTestEngine(t)
	var sequence []string
	notifier.OnRotationStarted(func(direction RotationDirection) {
		sequence = append(sequence, "started:"+direction.String())
	})
	notifier.OnRotationCompleted(func() {
		sequence = append(sequence, "completed")
	})
	notifier.OnFaceChanged(func(newFace FaceID) {
		sequence = append(sequence, "face-changed:"+newFace.String())
	})

	runTurn(t, engine, TurnUp)
	notifier.Dispatch()
	assert.Equal(t, []string{"started:TurnUp", "completed", "face-changed:Top"}, sequence)

	sequence = nil
	runTurn(t, engine, TurnRight)
	notifier.Dispatch()
	assert.Equal(t, []string{"started:TurnRight", "completed"}, sequence, "a roll keeps the front face, no face-changed event")
}

func TestRotationDurationIsReported(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	assert.Equal(t, 0.5, engine.RotationDuration())
}
