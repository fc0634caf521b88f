package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubenav/engine/util"
	"github.com/pkg/errors"
	"github.com/solarlune/gocoro"
)

// state transition table
// currentState, event, nextState

// idle, turnRequested, rotating
// rotating, turnFinished, idle

// Once a quarter-turn is accepted it always runs to completion. There is no
// cancel transition, a partial turn would leave face labels and orientation
// inconsistent.

type RotationState int

const (
	RotationStateIdle RotationState = iota
	RotationStateRotating
)

func (s RotationState) String() string {
	switch s {
	case RotationStateIdle:
		return "Idle"
	case RotationStateRotating:
		return "Rotating"
	default:
		return "Unknown"
	}
}

type RotationEvent int

const (
	EventNone RotationEvent = iota
	EventTurnRequested
	EventTurnFinished
)

type TransitionTable map[RotationState]map[RotationEvent]RotationState

func NewTransitionTable() *TransitionTable {
	t := make(TransitionTable)
	for state := RotationStateIdle; state <= RotationStateRotating; state++ {
		t[state] = make(map[RotationEvent]RotationState)
	}
	return &t
}

func (t *TransitionTable) AddTransition(fromState RotationState, event RotationEvent, toState RotationState) {
	(*t)[fromState][event] = toState
}

func (t *TransitionTable) Exists(currentState RotationState, event RotationEvent) bool {
	_, ok := (*t)[currentState][event]
	return ok
}

func (t *TransitionTable) GetNextState(currentState RotationState, event RotationEvent) RotationState {
	return (*t)[currentState][event]
}

func NewRotationTransitionTable() *TransitionTable {
	t := NewTransitionTable()
	t.AddTransition(RotationStateIdle, EventTurnRequested, RotationStateRotating)
	t.AddTransition(RotationStateRotating, EventTurnFinished, RotationStateIdle)
	return t
}

// RotationEngine owns the cube body orientation and the Idle/Rotating state
// machine. The orientation is only ever replaced by composing a quarter-turn
// delta onto it, never by accumulating angles, so repeated turns cannot
// drift off the two permitted axes.
type RotationEngine struct {
	body        *util.Transform
	anchors     *AnchorSet
	notifier    *Notifier
	transitions *TransitionTable
	state       RotationState
	front       FaceID
	duration    float64
	ready       bool

	// per-turn state, only valid while rotating
	direction RotationDirection
	fromQuat  mgl32.Quat
	toQuat    mgl32.Quat
	lerper    *util.Lerper[mgl32.Quat]
	coroutine gocoro.Coroutine
}

func NewRotationEngine(body *util.Transform, anchors *AnchorSet, notifier *Notifier, duration float64) *RotationEngine {
	return &RotationEngine{
		body:        body,
		anchors:     anchors,
		notifier:    notifier,
		transitions: NewRotationTransitionTable(),
		state:       RotationStateIdle,
		front:       FaceFront,
		duration:    duration,
	}
}

// Setup establishes the canonical pose. Until it has run successfully every
// rotation request is rejected. A face without an anchor is a configuration
// error, surfaced here instead of blowing up mid-turn.
func (e *RotationEngine) Setup() error {
	for _, face := range AllFaces() {
		if _, ok := e.anchors.FaceAnchor(face); !ok {
			return errors.Errorf("no anchor configured for face %s", face)
		}
	}
	e.body.SetRotation(mgl32.QuatIdent())
	e.anchors.ResetToCanonical()
	e.front = FaceFront
	e.ready = true
	return nil
}

func (e *RotationEngine) CurrentFace() FaceID {
	return e.front
}

func (e *RotationEngine) IsRotating() bool {
	return e.state == RotationStateRotating
}

func (e *RotationEngine) RotationDuration() float64 {
	return e.duration
}

func (e *RotationEngine) Orientation() mgl32.Quat {
	return e.body.GetRotation()
}

// Direction returns the direction of the turn in flight. Only meaningful
// while IsRotating.
func (e *RotationEngine) Direction() RotationDirection {
	return e.direction
}

// Progress returns the eased interpolation progress of the current turn,
// 1.0 once it has settled. The orbit mapper reads this so agents sweep in
// lockstep with the faces.
func (e *RotationEngine) Progress() float64 {
	if e.lerper == nil {
		return 1.0
	}
	return e.lerper.Progress()
}

// RequestRotation starts a quarter-turn. Returns false while a turn is in
// flight or before Setup has run, the caller may simply retry next step.
func (e *RotationEngine) RequestRotation(direction RotationDirection) bool {
	if !e.ready {
		util.LogRotationDebug("[RotationEngine] request rejected, canonical pose not established")
		return false
	}
	if !e.transitions.Exists(e.state, EventTurnRequested) {
		util.LogRotationDebug(fmt.Sprintf("[RotationEngine] request for %s rejected in state %s", direction, e.state))
		return false
	}
	if _, ok := e.anchors.FaceAnchor(e.front); !ok {
		util.LogRotationError(fmt.Sprintf("[RotationEngine] no anchor for face %s, refusing turn", e.front))
		return false
	}

	e.direction = direction
	e.fromQuat = e.body.GetRotation()
	// delta on the left: the turn happens around the fixed world axes,
	// not around whatever the accumulated orientation rotated them into
	e.toQuat = direction.Delta().Mul(e.fromQuat).Normalize()
	e.lerper = util.NewEasedLerper(util.SlerpQuat, e.body.SetRotation, e.fromQuat, e.toQuat, e.duration, util.EaseOutQuart)
	e.coroutine = gocoro.NewCoroutine()
	should(e.coroutine.Run(e.turnScript, direction))

	e.state = e.transitions.GetNextState(e.state, EventTurnRequested)
	e.notifier.QueueRotationStarted(direction)
	util.LogRotationInfo(fmt.Sprintf("[RotationEngine] %s accepted, front face %s", direction, e.front))
	return true
}

func (e *RotationEngine) turnScript(exe *gocoro.Execution) {
	direction := exe.Args[0].(RotationDirection)
	should(exe.YieldFunc(e.lerper.IsDone))
	e.settle(direction)
}

// Update advances the turn in flight. Call once per simulation step.
func (e *RotationEngine) Update(deltaTime float64) {
	if e.state != RotationStateRotating {
		return
	}
	if e.lerper != nil && !e.lerper.IsDone() {
		e.lerper.Update(deltaTime)
	}
	if e.coroutine.Running() {
		e.coroutine.Update()
	}
}

func (e *RotationEngine) settle(direction RotationDirection) {
	// snap to the algebraic target, interpolation residue must not survive
	e.body.SetRotation(e.toQuat)
	previous := e.front
	newFront := e.frontFaceAfterTurn()
	e.anchors.ResetToCanonical()
	e.state = e.transitions.GetNextState(e.state, EventTurnFinished)
	e.front = newFront
	e.lerper = nil

	if !e.anchors.IsCanonical(1e-4) {
		util.LogRotationError("[RotationEngine] anchors are off their canonical positions after settling")
	}

	e.notifier.QueueRotationCompleted()
	if newFront != previous {
		e.notifier.QueueFaceChanged(newFront)
	}
	util.LogRotationInfo(fmt.Sprintf("[RotationEngine] %s settled, front face %s -> %s", direction, previous, newFront))
}

// frontFaceAfterTurn re-derives the logical front from the geometry: the
// face whose rotated canonical normal classifies as front. The label can
// never disagree with the actual orientation this way.
func (e *RotationEngine) frontFaceAfterTurn() FaceID {
	orientation := e.body.GetRotation()
	for _, face := range AllFaces() {
		if ClassifyFace(orientation.Rotate(face.Normal())) == FaceFront {
			return face
		}
	}
	// unreachable while the orientation stays on the quarter-turn lattice
	return e.front
}

func should(err error) {
	if err != nil {
		util.LogRotationError(err.Error())
	}
}
