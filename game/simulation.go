package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/cubenav/engine/util"
	"github.com/pkg/errors"
)

// Simulation wires the navigation core together and advances it one
// cooperative step at a time. It owns the rotation engine explicitly;
// collaborators get the reference handed to them instead of reaching for
// ambient global state.
//
// Stage order per step: intent application, trigger evaluation, rotation
// and orbit advancement, face tracking, event dispatch. Nothing preempts
// within a step.
type Simulation struct {
	cfg      Config
	body     *util.Transform
	anchors  *AnchorSet
	notifier *Notifier
	engine   *RotationEngine
	trigger  *TriggerEvaluator
	orbit    *OrbitMapper
	tracker  *FaceTracker
	timer    *util.Timer

	agents     []*Agent
	controlled *Agent
	riders     []*Agent
	turnActive bool
	orbiting   bool
}

func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "navigation config")
	}
	body := util.NewDefaultTransform("cube.body")
	anchors := NewAnchorSet(body, cfg.HalfExtent)
	notifier := NewNotifier()
	engine := NewRotationEngine(body, anchors, notifier, cfg.RotationDuration)
	if err := engine.Setup(); err != nil {
		return nil, errors.Wrap(err, "rotation engine setup")
	}
	return &Simulation{
		cfg:      cfg,
		body:     body,
		anchors:  anchors,
		notifier: notifier,
		engine:   engine,
		trigger:  NewTriggerEvaluator(anchors, engine, cfg),
		orbit:    NewOrbitMapper(engine),
		tracker:  NewFaceTracker(engine),
		timer:    util.NewTimer(),
	}, nil
}

func (s *Simulation) Spawn(agent *Agent) {
	s.agents = append(s.agents, agent)
	if agent.Controlled {
		s.controlled = agent
	}
}

func (s *Simulation) Despawn(id uuid.UUID) {
	for i, agent := range s.agents {
		if agent.ID != id {
			continue
		}
		s.agents = append(s.agents[:i], s.agents[i+1:]...)
		s.detachFromTurn(agent)
		if s.controlled == agent {
			s.controlled = nil
		}
		return
	}
}

// detachFromTurn takes a despawned agent out of whatever the current turn is
// doing with it, so its transform is never written again afterwards.
func (s *Simulation) detachFromTurn(agent *Agent) {
	s.orbit.Release(agent)
	if agent.Transform.HasParent() {
		world := agent.Position()
		agent.Transform.SetParent(nil)
		agent.Transform.SetPosition(world)
	}
	for i, rider := range s.riders {
		if rider == agent {
			s.riders = append(s.riders[:i], s.riders[i+1:]...)
			return
		}
	}
}

func (s *Simulation) Agents() []*Agent {
	return s.agents
}

func (s *Simulation) ControlledAgent() *Agent {
	return s.controlled
}

func (s *Simulation) Engine() *RotationEngine {
	return s.engine
}

func (s *Simulation) Anchors() *AnchorSet {
	return s.anchors
}

func (s *Simulation) StepTimings() string {
	return s.timer.String()
}

func (s *Simulation) CurrentFace() FaceID {
	return s.engine.CurrentFace()
}

func (s *Simulation) IsRotating() bool {
	return s.engine.IsRotating()
}

func (s *Simulation) RotationDuration() float64 {
	return s.engine.RotationDuration()
}

// TryRotate forces a turn from outside the automatic trigger, for scripted
// or manual use. Same acceptance rules as any other request.
func (s *Simulation) TryRotate(direction RotationDirection) bool {
	return s.engine.RequestRotation(direction)
}

func (s *Simulation) OnRotationStarted(handler RotationStartedHandler) {
	s.notifier.OnRotationStarted(handler)
}

func (s *Simulation) OnRotationCompleted(handler RotationCompletedHandler) {
	s.notifier.OnRotationCompleted(handler)
}

func (s *Simulation) OnFaceChanged(handler FaceChangedHandler) {
	s.notifier.OnFaceChanged(handler)
}

// Update advances one simulation step.
func (s *Simulation) Update(deltaTime float64) {
	stop := s.timer.Measure("step")

	s.applyIntent(deltaTime)

	if s.controlled != nil && !s.engine.IsRotating() {
		if direction, fired := s.trigger.Evaluate(s.controlled.Position(), s.controlled.Intent); fired {
			s.engine.RequestRotation(direction)
		}
	}

	// a turn may also have been accepted via TryRotate since the last step
	if s.engine.IsRotating() && !s.turnActive {
		s.beginTurn()
	}

	s.engine.Update(deltaTime)
	s.orbit.Update()
	if s.turnActive && !s.engine.IsRotating() {
		s.endTurn()
	}

	s.tracker.Track(s.agents)

	s.notifier.Dispatch()
	stop()
}

// applyIntent moves the controlled agent in the front face plane. While a
// turn is in flight the orbit mapper is the only writer of that position,
// so movement is suspended.
func (s *Simulation) applyIntent(deltaTime float64) {
	if s.controlled == nil || s.engine.IsRotating() {
		return
	}
	intent := s.controlled.Intent
	if intent.Len() < intentEpsilon {
		return
	}
	limit := s.cfg.HalfExtent
	step := intent.Mul(s.cfg.MoveSpeed * float32(deltaTime))
	pos := s.controlled.Position()
	pos = mgl32.Vec3{
		util.Clamp32(pos.X()+step.X(), -limit, limit),
		util.Clamp32(pos.Y()+step.Y(), -limit, limit),
		pos.Z(),
	}
	s.controlled.Transform.SetPosition(pos)
}

// beginTurn puts every agent under the turn's control: the controlled one
// orbits its face anchor, everyone else is parented to the body and moves
// with it for free. If the orbit cannot resolve an anchor the controlled
// agent rides rigidly as well.
func (s *Simulation) beginTurn() {
	s.turnActive = true
	s.orbiting = false
	if s.controlled != nil {
		s.orbiting = s.orbit.Begin(s.controlled, s.anchors, s.engine.Direction())
	}
	for _, agent := range s.agents {
		if agent == s.controlled && s.orbiting {
			continue
		}
		s.attachRider(agent)
	}
}

func (s *Simulation) attachRider(agent *Agent) {
	local := s.engine.Orientation().Inverse().Rotate(agent.Position())
	agent.Transform.SetParent(s.body)
	agent.Transform.SetPosition(local)
	s.riders = append(s.riders, agent)
}

// endTurn bakes the riders back into world coordinates and releases the
// orbit. Runs in the same step the engine settles in, before face tracking.
func (s *Simulation) endTurn() {
	s.turnActive = false
	if s.orbiting {
		s.orbit.Finish()
		s.orbiting = false
	}
	for _, agent := range s.riders {
		world := agent.Position()
		agent.Transform.SetParent(nil)
		agent.Transform.SetPosition(world)
	}
	s.riders = s.riders[:0]
}
