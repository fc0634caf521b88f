package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/cubenav/engine/util"
)

// Agent is the record the navigation core works with. Creation and removal
// belong to the spawning collaborators, the core only reads and writes
// position, intent and face label.
type Agent struct {
	ID         uuid.UUID
	Name       string
	Transform  *util.Transform
	Intent     mgl32.Vec2
	FaceID     FaceID
	Controlled bool
}

func NewAgent(name string, position mgl32.Vec3) *Agent {
	transform := util.NewDefaultTransform(name)
	transform.SetPosition(position)
	return &Agent{
		ID:        uuid.New(),
		Name:      name,
		Transform: transform,
		FaceID:    ClassifyFace(position),
	}
}

// NewControlledAgent marks the agent as the one the player steers. The
// orbit mapper only ever acts on this one.
func NewControlledAgent(name string, position mgl32.Vec3) *Agent {
	agent := NewAgent(name, position)
	agent.Controlled = true
	return agent
}

// Position returns the world position, composed through the body transform
// while the agent rides a turn.
func (a *Agent) Position() mgl32.Vec3 {
	return a.Transform.GetWorldPosition()
}

// SetIntent stores the per-step movement intent in the front-facing axes.
// Input sampling happens outside the core.
func (a *Agent) SetIntent(intent mgl32.Vec2) {
	a.Intent = intent
}
