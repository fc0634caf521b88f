package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubenav/engine/util"
)

// OrbitMapper keeps the controlled agent glued to the cube surface during a
// quarter-turn. The agent's offset from its face anchor is split into an
// in-plane radius/angle pair and a constant component along the rotation
// axis. Each step the angle advances by the engine's eased progress and the
// position is rebuilt from the anchor's swept position, so the agent rides
// the same arc the face does and lands exactly where the algebra says.
type OrbitMapper struct {
	engine *RotationEngine

	agent       *Agent
	anchorLocal mgl32.Vec3
	radius      float32
	startAngle  float32
	totalAngle  float32
	perp        float32
	axis        mgl32.Vec3
	basisU      mgl32.Vec3
	basisV      mgl32.Vec3
	active      bool
}

func NewOrbitMapper(engine *RotationEngine) *OrbitMapper {
	return &OrbitMapper{engine: engine}
}

// Begin captures the orbit state for the agent's current face. Returns
// false when no anchor resolves for that face; the caller then lets the
// agent ride the body rigidly instead of orbiting, degraded but not fatal.
func (m *OrbitMapper) Begin(agent *Agent, anchors *AnchorSet, direction RotationDirection) bool {
	anchor, ok := anchors.FaceAnchor(agent.FaceID)
	if !ok {
		util.LogOrbitWarning(fmt.Sprintf("[OrbitMapper] no anchor for face %s, %s rides the body instead", agent.FaceID, agent.Name))
		return false
	}

	m.axis = direction.Axis()
	m.basisU, m.basisV = orbitBasis(direction)
	// the anchor's local offset is stable for the whole turn, its world
	// position is re-derived from the body orientation every step
	m.anchorLocal = anchor.GetPosition()

	offset := agent.Position().Sub(anchor.GetWorldPosition())
	planarU := offset.Dot(m.basisU)
	planarV := offset.Dot(m.basisV)
	m.radius = util.Sqrt(planarU*planarU + planarV*planarV)
	m.startAngle = util.Atan2(planarV, planarU)
	m.perp = offset.Dot(m.axis)
	m.totalAngle = direction.Angle()
	m.agent = agent
	m.active = true
	util.LogOrbitDebug(fmt.Sprintf("[OrbitMapper] orbiting %s around %s, radius %.3f", agent.Name, agent.FaceID, m.radius))
	return true
}

func (m *OrbitMapper) Active() bool {
	return m.active
}

// Update rewrites the agent's position from the swept anchor and the
// advanced orbit angle. While a turn is in flight the mapper is the only
// writer of the controlled agent's position.
func (m *OrbitMapper) Update() {
	if !m.active {
		return
	}
	angle := m.startAngle + m.totalAngle*float32(m.engine.Progress())
	anchorWorld := m.engine.Orientation().Rotate(m.anchorLocal)
	planar := m.basisU.Mul(m.radius * util.Cos(angle)).Add(m.basisV.Mul(m.radius * util.Sin(angle)))
	m.agent.Transform.SetPosition(anchorWorld.Add(planar).Add(m.axis.Mul(m.perp)))
}

// Finish stops orbiting. The final Update already placed the agent on the
// geometrically correct spot, nothing snaps here.
func (m *OrbitMapper) Finish() {
	m.active = false
	m.agent = nil
}

// Release stops the orbit early when it is acting on the given agent. A
// despawned agent must not keep receiving position writes.
func (m *OrbitMapper) Release(agent *Agent) {
	if m.agent == agent {
		m.active = false
		m.agent = nil
	}
}

// orbitBasis returns the right-handed in-plane basis for the direction's
// rotation axis: rotating by a positive angle sweeps u towards v.
func orbitBasis(direction RotationDirection) (mgl32.Vec3, mgl32.Vec3) {
	switch direction.Axis() {
	case mgl32.Vec3{1, 0, 0}:
		return mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}
	default:
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
	}
}
