package game

import (
	"fmt"

	"github.com/memmaker/cubenav/engine/util"
)

// FaceTracker re-labels agents by where they actually are. Tracking pauses
// while the cube is mid-turn: a rider is on no stable face until the body
// settles, reclassifying it then would just produce noise.
type FaceTracker struct {
	engine *RotationEngine
}

func NewFaceTracker(engine *RotationEngine) *FaceTracker {
	return &FaceTracker{engine: engine}
}

func (ft *FaceTracker) Track(agents []*Agent) {
	if ft.engine.IsRotating() {
		return
	}
	for _, agent := range agents {
		face := ClassifyFace(agent.Position())
		if face == agent.FaceID {
			continue
		}
		util.LogFaceDebug(fmt.Sprintf("[FaceTracker] %s moved %s -> %s", agent.Name, agent.FaceID, face))
		agent.FaceID = face
	}
}
