package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubenav/engine/util"
)

const intentEpsilon = 1e-5

// TriggerEvaluator decides whether an agent's position and movement intent
// justify a quarter-turn, and in which direction. Three conditions have to
// hold at once: the agent is out near the rim on the candidate side, it is
// close to that side's edge detector, and it is deliberately walking that
// way. All comparisons are strict, a value exactly on a threshold does not
// fire.
type TriggerEvaluator struct {
	anchors *AnchorSet
	engine  *RotationEngine

	edgeDistance    float32
	detectorMax     float32
	intentThreshold float32
}

func NewTriggerEvaluator(anchors *AnchorSet, engine *RotationEngine, cfg Config) *TriggerEvaluator {
	return &TriggerEvaluator{
		anchors:         anchors,
		engine:          engine,
		edgeDistance:    cfg.EdgeDistance,
		detectorMax:     cfg.DetectorMax,
		intentThreshold: cfg.IntentThreshold,
	}
}

// Evaluate returns the direction to turn, or false for no trigger. While a
// turn is in flight nothing fires, re-entrant requests are pointless. When
// two directions qualify at once (only possible in a corner) the one with
// the smaller detector distance wins; on an exact tie the fixed direction
// order decides.
func (t *TriggerEvaluator) Evaluate(pos mgl32.Vec3, intent mgl32.Vec2) (RotationDirection, bool) {
	if t.engine.IsRotating() {
		return TurnRight, false
	}
	if intent.Len() < intentEpsilon {
		return TurnRight, false
	}
	normalizedIntent := intent.Normalize()

	found := false
	var bestDir RotationDirection
	var bestDist float32
	for _, dir := range AllDirections() {
		if pos.Dot(dir.EdgeDir3()) <= t.edgeDistance {
			continue
		}
		detector, ok := t.anchors.Detector(dir)
		if !ok {
			continue
		}
		dist := util.EucledianDistance3D(pos, detector.GetWorldPosition())
		if dist >= t.detectorMax {
			continue
		}
		if normalizedIntent.Dot(dir.IntentDir()) <= t.intentThreshold {
			continue
		}
		if !found || dist < bestDist {
			found = true
			bestDir = dir
			bestDist = dist
		}
	}
	if found {
		util.LogTriggerDebug(fmt.Sprintf("[TriggerEvaluator] %s fires at %v (detector distance %.3f)", bestDir, pos, bestDist))
	}
	return bestDir, found
}
