package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/cubenav/engine/util"
	"github.com/memmaker/cubenav/game"
)

func runSimulation() {
	cfg := game.DefaultConfig()
	if loaded, err := game.LoadConfigFile("./assets/config/navigation.yaml"); err == nil {
		cfg = loaded
	}

	sim, err := game.NewSimulation(cfg)
	if err != nil {
		util.LogSimError(err.Error())
		return
	}

	player := game.NewControlledAgent("Player", mgl32.Vec3{0, 0, cfg.HalfExtent - 0.2})
	sim.Spawn(player)
	sim.Spawn(game.NewAgent("Grunt #1", mgl32.Vec3{-2, 1, cfg.HalfExtent - 0.2}))
	sim.Spawn(game.NewAgent("Grunt #2", mgl32.Vec3{cfg.HalfExtent - 0.2, -1, 2}))

	sim.OnRotationStarted(func(direction game.RotationDirection) {
		util.LogSimInfo(fmt.Sprintf("[Demo] rotation started: %s", direction))
	})
	sim.OnRotationCompleted(func() {
		util.LogSimInfo("[Demo] rotation completed")
	})
	sim.OnFaceChanged(func(newFace game.FaceID) {
		util.LogSimInfo(fmt.Sprintf("[Demo] front face is now %s", newFace))
	})

	// walk the player towards the top edge until the cube turns
	player.SetIntent(mgl32.Vec2{0, 1})

	const step = 1.0 / 60.0
	for i := 0; i < 600; i++ {
		sim.Update(step)
	}

	fmt.Printf("front face after walking up: %s\n", sim.CurrentFace())
	fmt.Printf("player ended up at %v on face %s\n", player.Position(), player.FaceID)
	fmt.Print(sim.StepTimings())
}
