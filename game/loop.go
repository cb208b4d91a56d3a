package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxStepsPerUpdate bounds the speed multiplier.
const maxStepsPerUpdate = 10

// consumeTicks drains whole ticks of dt from the accumulator, at most limit.
// If the limit is hit the remaining backlog is dropped, so a long stall does
// not cause a burst of catch-up ticks later.
func consumeTicks(acc *float64, dt float64, limit int) int {
	n := 0
	for *acc >= dt && n < limit {
		*acc -= dt
		n++
	}
	if n == limit && *acc >= dt {
		*acc = 0
	}
	return n
}

// Update handles input and advances the simulation by the real time elapsed
// since the last frame, in whole fixed ticks.
func (g *Game) Update() {
	g.handleInput()
	g.perfCollector.RecordFrame()

	if g.paused {
		if g.stepOnce {
			g.stepOnce = false
			g.Step(g.input.Poll(g.tick))
		}
		return
	}

	g.accumulator += float64(rl.GetFrameTime()) * float64(g.stepsPerUpdate)
	n := consumeTicks(&g.accumulator, g.dt, g.cfg.Physics.MaxStepsPerFrame*g.stepsPerUpdate)
	for i := 0; i < n; i++ {
		g.Step(g.input.Poll(g.tick))
	}
}
