package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/asteroids/components"
	"github.com/pthm-cable/asteroids/inspector"
)

// selectTolerance widens hit circles so small lasers can be clicked.
const selectTolerance = 5.0

// getIf returns e's component from m, or nil if e does not have it.
func getIf[T any](m *ecs.Map[T], e ecs.Entity) *T {
	if !m.Has(e) {
		return nil
	}
	return m.Get(e)
}

// kindOf returns the entity's kind.
func (g *Game) kindOf(e ecs.Entity) components.Kind {
	return g.bodyMap.Get(e).Kind
}

// hitRadius returns half the rendered size of an entity.
func (g *Game) hitRadius(e ecs.Entity) float64 {
	return g.styles[g.kindOf(e)].size / 2
}

// selectAt selects the entity under a world-space point, or clears the
// selection if there is none.
func (g *Game) selectAt(wx, wy float64) {
	var candidates []inspector.Candidate
	query := g.bodyFilter.Query()
	for query.Next() {
		pos, body := query.Get()
		candidates = append(candidates, inspector.Candidate{
			Entity: query.Entity(),
			X:      pos.X,
			Y:      pos.Y,
			Radius: g.styles[body.Kind].size / 2,
		})
	}

	if e, ok := inspector.Nearest(candidates, wx, wy, selectTolerance); ok {
		g.inspector.Select(e)
	} else {
		g.inspector.Deselect()
	}
}

// inspectSections gathers the inspector sections for an entity.
// Components the entity lacks come back nil and are skipped.
func (g *Game) inspectSections(e ecs.Entity) []inspector.Section {
	return inspector.Collect(
		getIf(g.posMap, e),
		getIf(g.velMap, e),
		getIf(g.dirMap, e),
		getIf(g.healthMap, e),
		getIf(g.damageMap, e),
		getIf(g.lifetimeMap, e),
		getIf(g.weaponMap, e),
		getIf(g.humanMap, e),
	)
}
