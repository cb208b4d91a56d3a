package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/asteroids/components"
	"github.com/pthm-cable/asteroids/systems"
)

// spawnInitialEntities creates the ship and the starting asteroids.
func (g *Game) spawnInitialEntities() {
	g.ship = g.spawnShip()
	for i := 0; i < g.cfg.Asteroid.Count; i++ {
		g.spawnAsteroid()
	}
}

// spawnShip creates the player ship at rest at the origin.
func (g *Game) spawnShip() ecs.Entity {
	sc := g.cfg.Ship

	pos := components.Position{}
	vel := components.Velocity{}
	dir := components.Direction{Angle: systems.NormalizeHeading(sc.InitialHeading)}
	health := components.Health{Value: sc.Health}
	human := components.Human{}
	body := components.Body{Kind: components.KindShip}
	weapon := components.Weapon{}

	e := g.shipMap.NewEntity(&pos, &vel, &dir, &health, &human, &body, &weapon)
	g.counts.Ships++
	return e
}

// spawnAsteroid creates an asteroid at a random window position drifting
// in a random direction.
func (g *Game) spawnAsteroid() ecs.Entity {
	ac := g.cfg.Asteroid

	pos := systems.RandomPosition(g.rng, g.bounds)
	_, vel := systems.RandomLaunch(g.rng, g.cfg.Derived.AsteroidSpeed)
	health := components.Health{Value: ac.Health}
	body := components.Body{Kind: components.KindAsteroid}

	e := g.asteroidMap.NewEntity(&pos, &vel, &health, &body)
	g.counts.Asteroids++
	return e
}

// spawnLaser creates a laser for a shot and starts tracking its lifetime.
func (g *Game) spawnLaser(shot systems.Shot) ecs.Entity {
	lc := g.cfg.Laser

	pos := shot.Position
	vel := shot.Velocity
	health := components.Health{Value: lc.Health}
	damage := components.Damage{Amount: lc.Damage}
	lifetime := components.Lifetime{Duration: lc.Lifetime}
	body := components.Body{Kind: components.KindLaser}

	e := g.laserMap.NewEntity(&pos, &vel, &health, &damage, &lifetime, &body)
	g.counts.Lasers++
	g.lifetimeTracker.Register(e.ID(), g.tick)
	g.collector.RecordFire()

	slog.Debug("laser spawned", "tick", g.tick, "entity", e.ID(), "x", pos.X, "y", pos.Y)
	return e
}

// despawnLaser removes an expired laser. Must not be called while a query is open.
func (g *Game) despawnLaser(e ecs.Entity) {
	if !g.world.Alive(e) {
		return
	}

	lived, ok := g.lifetimeTracker.Remove(e.ID(), g.tick)
	g.world.RemoveEntity(e)
	g.counts.Lasers--
	if ok {
		g.collector.RecordExpire(lived)
	}

	slog.Debug("laser despawned", "tick", g.tick, "entity", e.ID(), "lived_ticks", lived)

	if g.inspector != nil {
		if sel, has := g.inspector.Selected(); has && sel == e {
			g.inspector.Deselect()
		}
	}
}
