package game

import (
	"math"
	"testing"
)

func TestArenaContainsMovingFighter(t *testing.T) {
	s := NewSession("bounds", SessionConfig{ArenaW: 800, ArenaH: 600})
	id := s.SpawnPlayer("p1", Vec2{X: 60, Y: 60}, KindDefault)
	s.SpawnPlayer("p2", Vec2{X: 700, Y: 500}, KindDefault)

	s.SetMove("p1", Vec2{X: -1, Y: -1})
	tickSeconds(s, 2.0)

	tr := s.World.Transform(id)
	body := s.World.BodyData(id)
	if tr.Pos.X < body.Radius || tr.Pos.Y < body.Radius {
		t.Fatalf("fighter escaped the arena at (%.1f, %.1f)", tr.Pos.X, tr.Pos.Y)
	}
	if math.Abs(tr.Pos.X-body.Radius) > 1e-6 || math.Abs(tr.Pos.Y-body.Radius) > 1e-6 {
		t.Fatalf("fighter pushing the corner should rest at the radius, got (%.1f, %.1f)", tr.Pos.X, tr.Pos.Y)
	}
}

func TestProjectileNeverHitsOwner(t *testing.T) {
	s := NewSession("self", SessionConfig{})
	e1 := s.SpawnPlayer("p1", Vec2{X: 400, Y: 300}, KindDefault)
	s.SpawnPlayer("p2", Vec2{X: 60, Y: 60}, KindDefault)

	startHP := s.World.HealthData(e1).HP

	// fire at the right wall; the shot reflects and passes back through the
	// shooter
	s.Tick()
	s.Primary("p1", Vec2{X: 1})
	tickSeconds(s, ConfigFor(KindDefault).ProjectileLife)

	if hp := s.World.HealthData(e1).HP; hp != startHP {
		t.Fatalf("owner damaged by own projectile: %.1f -> %.1f", startHP, hp)
	}
}

func TestOverlappingFightersSeparate(t *testing.T) {
	s := NewSession("overlap", SessionConfig{})
	e1 := s.SpawnPlayer("p1", Vec2{X: 400, Y: 300}, KindDefault)
	e2 := s.SpawnPlayer("p2", Vec2{X: 405, Y: 300}, KindDefault)

	s.Mu.Lock()
	t1 := s.World.Transform(e1)
	t2 := s.World.Transform(e2)
	t1.Pos = Vec2{X: 400, Y: 300}
	t2.Pos = Vec2{X: 405, Y: 300}
	s.Mu.Unlock()

	s.Tick()

	d := s.World.Transform(e1).Pos.Dist(s.World.Transform(e2).Pos)
	r1 := s.World.BodyData(e1).Radius
	r2 := s.World.BodyData(e2).Radius
	if d < r1+r2-SeparationSlop-1e-6 {
		t.Fatalf("fighters still overlapping after resolution: dist %.2f, radii %.2f", d, r1+r2)
	}
}

func TestHeavierFighterMovesLess(t *testing.T) {
	s := NewSession("mass", SessionConfig{})
	e1 := s.SpawnPlayer("titan", Vec2{X: 400, Y: 300}, KindTitan)
	e2 := s.SpawnPlayer("archer", Vec2{X: 430, Y: 300}, KindArcher)

	s.Mu.Lock()
	p1 := s.World.Transform(e1).Pos
	p2 := s.World.Transform(e2).Pos
	s.Mu.Unlock()

	s.Tick()

	d1 := s.World.Transform(e1).Pos.Dist(p1)
	d2 := s.World.Transform(e2).Pos.Dist(p2)
	if d1 >= d2 {
		t.Fatalf("titan (mass %.1f) moved %.2f, archer (mass %.1f) moved %.2f",
			s.World.BodyData(e1).Mass, d1, s.World.BodyData(e2).Mass, d2)
	}
}

func TestSpikeHazardDamagesOnContact(t *testing.T) {
	s := NewSession("spike", SessionConfig{
		EnableHazards: true,
		Hazards: []HazardSpec{
			{Kind: "spike", X: 400, Y: 300, Radius: 40, Damage: 10},
		},
	})
	id := s.SpawnPlayer("p1", Vec2{X: 430, Y: 300}, KindDefault)
	s.SpawnPlayer("p2", Vec2{X: 60, Y: 60}, KindDefault)

	startHP := s.World.HealthData(id).HP
	s.SetMove("p1", Vec2{X: -1})
	tickSeconds(s, 0.3)

	if hp := s.World.HealthData(id).HP; hp >= startHP {
		t.Fatal("walking onto spikes dealt no damage")
	}
}

func TestProjectilePassesOverHazard(t *testing.T) {
	s := NewSession("shot-over-spike", SessionConfig{
		EnableHazards: true,
		Hazards: []HazardSpec{
			{Kind: "spike", X: 400, Y: 300, Radius: 50, Damage: 10},
		},
	})
	s.SpawnPlayer("p1", Vec2{X: 200, Y: 300}, KindDefault)
	e2 := s.SpawnPlayer("p2", Vec2{X: 600, Y: 300}, KindDefault)

	s.Tick()
	s.Primary("p1", Vec2{X: 1})
	tickSeconds(s, 1.5)

	if hp := s.World.HealthData(e2); hp == nil || hp.HP >= ConfigFor(KindDefault).MaxHP {
		t.Fatal("shot across the hazard never reached its target")
	}
}
