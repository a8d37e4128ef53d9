package game

import "testing"

func placePowerup(s *Session, pos Vec2, pu Powerup) EntityID {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	id := s.World.NewEntity()
	s.World.SetComponent(id, CompTransform, &Transform{Pos: pos})
	s.World.SetComponent(id, CompBody, &Body{Radius: powerupRadius, Mass: 1, Static: true})
	p := pu
	s.World.SetComponent(id, CompPowerup, &p)
	return id
}

func TestPowerupHealRestoresHealth(t *testing.T) {
	s := NewSession("pickup", SessionConfig{})
	e1 := s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindDefault)
	e2 := s.SpawnPlayer("p2", Vec2{X: 700, Y: 500}, KindDefault)

	s.Mu.Lock()
	s.applyDamage(e1, e2, 60)
	s.Mu.Unlock()
	hurt := s.World.HealthData(e1).HP

	id := placePowerup(s, Vec2{X: 100, Y: 100}, Powerup{Kind: PowerupHeal, Amount: 40, Until: 1e9})
	s.Tick()

	if hp := s.World.HealthData(e1); hp.HP <= hurt {
		t.Fatalf("pickup did not heal, hp %v", hp.HP)
	}
	if s.World.Exists(id) {
		t.Fatal("consumed pickup still in the world")
	}
}

func TestPowerupHealNeverExceedsMaxHealth(t *testing.T) {
	s := NewSession("pickup-cap", SessionConfig{})
	e1 := s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindDefault)
	s.SpawnPlayer("p2", Vec2{X: 700, Y: 500}, KindDefault)

	placePowerup(s, Vec2{X: 100, Y: 100}, Powerup{Kind: PowerupHeal, Amount: 40, Until: 1e9})
	s.Tick()

	if hp := s.World.HealthData(e1); hp.HP != hp.MaxHP {
		t.Fatalf("full-health pickup moved hp to %v, max %v", hp.HP, hp.MaxHP)
	}
}

func TestPowerupShieldGrantsShield(t *testing.T) {
	s := NewSession("pickup-shield", SessionConfig{})
	e1 := s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindDefault)
	s.SpawnPlayer("p2", Vec2{X: 700, Y: 500}, KindDefault)

	placePowerup(s, Vec2{X: 100, Y: 100}, Powerup{Kind: PowerupShield, Amount: 0.4, Until: 1e9})
	s.Tick()

	if s.World.ShieldData(e1) == nil {
		t.Fatal("shield pickup left no shield on the fighter")
	}
}

func TestPowerupExpiresUnclaimed(t *testing.T) {
	s := NewSession("pickup-expire", SessionConfig{})
	s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindDefault)
	s.SpawnPlayer("p2", Vec2{X: 700, Y: 500}, KindDefault)

	id := placePowerup(s, Vec2{X: 400, Y: 300}, Powerup{Kind: PowerupHeal, Amount: 40, Until: 0.2})
	tickSeconds(s, 0.5)

	if s.World.Exists(id) {
		t.Fatal("unclaimed pickup never expired")
	}
}

func TestPowerupSpawnCadence(t *testing.T) {
	s := NewSession("pickup-spawn", SessionConfig{EnablePowerups: true, Seed: 11})
	s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindGuardian)
	s.SpawnPlayer("p2", Vec2{X: 700, Y: 500}, KindGuardian)

	tickSeconds(s, powerupEvery+0.5)

	// the drop itself may already have been consumed by a fighter standing
	// on it, so assert on the rearmed timer rather than the live count
	s.Mu.Lock()
	next := s.nextPowerupAt
	s.Mu.Unlock()
	if next <= powerupEvery {
		t.Fatalf("spawn timer never rearmed, next drop at %v", next)
	}

	off := NewSession("pickup-off", SessionConfig{})
	off.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindGuardian)
	off.SpawnPlayer("p2", Vec2{X: 700, Y: 500}, KindGuardian)
	tickSeconds(off, powerupEvery+0.5)

	off.Mu.Lock()
	live := len(off.World.SortedIDs([]ComponentKey{CompPowerup}))
	off.Mu.Unlock()
	if live != 0 {
		t.Fatalf("pickups dropped in a session that disabled them: %d", live)
	}
}
