package game

import (
	"math"
	"testing"
)

func TestBurnDealsFullTickCount(t *testing.T) {
	s := NewSession("burn", SessionConfig{})
	e1 := s.SpawnPlayer("attacker", Vec2{X: 100, Y: 100}, KindFlame)
	e2 := s.SpawnPlayer("victim", Vec2{X: 700, Y: 500}, KindDefault)

	startHP := s.World.HealthData(e2).HP

	s.Mu.Lock()
	s.ApplyBurn(e2, e1, 3.0, 0.5, 2)
	s.Mu.Unlock()

	// 3 seconds at one tick per 0.5s is six ticks, including the one that
	// lands exactly on the deadline
	tickSeconds(s, 3.2)

	got := startHP - s.World.HealthData(e2).HP
	if math.Abs(got-12) > 1e-6 {
		t.Fatalf("expected 12 burn damage, got %.2f", got)
	}
	if s.World.BurnData(e2) != nil {
		t.Fatal("burn component not cleared after expiry")
	}
}

func TestBurnReapplyRefreshesInsteadOfStacking(t *testing.T) {
	s := NewSession("burn-refresh", SessionConfig{})
	e1 := s.SpawnPlayer("attacker", Vec2{X: 100, Y: 100}, KindFlame)
	e2 := s.SpawnPlayer("victim", Vec2{X: 700, Y: 500}, KindDefault)

	s.Mu.Lock()
	s.ApplyBurn(e2, e1, 3.0, 0.5, 2)
	s.ApplyBurn(e2, e1, 3.0, 0.5, 2)
	burn := s.World.BurnData(e2)
	s.Mu.Unlock()

	if burn == nil || len(burn.Instances) != 1 {
		t.Fatalf("expected one burn instance from a single source, got %+v", burn)
	}
}

func TestBurnsFromDistinctSourcesStack(t *testing.T) {
	s := NewSession("burn-stack", SessionConfig{})
	e1 := s.SpawnPlayer("a1", Vec2{X: 100, Y: 100}, KindFlame)
	e2 := s.SpawnPlayer("a2", Vec2{X: 700, Y: 100}, KindFlame)
	e3 := s.SpawnPlayer("victim", Vec2{X: 400, Y: 500}, KindDefault)

	s.Mu.Lock()
	s.ApplyBurn(e3, e1, 1.0, 0.5, 2)
	s.ApplyBurn(e3, e2, 1.0, 0.5, 3)
	burn := s.World.BurnData(e3)
	s.Mu.Unlock()

	if burn == nil || len(burn.Instances) != 2 {
		t.Fatalf("expected two independent burn instances, got %+v", burn)
	}

	startHP := s.World.HealthData(e3).HP
	tickSeconds(s, 1.2)
	got := startHP - s.World.HealthData(e3).HP
	if math.Abs(got-10) > 1e-6 {
		t.Fatalf("expected 10 combined burn damage, got %.2f", got)
	}
}

func TestStunFreezesAndRestoresVelocity(t *testing.T) {
	s := NewSession("stun", SessionConfig{})
	e1 := s.SpawnPlayer("p1", Vec2{X: 400, Y: 300}, KindDefault)
	s.SpawnPlayer("p2", Vec2{X: 100, Y: 100}, KindDefault)

	s.SetMove("p1", Vec2{X: 1})
	s.Tick()
	if tr := s.World.Transform(e1); tr.Vel.IsZero() {
		t.Fatal("fighter should be moving before the stun")
	}

	s.Mu.Lock()
	s.ApplyStun(e1, 0.5)
	s.Mu.Unlock()

	before := s.World.Transform(e1).Pos
	tickSeconds(s, 0.3)
	after := s.World.Transform(e1).Pos
	if before.Dist(after) > 1e-6 {
		t.Fatalf("stunned fighter moved %.3f units", before.Dist(after))
	}

	tickSeconds(s, 0.5)
	if s.World.StunData(e1) != nil {
		t.Fatal("stun not cleared after expiry")
	}
	pos := s.World.Transform(e1).Pos
	s.Tick()
	if s.World.Transform(e1).Pos.Dist(pos) == 0 {
		t.Fatal("fighter did not resume moving after the stun")
	}
}

func TestSlowScalesDisplacementOnly(t *testing.T) {
	s := NewSession("slow", SessionConfig{})
	e1 := s.SpawnPlayer("p1", Vec2{X: 100, Y: 300}, KindDefault)
	s.SpawnPlayer("p2", Vec2{X: 700, Y: 100}, KindDefault)

	s.SetMove("p1", Vec2{X: 1})
	start := s.World.Transform(e1).Pos
	tickSeconds(s, 0.5)
	freeDist := s.World.Transform(e1).Pos.Dist(start)

	s.Mu.Lock()
	s.ApplySlow(e1, 10.0, 0.5)
	s.Mu.Unlock()
	start = s.World.Transform(e1).Pos
	tickSeconds(s, 0.5)
	slowDist := s.World.Transform(e1).Pos.Dist(start)

	if slowDist >= freeDist*0.7 {
		t.Fatalf("slow had no effect: free %.1f vs slowed %.1f", freeDist, slowDist)
	}
}

func TestStrongerSlowWins(t *testing.T) {
	s := NewSession("slow-strong", SessionConfig{})
	e1 := s.SpawnPlayer("p1", Vec2{X: 400, Y: 300}, KindDefault)

	s.Mu.Lock()
	s.ApplySlow(e1, 2.0, 0.8)
	s.ApplySlow(e1, 2.0, 0.4)
	s.ApplySlow(e1, 2.0, 0.9) // weaker reapply keeps the strong factor
	slow := s.World.SlowData(e1)
	s.Mu.Unlock()

	if slow == nil || slow.Factor != 0.4 {
		t.Fatalf("expected factor 0.4 to stick, got %+v", slow)
	}
}

func TestShieldReducesIncomingDamage(t *testing.T) {
	s := NewSession("shield", SessionConfig{})
	e1 := s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindDefault)
	e2 := s.SpawnPlayer("p2", Vec2{X: 700, Y: 500}, KindDefault)

	startHP := s.World.HealthData(e1).HP

	s.Mu.Lock()
	s.ApplyShield(e1, 2.0, 0.5)
	s.applyDamage(e1, e2, 40)
	s.Mu.Unlock()

	got := startHP - s.World.HealthData(e1).HP
	if math.Abs(got-20) > 1e-6 {
		t.Fatalf("expected shield to halve 40 damage, got %.2f", got)
	}
}

func TestGrabEndsWhenGrabberDies(t *testing.T) {
	s := NewSession("grab", SessionConfig{})
	e1 := s.SpawnPlayer("titan", Vec2{X: 300, Y: 300}, KindTitan)
	e2 := s.SpawnPlayer("victim", Vec2{X: 380, Y: 300}, KindDefault)

	s.Mu.Lock()
	s.ApplyGrab(e2, e1, 5.0, 0.4, 5)
	s.Mu.Unlock()
	s.Tick()
	if s.World.GrabData(e2) == nil {
		t.Fatal("grab not applied")
	}

	kill(s, e1, e2)
	tickSeconds(s, 0.1)
	if s.World.GrabData(e2) != nil {
		t.Fatal("grab survived its grabber")
	}
}
