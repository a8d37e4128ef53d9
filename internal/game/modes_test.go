package game

import "testing"

func TestMatchDurationDrawOnEqualHealth(t *testing.T) {
	s := NewSession("timed", SessionConfig{MatchDuration: 0.5})
	s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindDefault)
	s.SpawnPlayer("p2", Vec2{X: 700, Y: 500}, KindDefault)

	tickSeconds(s, 0.6)

	result, ok := s.Result()
	if !ok {
		t.Fatal("timed match did not end at its duration")
	}
	if result.Winner != "" {
		t.Fatalf("equal health should draw, got winner %q", result.Winner)
	}
}

func TestMatchDurationHealthiestWins(t *testing.T) {
	s := NewSession("timed-win", SessionConfig{MatchDuration: 0.5})
	e1 := s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindDefault)
	e2 := s.SpawnPlayer("p2", Vec2{X: 700, Y: 500}, KindDefault)

	s.Mu.Lock()
	s.applyDamage(e2, e1, 50)
	s.Mu.Unlock()

	tickSeconds(s, 0.6)

	result, ok := s.Result()
	if !ok {
		t.Fatal("timed match did not end at its duration")
	}
	if result.Winner != "p1" {
		t.Fatalf("expected the healthier fighter to win, got %q", result.Winner)
	}
}

func TestMatchDurationIgnoresLoneFighter(t *testing.T) {
	s := NewSession("timed-lone", SessionConfig{MatchDuration: 0.5})
	s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindDefault)

	tickSeconds(s, 1.0)

	if _, ok := s.Result(); ok {
		t.Fatal("a lone waiting player timed out into a win")
	}
}

func TestBattleRoyaleShrinksArena(t *testing.T) {
	s := NewSession("royale", SessionConfig{Mode: "royale", ArenaW: 800, ArenaH: 600})
	s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindGuardian)
	s.SpawnPlayer("p2", Vec2{X: 700, Y: 500}, KindGuardian)

	tickSeconds(s, royaleShrinkEvery+0.2)

	s.Mu.Lock()
	w := s.ArenaW
	s.Mu.Unlock()
	if w >= 800 {
		t.Fatalf("arena did not shrink, width still %.0f", w)
	}
}

func TestBattleRoyaleSuddenDeathBurnsFighters(t *testing.T) {
	s := NewSession("royale-burn", SessionConfig{Mode: "royale", ArenaW: 240, ArenaH: 240})
	e1 := s.SpawnPlayer("p1", Vec2{X: 80, Y: 80}, KindDefault)
	s.SpawnPlayer("p2", Vec2{X: 160, Y: 160}, KindDefault)

	startHP := s.World.HealthData(e1).HP

	// one shrink step drops a 240x240 arena straight to the floor, entering
	// sudden death
	tickSeconds(s, royaleShrinkEvery+royaleBurnEvery*3)

	if hp := s.World.HealthData(e1); hp == nil || hp.HP >= startHP {
		t.Fatal("sudden death dealt no damage")
	}
}

func TestControllerForAliases(t *testing.T) {
	if controllerFor("roulette").Name() != "bestOfThree" {
		t.Fatal("roulette should map to best-of-three")
	}
	if controllerFor("battleroyale").Name() != "battleRoyale" {
		t.Fatal("battleroyale alias broken")
	}
	if controllerFor("").Name() != "lastStanding" {
		t.Fatal("empty mode should default to last standing")
	}
}
