package game

import "testing"

func TestBotEngagesNearbyEnemy(t *testing.T) {
	s := NewSession("bot-fight", SessionConfig{Seed: 7})
	s.SpawnBot("bot", Vec2{X: 300, Y: 300}, KindDefault, DifficultyHard)
	e2 := s.SpawnPlayer("target", Vec2{X: 500, Y: 300}, KindDefault)

	startHP := s.World.HealthData(e2).HP
	tickSeconds(s, 5.0)

	if hp := s.World.HealthData(e2); hp != nil && hp.HP >= startHP {
		t.Fatal("bot never landed a hit on a target inside its range")
	}
}

func TestStunnedBotDoesNotAct(t *testing.T) {
	s := NewSession("bot-stun", SessionConfig{Seed: 7})
	e1 := s.SpawnBot("bot", Vec2{X: 300, Y: 300}, KindDefault, DifficultyHard)
	s.SpawnPlayer("target", Vec2{X: 500, Y: 300}, KindDefault)

	s.Mu.Lock()
	s.ApplyStun(e1, 1.0)
	s.Mu.Unlock()

	tickSeconds(s, 0.5)
	if got := projectileCount(s); got != 0 {
		t.Fatalf("stunned bot fired %d shots", got)
	}
}

func TestParseDifficultyFallsBackToNormal(t *testing.T) {
	if got := ParseDifficulty("hard"); got != DifficultyHard {
		t.Fatalf("hard parsed as %v", got)
	}
	if got := ParseDifficulty("nightmare"); got != DifficultyNormal {
		t.Fatalf("unknown difficulty should fall back to normal, got %v", got)
	}
}
