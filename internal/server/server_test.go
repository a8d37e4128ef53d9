package server

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "ArenaBrawl/internal/game"
	"ArenaBrawl/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestSnapshotToStateMarksSelf(t *testing.T) {
	s := NewSession("snap", SessionConfig{})
	s.SpawnPlayer("p1", Vec2{X: 100, Y: 100}, KindFlame)
	s.SpawnPlayer("p2", Vec2{X: 700, Y: 500}, KindFrost)

	msg := snapshotToState(s.Snapshot(), "p2")
	if msg.Type != "state" {
		t.Fatalf("unexpected message type %q", msg.Type)
	}
	if len(msg.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(msg.Players))
	}
	for _, p := range msg.Players {
		if p.Self != (p.ID == "p2") {
			t.Fatalf("self flag wrong for %q", p.ID)
		}
	}
	if len(msg.Entities) != 2 {
		t.Fatalf("expected 2 fighter entities, got %d", len(msg.Entities))
	}
	for _, e := range msg.Entities {
		if e.Type != "fighter" {
			t.Fatalf("unexpected entity type %q", e.Type)
		}
		if e.HP <= 0 || e.MaxHP <= 0 {
			t.Fatalf("fighter entity missing health: %+v", e)
		}
	}
}

func TestHandleCommandDrivesSession(t *testing.T) {
	s := NewSession("cmds", SessionConfig{})
	s.SpawnPlayer("p1", Vec2{X: 400, Y: 300}, KindDefault)
	s.SpawnPlayer("p2", Vec2{X: 100, Y: 100}, KindDefault)
	s.Tick()

	payload, _ := json.Marshal(aimDTO{X: 1})
	handleCommand(s, "p1", inboundMessage{Type: "fire", Payload: payload})
	s.Mu.Lock()
	shots := len(s.World.SortedIDs([]ComponentKey{CompProjectile}))
	s.Mu.Unlock()
	if shots != 1 {
		t.Fatalf("fire command spawned %d projectiles", shots)
	}

	payload, _ = json.Marshal(setArenaDTO{W: 500, H: 400})
	handleCommand(s, "p1", inboundMessage{Type: "set_arena", Payload: payload})
	s.Mu.Lock()
	w := s.ArenaW
	s.Mu.Unlock()
	if w != 500 {
		t.Fatalf("set_arena ignored, width %v", w)
	}

	handleCommand(s, "p1", inboundMessage{Type: "pause"})
	before := s.Now
	s.Tick()
	if s.Now != before {
		t.Fatal("pause command did not pause the session")
	}
	handleCommand(s, "p1", inboundMessage{Type: "resume"})
	s.Tick()
	if s.Now == before {
		t.Fatal("resume command did not resume the session")
	}

	payload, _ = json.Marshal(spawnBotDTO{Character: "titan", Difficulty: "hard"})
	handleCommand(s, "p1", inboundMessage{Type: "spawn_bot", Payload: payload})
	s.Mu.Lock()
	players := len(s.Players)
	s.Mu.Unlock()
	if players != 3 {
		t.Fatalf("spawn_bot did not add a participant, have %d", players)
	}

	handleCommand(s, "p1", inboundMessage{Type: "stop"})
	if !s.Stopped() {
		t.Fatal("stop command ignored")
	}
}

func TestEnsureSessionDefaultsMode(t *testing.T) {
	h := NewHub()
	cfg := DefaultAppConfig()
	s := ensureSession(h, "g1", cfg, joinDTO{})
	if s == nil {
		t.Fatal("session not created")
	}
	if got := s.Snapshot().Mode; got != "lastStanding" {
		t.Fatalf("expected default mode, got %q", got)
	}
	// second join reuses the running session
	if again := ensureSession(h, "g1", cfg, joinDTO{Mode: "royale"}); again != s {
		t.Fatal("rejoin created a second session for the same id")
	}
	s.Stop()
}

func TestRunTicksAdvancesSimulation(t *testing.T) {
	h := NewHub()
	s := ensureSession(h, "ticking", DefaultAppConfig(), joinDTO{})
	if s == nil {
		t.Fatal("session not created")
	}
	defer s.Stop()

	time.Sleep(120 * time.Millisecond)

	s.Mu.Lock()
	now := s.Now
	s.Mu.Unlock()
	if now <= 0 {
		t.Fatal("tick loop never advanced the simulation clock")
	}
}

func TestLoadTuningFileOverrides(t *testing.T) {
	defer ResetConfigs()

	dir := t.TempDir()
	path := filepath.Join(dir, "characters.json")
	blob := []byte(`{"characters": {"flame": {"damage": 42, "maxHp": 300}}}`)
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := loadTuningFile(path); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	cfg := ConfigFor(KindFlame)
	if cfg.Damage != 42 || cfg.MaxHP != 300 {
		t.Fatalf("overrides not applied: damage %v maxHp %v", cfg.Damage, cfg.MaxHP)
	}
	// untouched stats keep their defaults
	if cfg.BurnPerTick != 2 {
		t.Fatalf("merge wiped stats the file never mentioned: burnPerTick %v", cfg.BurnPerTick)
	}
	if ConfigFor(KindFrost).Damage == 42 {
		t.Fatal("override leaked into another archetype")
	}
}

func TestLoadTuningFileMissingResets(t *testing.T) {
	defer ResetConfigs()

	cfg := ConfigFor(KindFlame)
	cfg.Damage = 99
	SetConfig(KindFlame, cfg)

	if err := loadTuningFile(filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if ConfigFor(KindFlame).Damage == 99 {
		t.Fatal("missing tuning file should reset to defaults")
	}
}

func TestLoadTuningFileRejectsGarbage(t *testing.T) {
	defer ResetConfigs()

	dir := t.TempDir()
	path := filepath.Join(dir, "characters.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := loadTuningFile(path); err == nil {
		t.Fatal("malformed tuning file should error")
	}
}
