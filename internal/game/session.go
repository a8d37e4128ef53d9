package game

import (
	"math/rand"
	"sort"
	"sync"
)

// SessionConfig is the startGame payload. Zero values fall back to arena and
// roster defaults.
type SessionConfig struct {
	ArenaW         float64
	ArenaH         float64
	Mode           string
	MaxPlayers     int
	FriendlyFire   bool
	EnableHazards  bool
	EnablePowerups bool
	Hazards        []HazardSpec
	MatchDuration  float64 // seconds of play before the mode forces an end; 0 = unlimited
	Seed           int64
}

// PlayerInfo is the per-participant record, human or bot.
type PlayerInfo struct {
	ID         string
	Name       string
	Entity     EntityID
	Kind       CharacterKind
	Bot        bool
	Difficulty Difficulty
	Wins       int // round wins, used by best-of-N modes
	MoveDir    Vec2
}

// GameOverEvent is emitted exactly once per match, when the win condition
// first becomes true. Winner is empty on a draw.
type GameOverEvent struct {
	Winner   string
	Entity   EntityID
	Duration float64
}

// Session owns one match: the world, the deferred-action queue, the players
// and the mode controller. All mutation happens under Mu on the tick
// goroutine; accessors used by the transport take the lock too.
type Session struct {
	ID      string
	Now     float64
	World   *World
	Players map[string]*PlayerInfo
	Mu      sync.Mutex

	ArenaW        float64
	ArenaH        float64
	MaxPlayers    int
	FriendlyFire  bool
	MatchDuration float64

	timers    scheduler
	agents    map[EntityID]*botAgent
	lastHitBy map[EntityID]EntityID
	rng       *rand.Rand
	mode      ModeController

	powerupsOn    bool
	nextPowerupAt float64

	started    bool
	startedAt  float64
	paused     bool
	stopped    bool
	over       bool
	result     Outcome
	onGameOver func(GameOverEvent)
}

func NewSession(id string, cfg SessionConfig) *Session {
	if cfg.ArenaW < ArenaMinDimension {
		cfg.ArenaW = ArenaDefaultW
	}
	if cfg.ArenaH < ArenaMinDimension {
		cfg.ArenaH = ArenaDefaultH
	}
	if cfg.MaxPlayers <= 0 || cfg.MaxPlayers > SessionMaxPlayers {
		cfg.MaxPlayers = SessionMaxPlayers
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = int64(len(id)) + 1
	}
	s := &Session{
		ID:            id,
		World:         newWorld(),
		Players:       map[string]*PlayerInfo{},
		ArenaW:        cfg.ArenaW,
		ArenaH:        cfg.ArenaH,
		MaxPlayers:    cfg.MaxPlayers,
		FriendlyFire:  cfg.FriendlyFire,
		MatchDuration: cfg.MatchDuration,
		agents:        map[EntityID]*botAgent{},
		lastHitBy:     map[EntityID]EntityID{},
		rng:           rand.New(rand.NewSource(seed)),
	}
	s.mode = controllerFor(cfg.Mode)
	if cfg.EnablePowerups {
		s.powerupsOn = true
		s.nextPowerupAt = powerupEvery
	}
	if cfg.EnableHazards {
		for _, spec := range cfg.Hazards {
			s.SpawnHazard(spec)
		}
	}
	return s
}

// Tick advances the simulation by one fixed step. Paused and finished
// sessions ignore ticks; the host loop may keep calling without harm.
func (s *Session) Tick() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.paused || s.stopped {
		return
	}
	s.Now += Dt

	s.timers.processDue(s)
	updateFields(s, Dt)
	updatePowerups(s)
	s.applyPlayerInput()
	integrate(s, Dt)
	constrainToArena(s)
	resolveCollisions(s)
	updateProjectiles(s, Dt)
	sweepDead(s)
	updateFighters(s, Dt)

	if s.mode != nil {
		s.mode.OnTick(s)
	}
	s.checkOutcomeLocked()
}

func (s *Session) checkOutcomeLocked() {
	// a lone fighter waiting for opponents is not a finished match
	if s.over || !s.started {
		return
	}
	out := s.Outcome()
	if !out.Over {
		return
	}
	matchDone := true
	if s.mode != nil {
		matchDone = s.mode.OnRoundOver(s, out)
	}
	if matchDone {
		s.endMatchLocked(out)
	}
}

func (s *Session) endMatchLocked(out Outcome) {
	if s.over {
		return
	}
	s.over = true
	s.result = out
	if s.onGameOver != nil {
		s.onGameOver(GameOverEvent{Winner: out.Winner, Entity: out.Entity, Duration: out.Duration})
	}
}

// applyPlayerInput drives human-controlled fighters from their stored move
// direction. Bots steer through their agents instead.
func (s *Session) applyPlayerInput() {
	for _, p := range s.Players {
		if p.Bot || p.Entity == 0 {
			continue
		}
		if !s.World.Exists(p.Entity) || s.movementLocked(p.Entity) {
			continue
		}
		f := s.World.FighterData(p.Entity)
		tr := s.World.Transform(p.Entity)
		if f == nil || tr == nil {
			continue
		}
		tr.Vel = p.MoveDir.Normalize().Scale(f.Config.MoveSpeed)
		if !p.MoveDir.IsZero() {
			f.Facing = p.MoveDir.Normalize()
		}
	}
}

// Pause, Resume and Stop are idempotent; repeated or out-of-order calls are
// no-ops, not errors.
func (s *Session) Pause() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.paused = true
}

func (s *Session) Resume() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.stopped {
		return
	}
	s.paused = false
}

// Stop ends the session and drops every pending deferred action, so no ghost
// shots or damage ticks survive into a restarted match with reused ids.
func (s *Session) Stop() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.stopped = true
	s.timers.clear()
}

func (s *Session) Stopped() bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.stopped
}

func (s *Session) Finished() bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.over || s.stopped
}

// Result returns the recorded outcome once the match ended.
func (s *Session) Result() (GameOverEvent, bool) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if !s.over {
		return GameOverEvent{}, false
	}
	return GameOverEvent{Winner: s.result.Winner, Entity: s.result.Entity, Duration: s.result.Duration}, true
}

// SetGameOverHandler registers the single game-over notification. The
// handler runs with the session lock held; keep it short.
func (s *Session) SetGameOverHandler(fn func(GameOverEvent)) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.onGameOver = fn
}

// SpawnBot adds an AI-controlled fighter. Returns 0 when the id is taken or
// the session is full; the caller decides how to surface that.
func (s *Session) SpawnBot(playerID string, pos Vec2, kind CharacterKind, difficulty Difficulty) EntityID {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	id := s.spawnFighterLocked(playerID, pos, kind)
	if id == 0 {
		return 0
	}
	p := s.Players[playerID]
	p.Bot = true
	p.Difficulty = difficulty
	s.agents[id] = newBotAgent(difficulty)
	return id
}

// SpawnPlayer adds a human-controlled fighter under the same constraints.
func (s *Session) SpawnPlayer(playerID string, pos Vec2, kind CharacterKind) EntityID {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.spawnFighterLocked(playerID, pos, kind)
}

func (s *Session) spawnFighterLocked(playerID string, pos Vec2, kind CharacterKind) EntityID {
	if s.stopped {
		return 0
	}
	if _, exists := s.Players[playerID]; exists {
		return 0
	}
	if len(s.Players) >= s.MaxPlayers {
		return 0
	}
	cfg := ConfigFor(kind)
	pos.X = Clamp(pos.X, cfg.Radius, s.ArenaW-cfg.Radius)
	pos.Y = Clamp(pos.Y, cfg.Radius, s.ArenaH-cfg.Radius)

	id := s.World.NewEntity()
	s.World.SetComponent(id, CompTransform, &Transform{Pos: pos})
	s.World.SetComponent(id, CompBody, &Body{
		Radius:      cfg.Radius,
		Mass:        cfg.Mass,
		Restitution: FighterRestitution,
		Friction:    FighterFriction,
	})
	s.World.SetComponent(id, CompHealth, &Health{HP: cfg.MaxHP, MaxHP: cfg.MaxHP})
	fighter := &Fighter{
		Kind:        kind,
		Config:      cfg,
		Facing:      Vec2{X: 1},
		Primary:     newAbility(cfg.Cooldown),
		Special:     newAbility(cfg.SpecialCooldown),
		Damage:      cfg.Damage,
		AttackRange: cfg.AttackRange,
	}
	if kind == KindGuardian {
		fighter.DamageReduction = cfg.GuardianReduce
	}
	s.World.SetComponent(id, CompFighter, fighter)
	s.World.SetComponent(id, CompOwner, &Owner{PlayerID: playerID, Entity: id})

	s.Players[playerID] = &PlayerInfo{
		ID:     playerID,
		Name:   playerID,
		Entity: id,
		Kind:   kind,
	}
	// the match clock starts once there is an actual fight
	if !s.started && len(s.Players) >= 2 {
		s.started = true
		s.startedAt = s.Now
	}
	return id
}

// Leave drops a player mid-match, removing their fighter from the world. A
// session left with no humans stops so hub cleanup can reclaim it; otherwise
// the outcome is re-polled immediately, which may end the match in favor of
// whoever stayed.
func (s *Session) Leave(playerID string) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	p, ok := s.Players[playerID]
	if !ok {
		return
	}
	delete(s.Players, playerID)
	if p.Entity != 0 {
		s.removeEntity(p.Entity)
	}
	humans := 0
	for _, q := range s.Players {
		if !q.Bot {
			humans++
		}
	}
	if humans == 0 {
		s.stopped = true
		s.timers.clear()
		return
	}
	s.checkOutcomeLocked()
}

// removeEntity is the single removal path: world sweep, pending timers bound
// to the entity, AI agent, kill bookkeeping.
func (s *Session) removeEntity(id EntityID) {
	s.World.RemoveEntity(id)
	s.timers.cancelFor(id)
	delete(s.agents, id)
	delete(s.lastHitBy, id)
}

// SetArenaSize resizes the arena live and clamps every body back in bounds
// immediately, so nothing is ever left outside.
func (s *Session) SetArenaSize(w, h float64) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.setArenaSizeLocked(w, h)
}

func (s *Session) setArenaSizeLocked(w, h float64) {
	if w < ArenaMinDimension {
		w = ArenaMinDimension
	}
	if h < ArenaMinDimension {
		h = ArenaMinDimension
	}
	s.ArenaW = w
	s.ArenaH = h
	s.World.ForEach([]ComponentKey{CompTransform, CompBody}, func(id EntityID) {
		tr := s.World.Transform(id)
		body := s.World.BodyData(id)
		if tr == nil || body == nil {
			return
		}
		tr.Pos.X = Clamp(tr.Pos.X, body.Radius, w-body.Radius)
		tr.Pos.Y = Clamp(tr.Pos.Y, body.Radius, h-body.Radius)
	})
}

// SetMove stores a human player's movement intent; applied every tick until
// replaced.
func (s *Session) SetMove(playerID string, dir Vec2) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if p, ok := s.Players[playerID]; ok {
		p.MoveDir = dir
	}
}

// Primary fires the player's primary attack. Stale players and dead fighters
// silently no-op.
func (s *Session) Primary(playerID string, dir Vec2) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if p, ok := s.Players[playerID]; ok && p.Entity != 0 {
		if f := s.World.FighterData(p.Entity); f != nil {
			implFor(f.Kind).PrimaryAttack(s, p.Entity, dir)
		}
	}
}

func (s *Session) Special(playerID string, dir Vec2) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if p, ok := s.Players[playerID]; ok && p.Entity != 0 {
		if f := s.World.FighterData(p.Entity); f != nil {
			implFor(f.Kind).SpecialAbility(s, p.Entity, dir)
		}
	}
}

// Charge begins an archer charge-up hold; the next Primary releases it.
func (s *Session) Charge(playerID string) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if p, ok := s.Players[playerID]; ok && p.Entity != 0 {
		s.BeginCharge(p.Entity)
	}
}

// respawnFightersLocked restores every participant to a fresh spawn. Used by
// round-based modes between rounds.
func (s *Session) respawnFightersLocked() {
	s.timers.clear()
	// clear leftover projectiles and fields from the previous round
	for _, id := range s.World.SortedIDs([]ComponentKey{CompProjectile}) {
		s.removeEntity(id)
	}
	for _, id := range s.World.SortedIDs([]ComponentKey{CompField}) {
		s.removeEntity(id)
	}
	i := 0
	for _, pid := range sortedPlayerIDs(s.Players) {
		p := s.Players[pid]
		if p.Entity != 0 {
			s.removeEntity(p.Entity)
		}
		pos := spawnPoint(s.ArenaW, s.ArenaH, i, len(s.Players))
		delete(s.Players, pid)
		id := s.spawnFighterLocked(pid, pos, p.Kind)
		np := s.Players[pid]
		np.Bot = p.Bot
		np.Difficulty = p.Difficulty
		np.Wins = p.Wins
		np.Name = p.Name
		if p.Bot {
			s.agents[id] = newBotAgent(p.Difficulty)
		}
		i++
	}
}

func sortedPlayerIDs(players map[string]*PlayerInfo) []string {
	ids := make([]string, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// spawnPoint spreads n fighters around the arena edge.
func spawnPoint(w, h float64, i, n int) Vec2 {
	if n < 1 {
		n = 1
	}
	margin := 60.0
	switch i % 4 {
	case 0:
		return Vec2{X: margin, Y: margin}
	case 1:
		return Vec2{X: w - margin, Y: h - margin}
	case 2:
		return Vec2{X: w - margin, Y: margin}
	default:
		return Vec2{X: margin, Y: h - margin}
	}
}

func RandId(prefix string) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return prefix + "-" + string(b)
}

// Hub tracks live sessions by id.
type Hub struct {
	Sessions map[string]*Session
	Mu       sync.Mutex
}

func NewHub() *Hub { return &Hub{Sessions: map[string]*Session{}} }

// CreateSession starts a new match and returns its id. Duplicate ids return
// nil.
func (h *Hub) CreateSession(id string, cfg SessionConfig) *Session {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	if id == "" {
		id = RandId("game")
	}
	if _, exists := h.Sessions[id]; exists {
		return nil
	}
	s := NewSession(id, cfg)
	h.Sessions[id] = s
	return s
}

func (h *Hub) GetSession(id string) *Session {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	return h.Sessions[id]
}

func (h *Hub) RemoveSession(id string) {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	if s, ok := h.Sessions[id]; ok {
		s.Stop()
		delete(h.Sessions, id)
	}
}

// CleanupFinished drops sessions that stopped or ended.
func (h *Hub) CleanupFinished() {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	for id, s := range h.Sessions {
		if s.Finished() {
			delete(h.Sessions, id)
		}
	}
}
