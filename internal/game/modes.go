package game

import "strings"

// Mode controllers layer match rules on top of the core. They run inside the
// tick with the session lock held, consume the polled outcome, and use the
// same public surface (arena resize, respawn, entity mutation) the host
// tooling uses.

type ModeController interface {
	Name() string
	OnTick(s *Session)
	// OnRoundOver is called when the living-fighter count drops to one or
	// zero. Returning true finishes the match; returning false continues
	// (e.g. the next round of a best-of-three).
	OnRoundOver(s *Session, out Outcome) bool
}

func controllerFor(name string) ModeController {
	switch strings.ToLower(name) {
	case "roulette", "bestofthree":
		return &bestOfThreeMode{}
	case "royale", "battleroyale":
		return &battleRoyaleMode{}
	default:
		return &lastStandingMode{}
	}
}

// enforceDuration ends a timed match in favor of the healthiest fighter;
// equal health is a draw. The clock only runs once a match has actually
// started, so a lone waiting player never times out into a win.
func enforceDuration(s *Session) bool {
	if !s.started || s.MatchDuration <= 0 || s.Now-s.startedAt < s.MatchDuration {
		return false
	}
	var leader EntityID
	var leaderHP float64
	tied := false
	for _, id := range s.World.SortedIDs([]ComponentKey{CompFighter, CompHealth}) {
		f := s.World.FighterData(id)
		hp := s.World.HealthData(id)
		if f == nil || hp == nil || f.Decoy || hp.HP <= 0 {
			continue
		}
		switch {
		case leader == 0 || hp.HP > leaderHP:
			leader = id
			leaderHP = hp.HP
			tied = false
		case hp.HP == leaderHP:
			tied = true
		}
	}
	out := Outcome{Over: true, Duration: s.Now - s.startedAt}
	if leader != 0 && !tied {
		out.Entity = leader
		if o := s.World.OwnerData(leader); o != nil {
			out.Winner = o.PlayerID
		}
	}
	s.endMatchLocked(out)
	return true
}

type lastStandingMode struct{}

func (lastStandingMode) Name() string { return "lastStanding" }

func (lastStandingMode) OnTick(s *Session) {
	enforceDuration(s)
}

func (lastStandingMode) OnRoundOver(s *Session, out Outcome) bool { return true }

// bestOfThreeMode scores rounds and respawns everyone between them; the
// match ends at two round wins. A drawn round is replayed.
type bestOfThreeMode struct{}

func (bestOfThreeMode) Name() string { return "bestOfThree" }

func (bestOfThreeMode) OnTick(s *Session) {
	enforceDuration(s)
}

func (bestOfThreeMode) OnRoundOver(s *Session, out Outcome) bool {
	if out.Winner != "" {
		if p, ok := s.Players[out.Winner]; ok {
			p.Wins++
			if p.Wins >= 2 {
				return true
			}
		}
	}
	s.respawnFightersLocked()
	return false
}

// battleRoyaleMode shrinks the arena on a cadence; once the floor is reached
// everyone burns until a survivor remains.
type battleRoyaleMode struct {
	nextShrinkAt float64
	nextBurnAt   float64
	suddenDeath  bool
}

const (
	royaleShrinkEvery  = 5.0
	royaleShrinkFactor = 0.88
	royaleMinDimension = 220.0
	royaleBurnPerTick  = 1.5
	royaleBurnEvery    = 0.5
)

func (*battleRoyaleMode) Name() string { return "battleRoyale" }

func (m *battleRoyaleMode) OnTick(s *Session) {
	if enforceDuration(s) {
		return
	}
	if m.suddenDeath {
		if s.Now < m.nextBurnAt {
			return
		}
		m.nextBurnAt = s.Now + royaleBurnEvery
		s.World.ForEach([]ComponentKey{CompFighter, CompHealth}, func(id EntityID) {
			if f := s.World.FighterData(id); f == nil || f.Decoy {
				return
			}
			s.applyDamage(id, 0, royaleBurnPerTick)
		})
		return
	}
	if m.nextShrinkAt == 0 {
		m.nextShrinkAt = s.Now + royaleShrinkEvery
	}
	if s.Now < m.nextShrinkAt {
		return
	}
	m.nextShrinkAt = s.Now + royaleShrinkEvery
	w := s.ArenaW * royaleShrinkFactor
	h := s.ArenaH * royaleShrinkFactor
	if w <= royaleMinDimension || h <= royaleMinDimension {
		w = royaleMinDimension
		h = royaleMinDimension
		m.suddenDeath = true
	}
	s.setArenaSizeLocked(w, h)
}

func (*battleRoyaleMode) OnRoundOver(s *Session, out Outcome) bool { return true }
