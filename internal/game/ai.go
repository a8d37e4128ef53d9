package game

import "math/rand"

// Bot AI follows the plan/apply split: a behavior periodically turns a view
// of the world into commands, and commands mutate the session. Randomness
// goes through the session's seeded rng so identical seeds replay the same
// match.

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

func ParseDifficulty(v string) Difficulty {
	switch Difficulty(v) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return Difficulty(v)
	default:
		return DifficultyNormal
	}
}

type botCommand interface {
	apply(s *Session, id EntityID)
}

type cmdMove struct{ dir Vec2 }

func (c cmdMove) apply(s *Session, id EntityID) {
	f := s.World.FighterData(id)
	tr := s.World.Transform(id)
	if f == nil || tr == nil {
		return
	}
	tr.Vel = c.dir.Normalize().Scale(f.Config.MoveSpeed)
	if !c.dir.IsZero() {
		f.Facing = c.dir.Normalize()
	}
}

type cmdHold struct{}

func (cmdHold) apply(s *Session, id EntityID) {
	if tr := s.World.Transform(id); tr != nil {
		tr.Vel = Vec2{}
	}
}

type cmdFire struct{ dir Vec2 }

func (c cmdFire) apply(s *Session, id EntityID) {
	if f := s.World.FighterData(id); f != nil {
		implFor(f.Kind).PrimaryAttack(s, id, c.dir)
	}
}

type cmdSpecial struct{ dir Vec2 }

func (c cmdSpecial) apply(s *Session, id EntityID) {
	if f := s.World.FighterData(id); f != nil {
		implFor(f.Kind).SpecialAbility(s, id, c.dir)
	}
}

type botParams struct {
	planEvery   float64
	aimError    float64 // max aim deviation, radians
	specialOdds float64 // chance to use the special when ready, per plan
	engageScale float64 // fraction of attack range the bot closes to
}

func paramsFor(d Difficulty) botParams {
	switch d {
	case DifficultyEasy:
		return botParams{planEvery: 0.5, aimError: 0.35, specialOdds: 0.1, engageScale: 0.9}
	case DifficultyHard:
		return botParams{planEvery: 0.15, aimError: 0.04, specialOdds: 0.8, engageScale: 0.6}
	default:
		return botParams{planEvery: 0.3, aimError: 0.15, specialOdds: 0.4, engageScale: 0.75}
	}
}

type botAgent struct {
	params     botParams
	nextPlanAt float64
	planned    []botCommand
}

func newBotAgent(d Difficulty) *botAgent {
	return &botAgent{params: paramsFor(d)}
}

func (a *botAgent) update(s *Session, id EntityID, dt float64) {
	if s.Now >= a.nextPlanAt {
		a.planned = a.plan(s, id, s.rng)
		a.nextPlanAt = s.Now + a.params.planEvery
	}
	for _, cmd := range a.planned {
		cmd.apply(s, id)
	}
	// fire commands are one-shot; movement persists until the next plan
	kept := a.planned[:0]
	for _, cmd := range a.planned {
		switch cmd.(type) {
		case cmdFire, cmdSpecial:
		default:
			kept = append(kept, cmd)
		}
	}
	a.planned = kept
}

func (a *botAgent) plan(s *Session, id EntityID, rng *rand.Rand) []botCommand {
	f := s.World.FighterData(id)
	tr := s.World.Transform(id)
	if f == nil || tr == nil {
		return nil
	}
	owner := s.World.OwnerData(id)
	target := nearestFighter(s, tr.Pos, 1e9, func(candidate EntityID) bool {
		return s.damageAllowed(owner, candidate)
	})
	if target == 0 {
		return []botCommand{cmdHold{}}
	}
	ttr := s.World.Transform(target)
	if ttr == nil {
		return []botCommand{cmdHold{}}
	}

	toTarget := ttr.Pos.Sub(tr.Pos)
	dist := toTarget.Len()
	aim := toTarget.Normalize()
	if a.params.aimError > 0 {
		aim = rotate(aim, (rng.Float64()*2-1)*a.params.aimError)
	}

	var cmds []botCommand
	engage := f.AttackRange * a.params.engageScale
	switch {
	case dist > engage:
		cmds = append(cmds, cmdMove{dir: toTarget})
	case dist < engage*0.5:
		// back off while strafing
		cmds = append(cmds, cmdMove{dir: toTarget.Scale(-1).Add(orthogonal(aim).Scale(0.6))})
	default:
		cmds = append(cmds, cmdMove{dir: orthogonal(aim)})
	}

	if dist <= f.AttackRange && f.Primary.Ready(s.Now) {
		cmds = append(cmds, cmdFire{dir: aim})
	}
	if f.Special.Ready(s.Now) && rng.Float64() < a.params.specialOdds {
		cmds = append(cmds, cmdSpecial{dir: aim})
	}
	return cmds
}
