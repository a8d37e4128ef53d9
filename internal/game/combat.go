package game

// Outcome is the pollable win-condition snapshot. The mode controller decides
// what a finished round means; the core only counts living fighters.
type Outcome struct {
	Over     bool
	Winner   string // player id of the survivor, empty on a draw
	Entity   EntityID
	Duration float64
}

// damageAllowed applies the friendly-fire policy: an attack never damages the
// entity that fired it, and team mates are spared unless the session enables
// friendly fire. Decoys are valid targets for everyone but their owner.
func (s *Session) damageAllowed(attacker *Owner, target EntityID) bool {
	if attacker == nil {
		return true
	}
	if attacker.Entity != 0 && attacker.Entity == target {
		return false
	}
	tOwner := s.World.OwnerData(target)
	if tOwner == nil {
		return true
	}
	if tOwner.PlayerID == attacker.PlayerID {
		return false
	}
	if !s.FriendlyFire && attacker.Team != 0 && attacker.Team == tOwner.Team {
		return false
	}
	return true
}

// applyDamage reduces target health, floored at zero, honoring the target's
// damage reduction and any active shield. Removal happens later in the death
// sweep so other handlers in the same tick see a consistent world.
func (s *Session) applyDamage(target, source EntityID, amount float64) {
	if amount <= 0 {
		return
	}
	hp := s.World.HealthData(target)
	if hp == nil || hp.HP <= 0 {
		return
	}
	effective := amount
	if f := s.World.FighterData(target); f != nil && f.DamageReduction > 0 {
		effective *= 1 - Clamp(f.DamageReduction, 0, 1)
	}
	if shield := s.World.ShieldData(target); shield != nil {
		effective *= 1 - shield.Reduction
	}
	hp.HP -= effective
	if hp.HP < 0 {
		hp.HP = 0
	}
	if hp.HP == 0 {
		s.lastHitBy[target] = source
	}
	if f := s.World.FighterData(target); f != nil && !f.Decoy {
		implFor(f.Kind).OnDamaged(s, target, source, effective)
	}
}

// sweepDead removes every entity whose health reached zero, firing the
// killer's OnKill hook first. Pending scheduled actions bound to the dead
// entity are cancelled so no ghost shots fire for a reused slot.
func sweepDead(s *Session) {
	for _, id := range s.World.SortedIDs([]ComponentKey{CompHealth}) {
		hp := s.World.HealthData(id)
		if hp == nil || hp.HP > 0 {
			continue
		}
		killer := s.lastHitBy[id]
		delete(s.lastHitBy, id)
		if killer != 0 {
			if kf := s.World.FighterData(killer); kf != nil && !kf.Decoy {
				implFor(kf.Kind).OnKill(s, killer, id)
			}
		}
		s.removeEntity(id)
	}
}

func ownerEntityOf(s *Session, id EntityID) EntityID {
	if o := s.World.OwnerData(id); o != nil {
		return o.Entity
	}
	return 0
}

// Outcome counts living non-decoy fighters. It is polled every tick by the
// session (and may be polled by mode controllers at any time); the core never
// pushes game-over from inside the physics loop.
func (s *Session) Outcome() Outcome {
	living := 0
	var last EntityID
	s.World.ForEach([]ComponentKey{CompFighter, CompHealth}, func(id EntityID) {
		f := s.World.FighterData(id)
		hp := s.World.HealthData(id)
		if f == nil || hp == nil || f.Decoy || hp.HP <= 0 {
			return
		}
		living++
		if last == 0 || id < last {
			last = id
		}
	})
	if living > 1 {
		return Outcome{}
	}
	out := Outcome{Over: true, Duration: s.Now - s.startedAt}
	if living == 1 {
		out.Entity = last
		if o := s.World.OwnerData(last); o != nil {
			out.Winner = o.PlayerID
		}
	}
	return out
}
