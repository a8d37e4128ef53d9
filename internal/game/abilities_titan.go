package game

// Titan: heavy piercing cannon shot for the primary; the special grabs the
// nearest enemy in reach and mauls them for a duration, or ground-slams with
// knockback and stun when nobody is close enough. Every few seconds the titan
// also charges on its own, stunning whoever it rams.

type titanImpl struct{ baseImpl }

func (titanImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, _, aim := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config
	s.spawnProjectile(id, aim, cfg.ProjectileRadius, Projectile{
		Kind:          KindTitan,
		Variant:       VariantCannon,
		Damage:        f.Damage,
		Speed:         cfg.ProjectileSpeed,
		Lifetime:      cfg.ProjectileLife,
		HitsRemaining: cfg.PierceHits,
	})
	f.Primary.LastUsed = s.Now
	return true
}

func (titanImpl) SpecialAbility(s *Session, id EntityID, dir Vec2) bool {
	f, tr, _ := fireGate(s, id, dir, true)
	if f == nil {
		return false
	}
	cfg := f.Config
	owner := s.World.OwnerData(id)
	target := nearestFighter(s, tr.Pos, cfg.GrabRange, func(candidate EntityID) bool {
		return s.damageAllowed(owner, candidate)
	})
	if target != 0 {
		s.ApplyGrab(target, id, cfg.GrabTime, cfg.GrabTick, cfg.GrabPerTick)
	} else {
		titanSlam(s, id, f, tr)
	}
	f.Special.LastUsed = s.Now
	return true
}

func titanSlam(s *Session, id EntityID, f *Fighter, tr *Transform) {
	cfg := f.Config
	owner := s.World.OwnerData(id)
	s.World.ForEach([]ComponentKey{CompFighter, CompTransform}, func(target EntityID) {
		if !s.damageAllowed(owner, target) {
			return
		}
		ttr := s.World.Transform(target)
		if ttr == nil {
			return
		}
		delta := ttr.Pos.Sub(tr.Pos)
		if delta.Len() > cfg.SlamRadius {
			return
		}
		s.applyDamage(target, id, f.Damage)
		s.ApplyStun(target, cfg.SlamStunTime)
		ttr.Vel = ttr.Vel.Add(delta.Normalize().Scale(cfg.SlamKnockback))
	})
}

// OnUpdate drives the periodic self-triggered charge dash.
func (titanImpl) OnUpdate(s *Session, id EntityID, dt float64) {
	f := s.World.FighterData(id)
	tr := s.World.Transform(id)
	if f == nil || tr == nil || f.Config.DashEvery <= 0 {
		return
	}
	if f.NextDashAt == 0 {
		f.NextDashAt = s.Now + f.Config.DashEvery
		return
	}
	if s.Now < f.NextDashAt || s.movementLocked(id) {
		return
	}
	owner := s.World.OwnerData(id)
	target := nearestFighter(s, tr.Pos, f.AttackRange, func(candidate EntityID) bool {
		return s.damageAllowed(owner, candidate)
	})
	if target == 0 {
		return
	}
	ttr := s.World.Transform(target)
	if ttr == nil {
		return
	}
	f.NextDashAt = s.Now + f.Config.DashEvery
	s.startDash(id, ttr.Pos.Sub(tr.Pos), f.Config.DashTime, f.Config.DashSpeed, f.Config.DashStunTime)
}
