package game

// Mystic fires a homing web that steers toward its mark and slows on hit.

type mysticImpl struct{ baseImpl }

func (mysticImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, tr, aim := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config
	owner := s.World.OwnerData(id)
	target := nearestFighter(s, tr.Pos, f.AttackRange, func(candidate EntityID) bool {
		return s.damageAllowed(owner, candidate)
	})
	s.spawnProjectile(id, aim, cfg.ProjectileRadius, Projectile{
		Kind:     KindMystic,
		Variant:  VariantWeb,
		Damage:   f.Damage,
		Speed:    cfg.ProjectileSpeed,
		Lifetime: cfg.ProjectileLife,
		Target:   target,
		TurnRate: cfg.HomingTurnRate,
	})
	f.Primary.LastUsed = s.Now
	return true
}

func (mysticImpl) OnProjectileUpdate(s *Session, proj EntityID, dt float64) {
	p := s.World.ProjectileData(proj)
	tr := s.World.Transform(proj)
	if p == nil || tr == nil || p.Variant != VariantWeb {
		return
	}
	// the mark may have died mid-flight; reacquire rather than fly blind
	if p.Target == 0 || !s.World.Exists(p.Target) {
		owner := s.World.OwnerData(proj)
		p.Target = nearestFighter(s, tr.Pos, 300, func(candidate EntityID) bool {
			return s.damageAllowed(owner, candidate)
		})
		if p.Target == 0 {
			return
		}
	}
	ttr := s.World.Transform(p.Target)
	if ttr == nil {
		return
	}
	desired := ttr.Pos.Sub(tr.Pos).Normalize()
	if desired.IsZero() {
		return
	}
	heading := tr.Vel.Normalize()
	if heading.IsZero() {
		heading = desired
	}
	steered := heading.Lerp(desired, Clamp(p.TurnRate*dt, 0, 1)).Normalize()
	tr.Vel = steered.Scale(p.Speed)
}

func (mysticImpl) OnProjectileHit(s *Session, proj, target EntityID) {
	p := s.World.ProjectileData(proj)
	if p == nil {
		return
	}
	owner := ownerEntityOf(s, proj)
	cfg := configForOwner(s, owner, KindMystic)
	s.applyDamage(target, owner, p.Damage)
	s.ApplySlow(target, cfg.WebSlowTime, cfg.WebSlowFactor)
}
