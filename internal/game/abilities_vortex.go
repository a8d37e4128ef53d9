package game

// Vortex fires a bullet that travels a fixed distance, stops and becomes a
// pulling damage field. Every fifth primary use replaces the single shot
// with a rapid three-shot burst.

type vortexImpl struct{ baseImpl }

func (vortexImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, _, aim := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config
	f.Stacks++
	if cfg.VortexBurstStacks > 0 && f.Stacks >= cfg.VortexBurstStacks {
		f.Stacks = 0
		for i := 0; i < cfg.VortexBurstShots; i++ {
			delay := cfg.VortexBurstGap * float64(i)
			s.ScheduleAfter(delay, id, func(s *Session) {
				// the fighter survived until the delayed shot; aim at the
				// current facing, not the facing captured at trigger time
				f := s.World.FighterData(id)
				if f == nil {
					return
				}
				if hp := s.World.HealthData(id); hp == nil || hp.HP <= 0 {
					return
				}
				fireVortexShot(s, id, f, f.Facing)
			})
		}
	} else {
		fireVortexShot(s, id, f, aim)
	}
	f.Primary.LastUsed = s.Now
	return true
}

func fireVortexShot(s *Session, id EntityID, f *Fighter, aim Vec2) {
	cfg := f.Config
	s.spawnProjectile(id, aim, cfg.ProjectileRadius, Projectile{
		Kind:        KindVortex,
		Variant:     VariantVortexShot,
		Damage:      f.Damage,
		Speed:       cfg.ProjectileSpeed,
		Lifetime:    cfg.ProjectileLife,
		MaxDistance: cfg.VortexTravelDist,
	})
}

func (vortexImpl) OnProjectileUpdate(s *Session, proj EntityID, dt float64) {
	p := s.World.ProjectileData(proj)
	tr := s.World.Transform(proj)
	if p == nil || tr == nil || p.Variant != VariantVortexShot {
		return
	}
	if p.MaxDistance <= 0 || tr.Pos.Dist(p.Origin) < p.MaxDistance {
		return
	}
	owner := ownerEntityOf(s, proj)
	cfg := configForOwner(s, owner, KindVortex)
	pos := tr.Pos
	s.removeEntity(proj)
	s.spawnField(owner, pos, cfg.VortexFieldRadius, Field{
		Kind:      FieldVortex,
		Until:     s.Now + cfg.VortexDuration,
		TickEvery: 0.5,
		NextTick:  s.Now + 0.5,
		PerTick:   cfg.VortexTickDamage,
		Pull:      cfg.VortexPull,
	})
}

// configForOwner prefers the live fighter's (possibly tuned) config and falls
// back to the archetype table when the owner died mid-flight.
func configForOwner(s *Session, owner EntityID, kind CharacterKind) CharacterConfig {
	if f := s.World.FighterData(owner); f != nil {
		return f.Config
	}
	return ConfigFor(kind)
}
