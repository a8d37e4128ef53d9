package game

// Flame fires a three-shot fan. Shots drop short-lived fire trails behind
// them and set targets burning on hit.

type flameImpl struct{ baseImpl }

func (flameImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, _, aim := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config
	shots := cfg.FanShots
	if shots < 1 {
		shots = 1
	}
	// fan centered on the aim direction
	start := -cfg.FanSpread * float64(shots-1) / 2
	for i := 0; i < shots; i++ {
		shotDir := rotate(aim, start+cfg.FanSpread*float64(i))
		s.spawnProjectile(id, shotDir, cfg.ProjectileRadius, Projectile{
			Kind:        KindFlame,
			Variant:     VariantFlameShot,
			Damage:      f.Damage,
			Speed:       cfg.ProjectileSpeed,
			Lifetime:    cfg.ProjectileLife,
			NextTrailAt: s.Now + cfg.TrailEvery,
		})
	}
	f.Primary.LastUsed = s.Now
	return true
}

func (flameImpl) OnProjectileUpdate(s *Session, proj EntityID, dt float64) {
	p := s.World.ProjectileData(proj)
	tr := s.World.Transform(proj)
	if p == nil || tr == nil || p.Variant != VariantFlameShot {
		return
	}
	if s.Now < p.NextTrailAt {
		return
	}
	owner := ownerEntityOf(s, proj)
	cfg := configForOwner(s, owner, KindFlame)
	p.NextTrailAt = s.Now + cfg.TrailEvery
	s.spawnField(owner, tr.Pos, 14, Field{
		Kind:      FieldFireTrail,
		Until:     s.Now + cfg.TrailLife,
		TickEvery: cfg.BurnTick,
		PerTick:   cfg.BurnPerTick,
		BurnTime:  cfg.BurnTime * 0.5, // trail contact burns shorter than a direct hit
	})
}

func (flameImpl) OnProjectileHit(s *Session, proj, target EntityID) {
	p := s.World.ProjectileData(proj)
	if p == nil {
		return
	}
	owner := ownerEntityOf(s, proj)
	cfg := configForOwner(s, owner, KindFlame)
	s.applyDamage(target, owner, p.Damage)
	s.ApplyBurn(target, owner, cfg.BurnTime, cfg.BurnTick, cfg.BurnPerTick)
}
