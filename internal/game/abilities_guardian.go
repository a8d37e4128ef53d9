package game

// Guardian launches a slow energy wave that grows while it travels, slowing
// and burning whatever it washes over. The tank passive trades speed for
// damage reduction and steady self-heal.

type guardianImpl struct{ baseImpl }

func (guardianImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, _, aim := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config
	s.spawnProjectile(id, aim, cfg.ProjectileRadius, Projectile{
		Kind:     KindGuardian,
		Variant:  VariantWave,
		Damage:   f.Damage,
		Speed:    cfg.ProjectileSpeed,
		Lifetime: cfg.ProjectileLife,
	})
	f.Primary.LastUsed = s.Now
	return true
}

func (guardianImpl) OnUpdate(s *Session, id EntityID, dt float64) {
	f := s.World.FighterData(id)
	hp := s.World.HealthData(id)
	if f == nil || hp == nil {
		return
	}
	if hp.HP < hp.MaxHP {
		hp.HP += f.Config.GuardianRegen * dt
		if hp.HP > hp.MaxHP {
			hp.HP = hp.MaxHP
		}
	}
}

func (guardianImpl) OnProjectileUpdate(s *Session, proj EntityID, dt float64) {
	p := s.World.ProjectileData(proj)
	body := s.World.BodyData(proj)
	if p == nil || body == nil || p.Variant != VariantWave {
		return
	}
	cfg := configForOwner(s, ownerEntityOf(s, proj), KindGuardian)
	body.Radius += cfg.WaveGrowthRate * dt
}

func (guardianImpl) OnProjectileHit(s *Session, proj, target EntityID) {
	p := s.World.ProjectileData(proj)
	if p == nil {
		return
	}
	owner := ownerEntityOf(s, proj)
	cfg := configForOwner(s, owner, KindGuardian)
	s.applyDamage(target, owner, p.Damage)
	s.ApplySlow(target, cfg.WaveSlowTime, cfg.WaveSlowFactor)
	s.ApplyBurn(target, owner, cfg.GuardianDotTime, cfg.GuardianDotTick, cfg.GuardianDotPerTick)
}
