package game

// Archer: rapid four-arrow piercing barrage, or a single heavy arrow scaled
// by how long the shot was held. The special raises a wind tunnel that speeds
// friendly projectiles along and shoves enemy ones off course.

type archerImpl struct{ baseImpl }

func (archerImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, _, aim := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config

	if f.HoldStart > 0 {
		hold := Clamp(s.Now-f.HoldStart, 0, cfg.ChargeMaxHold)
		f.HoldStart = 0
		scale := 1.0
		if cfg.ChargeMaxHold > 0 {
			scale = lerpFloat(1, cfg.ChargeDmgScale, hold/cfg.ChargeMaxHold)
		}
		s.spawnProjectile(id, aim, cfg.ProjectileRadius*1.5, Projectile{
			Kind:          KindArcher,
			Variant:       VariantArrow,
			Damage:        f.Damage * scale,
			Speed:         cfg.ProjectileSpeed * scale,
			Lifetime:      cfg.ProjectileLife,
			HitsRemaining: cfg.PierceHits,
		})
		f.Primary.LastUsed = s.Now
		return true
	}

	shots := cfg.BarrageShots
	if shots < 1 {
		shots = 1
	}
	fireArrow(s, id, f, aim)
	for i := 1; i < shots; i++ {
		s.ScheduleAfter(cfg.BarrageGap*float64(i), id, func(s *Session) {
			f := s.World.FighterData(id)
			if f == nil || s.movementLocked(id) {
				return
			}
			if hp := s.World.HealthData(id); hp == nil || hp.HP <= 0 {
				return
			}
			fireArrow(s, id, f, f.Facing)
		})
	}
	f.Primary.LastUsed = s.Now
	return true
}

func fireArrow(s *Session, id EntityID, f *Fighter, aim Vec2) {
	cfg := f.Config
	s.spawnProjectile(id, aim, cfg.ProjectileRadius, Projectile{
		Kind:          KindArcher,
		Variant:       VariantArrow,
		Damage:        f.Damage,
		Speed:         cfg.ProjectileSpeed,
		Lifetime:      cfg.ProjectileLife,
		HitsRemaining: cfg.PierceHits,
	})
}

// BeginCharge starts a charge-up hold for the archer's next primary shot.
// No-op for other kinds or while already holding.
func (s *Session) BeginCharge(id EntityID) {
	f := s.World.FighterData(id)
	if f == nil || f.Kind != KindArcher || f.HoldStart > 0 {
		return
	}
	f.HoldStart = s.Now
}

func (archerImpl) SpecialAbility(s *Session, id EntityID, dir Vec2) bool {
	f, tr, aim := fireGate(s, id, dir, true)
	if f == nil {
		return false
	}
	cfg := f.Config
	center := tr.Pos.Add(aim.Scale(cfg.TunnelRadius))
	s.spawnField(id, center, cfg.TunnelRadius, Field{
		Kind:  FieldWindTunnel,
		Until: s.Now + cfg.TunnelLife,
		Pull:  cfg.TunnelPush,
		Dir:   aim,
	})
	f.Special.LastUsed = s.Now
	return true
}
