package game

// Void fires a dimensional rift shot. The shot travels a fixed distance,
// opens in place, strikes up to three nearby enemies with a short delay
// between each, then closes.

type voidImpl struct{ baseImpl }

func (voidImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, _, aim := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config
	s.spawnProjectile(id, aim, cfg.ProjectileRadius, Projectile{
		Kind:        KindVoid,
		Variant:     VariantRiftShot,
		Damage:      f.Damage,
		Speed:       cfg.ProjectileSpeed,
		Lifetime:    cfg.ProjectileLife,
		MaxDistance: cfg.RiftTravelDist,
	})
	f.Primary.LastUsed = s.Now
	return true
}

func (voidImpl) OnProjectileUpdate(s *Session, proj EntityID, dt float64) {
	p := s.World.ProjectileData(proj)
	tr := s.World.Transform(proj)
	if p == nil || tr == nil || p.Variant != VariantRiftShot {
		return
	}
	expired := s.Now-p.LaunchTime >= p.Lifetime
	if !expired && (p.MaxDistance <= 0 || tr.Pos.Dist(p.Origin) < p.MaxDistance) {
		return
	}
	owner := ownerEntityOf(s, proj)
	cfg := configForOwner(s, owner, KindVoid)
	pos := tr.Pos
	damage := p.Damage
	s.removeEntity(proj)
	openRift(s, owner, pos, damage, cfg)
}

func openRift(s *Session, owner EntityID, pos Vec2, damage float64, cfg CharacterConfig) {
	total := cfg.RiftOpenTime +
		cfg.RiftStrikeGap*float64(cfg.RiftStrikes) + 1.0 // grace before forced close
	s.spawnField(owner, pos, cfg.RiftRadius, Field{
		Kind:      FieldRift,
		Until:     s.Now + total,
		TickEvery: cfg.RiftStrikeGap,
		PerTick:   damage,
		Phase:     RiftOpening,
		PhaseAt:   s.Now + cfg.RiftOpenTime,
		CloseTime: cfg.RiftCloseTime,
		Strikes:   cfg.RiftStrikes,
	})
}

// OnProjectileHit: a rift shot that strikes a body directly opens on impact.
func (voidImpl) OnProjectileHit(s *Session, proj, target EntityID) {
	p := s.World.ProjectileData(proj)
	tr := s.World.Transform(proj)
	if p == nil || tr == nil {
		return
	}
	owner := ownerEntityOf(s, proj)
	cfg := configForOwner(s, owner, KindVoid)
	s.applyDamage(target, owner, p.Damage)
	openRift(s, owner, tr.Pos, p.Damage, cfg)
}
