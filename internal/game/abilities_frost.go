package game

// Frost shoots slowing bolts and periodically raises a three-segment ice wall
// ahead of itself. Walls block movement and shots, and chill on touch.

type frostImpl struct{ baseImpl }

func (frostImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, _, aim := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config
	s.spawnProjectile(id, aim, cfg.ProjectileRadius, Projectile{
		Kind:     KindFrost,
		Variant:  VariantShot,
		Damage:   f.Damage,
		Speed:    cfg.ProjectileSpeed,
		Lifetime: cfg.ProjectileLife,
	})
	f.Primary.LastUsed = s.Now
	return true
}

func (frostImpl) OnUpdate(s *Session, id EntityID, dt float64) {
	f := s.World.FighterData(id)
	tr := s.World.Transform(id)
	if f == nil || tr == nil || f.Config.WallEvery <= 0 {
		return
	}
	if f.NextWallAt == 0 {
		f.NextWallAt = s.Now + f.Config.WallEvery
		return
	}
	if s.Now < f.NextWallAt {
		return
	}
	f.NextWallAt = s.Now + f.Config.WallEvery
	spawnIceWall(s, id, f, tr)
}

func spawnIceWall(s *Session, id EntityID, f *Fighter, tr *Transform) {
	cfg := f.Config
	facing := f.Facing.Normalize()
	if facing.IsZero() {
		facing = Vec2{X: 1}
	}
	center := tr.Pos.Add(facing.Scale(70))
	across := orthogonal(facing)
	const segmentRadius = 16.0
	for i := -1; i <= 1; i++ {
		pos := center.Add(across.Scale(float64(i) * segmentRadius * 2))
		pos.X = Clamp(pos.X, segmentRadius, s.ArenaW-segmentRadius)
		pos.Y = Clamp(pos.Y, segmentRadius, s.ArenaH-segmentRadius)
		wall := s.spawnField(id, pos, segmentRadius, Field{
			Kind:       FieldIceWall,
			Until:      s.Now + cfg.WallLife,
			SlowFactor: cfg.WallSlowFactor,
			SlowTime:   cfg.WallSlowTime,
		})
		s.World.SetComponent(wall, CompHealth, &Health{HP: cfg.WallHP, MaxHP: cfg.WallHP})
	}
}

func (frostImpl) OnProjectileHit(s *Session, proj, target EntityID) {
	p := s.World.ProjectileData(proj)
	if p == nil {
		return
	}
	owner := ownerEntityOf(s, proj)
	cfg := configForOwner(s, owner, KindFrost)
	s.applyDamage(target, owner, p.Damage)
	s.ApplySlow(target, cfg.WallSlowTime, cfg.WallSlowFactor)
}
