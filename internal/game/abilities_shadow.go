package game

// Shadow fires a multi-shot spread; its special drops a decoy clone that
// enemies (and their homing shots) will happily chew on.

type shadowImpl struct{ baseImpl }

func (shadowImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, _, aim := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config
	shots := cfg.SpreadShots
	if shots < 1 {
		shots = 1
	}
	start := -cfg.FanSpread * float64(shots-1) / 2
	for i := 0; i < shots; i++ {
		s.spawnProjectile(id, rotate(aim, start+cfg.FanSpread*float64(i)), cfg.ProjectileRadius, Projectile{
			Kind:     KindShadow,
			Variant:  VariantShot,
			Damage:   f.Damage,
			Speed:    cfg.ProjectileSpeed,
			Lifetime: cfg.ProjectileLife,
		})
	}
	f.Primary.LastUsed = s.Now
	return true
}

func (shadowImpl) SpecialAbility(s *Session, id EntityID, dir Vec2) bool {
	f, tr, aim := fireGate(s, id, dir, true)
	if f == nil {
		return false
	}
	cfg := f.Config
	owner := s.World.OwnerData(id)
	body := s.World.BodyData(id)
	if owner == nil || body == nil {
		return false
	}

	// clone appears behind the caster and holds position until it expires
	pos := tr.Pos.Sub(aim.Scale(body.Radius * 3))
	pos.X = Clamp(pos.X, body.Radius, s.ArenaW-body.Radius)
	pos.Y = Clamp(pos.Y, body.Radius, s.ArenaH-body.Radius)

	clone := s.World.NewEntity()
	s.World.SetComponent(clone, CompTransform, &Transform{Pos: pos})
	s.World.SetComponent(clone, CompBody, &Body{
		Radius:      body.Radius,
		Mass:        body.Mass,
		Restitution: FighterRestitution,
		Friction:    FighterFriction,
	})
	s.World.SetComponent(clone, CompHealth, &Health{HP: cfg.DecoyHP, MaxHP: cfg.DecoyHP})
	s.World.SetComponent(clone, CompFighter, &Fighter{
		Kind:   KindShadow,
		Config: cfg,
		Facing: aim,
		Decoy:  true,
	})
	s.World.SetComponent(clone, CompOwner, &Owner{PlayerID: owner.PlayerID, Entity: id, Team: owner.Team})

	s.ScheduleAfter(cfg.DecoyLife, clone, func(s *Session) {
		s.removeEntity(clone)
	})

	f.Special.LastUsed = s.Now
	return true
}
