package game

// Chain lightning shared by striker (ranged bolt) and samurai (melee arc).
// Hops resolve instantly at strike time, nearest-first with lower entity id
// winning distance ties, and never revisit a struck target.

func chainStrike(s *Session, attacker EntityID, from Vec2, hops int, damage, falloff, radius float64, struck []EntityID) {
	owner := s.World.OwnerData(attacker)
	for hops > 0 && damage > 0.5 {
		next := nearestFighter(s, from, radius, func(candidate EntityID) bool {
			if !s.damageAllowed(owner, candidate) {
				return false
			}
			for _, hit := range struck {
				if hit == candidate {
					return false
				}
			}
			return true
		})
		if next == 0 {
			return
		}
		s.applyDamage(next, attacker, damage)
		struck = append(struck, next)
		if tr := s.World.Transform(next); tr != nil {
			from = tr.Pos
		}
		damage *= falloff
		hops--
	}
}

type strikerImpl struct{ baseImpl }

func (strikerImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, _, aim := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config
	s.spawnProjectile(id, aim, cfg.ProjectileRadius, Projectile{
		Kind:      KindStriker,
		Variant:   VariantChainBolt,
		Damage:    f.Damage,
		Speed:     cfg.ProjectileSpeed,
		Lifetime:  cfg.ProjectileLife,
		ChainHops: int(cfg.ChainHops),
	})
	f.Primary.LastUsed = s.Now
	return true
}

func (strikerImpl) OnProjectileHit(s *Session, proj, target EntityID) {
	p := s.World.ProjectileData(proj)
	if p == nil {
		return
	}
	owner := ownerEntityOf(s, proj)
	cfg := configForOwner(s, owner, KindStriker)
	s.applyDamage(target, owner, p.Damage)
	if tr := s.World.Transform(target); tr != nil {
		chainStrike(s, owner, tr.Pos, p.ChainHops, p.Damage*cfg.ChainFalloff,
			cfg.ChainFalloff, cfg.ChainRadius, []EntityID{owner, target})
	}
}

type samuraiImpl struct{ baseImpl }

// Samurai's primary is a melee-range arc: no projectile, the nearest enemy in
// reach takes the hit and the arc chains outward from them.
func (samuraiImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, tr, _ := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config
	owner := s.World.OwnerData(id)
	target := nearestFighter(s, tr.Pos, f.AttackRange, func(candidate EntityID) bool {
		return s.damageAllowed(owner, candidate)
	})
	if target == 0 {
		// swinging at air still spends the attack
		f.Primary.LastUsed = s.Now
		return true
	}
	s.applyDamage(target, id, f.Damage)
	if ttr := s.World.Transform(target); ttr != nil {
		chainStrike(s, id, ttr.Pos, int(cfg.ChainHops), f.Damage*cfg.ChainFalloff,
			cfg.ChainFalloff, cfg.ChainRadius, []EntityID{id, target})
	}
	f.Primary.LastUsed = s.Now
	return true
}
