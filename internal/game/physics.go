package game

// Tick order is fixed: deferred actions, field forces, integration, arena
// bounds, pairwise collisions, projectile lifetime, death sweep, fighter
// updates. Every pass walks entities in ascending id order so simultaneous
// events resolve by a stable rule.

func integrate(s *Session, dt float64) {
	world := s.World
	world.ForEach([]ComponentKey{CompTransform, CompBody}, func(id EntityID) {
		tr := world.Transform(id)
		body := world.BodyData(id)
		if tr == nil || body == nil || body.Static {
			return
		}
		tr.Vel = tr.Vel.Add(tr.Acc.Scale(dt)).Sanitize()
		tr.Acc = Vec2{}

		v := tr.Vel
		if slow := world.SlowData(id); slow != nil {
			v = v.Scale(slow.Factor)
		}
		tr.Pos = tr.Pos.Add(v.Scale(dt)).Sanitize()

		// knockback decays; steering re-applies intent every tick anyway
		if body.Friction > 0 && world.FighterData(id) != nil {
			tr.Vel = tr.Vel.Scale(body.Friction)
		}
	})
}

// constrainToArena reflects moving bodies off the walls with their
// restitution, then hard-clamps so nothing ends a tick out of bounds.
func constrainToArena(s *Session) {
	world := s.World
	world.ForEach([]ComponentKey{CompTransform, CompBody}, func(id EntityID) {
		tr := world.Transform(id)
		body := world.BodyData(id)
		if tr == nil || body == nil {
			return
		}
		r := body.Radius
		if tr.Pos.X < r {
			tr.Pos.X = r
			if tr.Vel.X < 0 {
				tr.Vel.X = -tr.Vel.X * body.Restitution
			}
		}
		if tr.Pos.X > s.ArenaW-r {
			tr.Pos.X = s.ArenaW - r
			if tr.Vel.X > 0 {
				tr.Vel.X = -tr.Vel.X * body.Restitution
			}
		}
		if tr.Pos.Y < r {
			tr.Pos.Y = r
			if tr.Vel.Y < 0 {
				tr.Vel.Y = -tr.Vel.Y * body.Restitution
			}
		}
		if tr.Pos.Y > s.ArenaH-r {
			tr.Pos.Y = s.ArenaH - r
			if tr.Vel.Y > 0 {
				tr.Vel.Y = -tr.Vel.Y * body.Restitution
			}
		}
	})
}

func resolveCollisions(s *Session) {
	world := s.World
	ids := world.SortedIDs([]ComponentKey{CompTransform, CompBody})
	for i := 0; i < len(ids); i++ {
		a := ids[i]
		if !world.Exists(a) {
			continue
		}
		for j := i + 1; j < len(ids); j++ {
			b := ids[j]
			// either side may have been removed by an earlier pair
			if !world.Exists(a) {
				break
			}
			if !world.Exists(b) {
				continue
			}
			ta, tb := world.Transform(a), world.Transform(b)
			ba, bb := world.BodyData(a), world.BodyData(b)
			if ta == nil || tb == nil || ba == nil || bb == nil {
				continue
			}
			if ta.Pos.Dist(tb.Pos) >= ba.Radius+bb.Radius {
				continue
			}
			resolvePair(s, a, b)
		}
	}
}

func resolvePair(s *Session, a, b EntityID) {
	world := s.World
	pa, pb := world.ProjectileData(a), world.ProjectileData(b)
	switch {
	case pa != nil && pb != nil:
		// projectiles pass through each other
	case pa != nil:
		projectileTouch(s, a, b)
	case pb != nil:
		projectileTouch(s, b, a)
	default:
		bodiesTouch(s, a, b)
	}
}

// projectileTouch handles a projectile overlapping a non-projectile body.
func projectileTouch(s *Session, proj, other EntityID) {
	world := s.World
	p := world.ProjectileData(proj)
	if p == nil {
		return
	}
	owner := world.OwnerData(proj)

	if world.HazardData(other) != nil {
		// floor hazards never block shots
		return
	}
	if field := world.FieldData(other); field != nil {
		if field.Kind != FieldIceWall {
			return
		}
		// walls block any shot that can take damage
		s.applyDamage(other, ownerEntityOf(s, proj), p.Damage)
		consumeProjectileHit(s, proj, other)
		return
	}
	if world.FighterData(other) == nil {
		return
	}
	if !s.damageAllowed(owner, other) {
		return
	}
	if p.alreadyHit(other) {
		return
	}
	implFor(p.Kind).OnProjectileHit(s, proj, other)
	consumeProjectileHit(s, proj, other)
}

// consumeProjectileHit records the target and removes the projectile unless
// it still has pierce hits left.
func consumeProjectileHit(s *Session, proj, target EntityID) {
	p := s.World.ProjectileData(proj)
	if p == nil {
		return
	}
	p.Hit = append(p.Hit, target)
	if p.HitsRemaining > 0 {
		p.HitsRemaining--
		return
	}
	s.removeEntity(proj)
}

// bodiesTouch separates two overlapping non-projectile circles and applies
// hazard contact effects.
func bodiesTouch(s *Session, a, b EntityID) {
	world := s.World
	ta, tb := world.Transform(a), world.Transform(b)
	ba, bb := world.BodyData(a), world.BodyData(b)
	if ta == nil || tb == nil || ba == nil || bb == nil {
		return
	}

	if hz := world.HazardData(a); hz != nil {
		hazardTouch(s, a, b)
		if hz.Kind != HazardBouncePad {
			return
		}
	}
	if hz := world.HazardData(b); hz != nil {
		hazardTouch(s, b, a)
		if hz.Kind != HazardBouncePad {
			return
		}
	}
	if f := world.FieldData(a); f != nil && f.Kind != FieldIceWall {
		return
	}
	if f := world.FieldData(b); f != nil && f.Kind != FieldIceWall {
		return
	}
	// floor pickups never push anyone around
	if world.PowerupData(a) != nil || world.PowerupData(b) != nil {
		return
	}

	delta := tb.Pos.Sub(ta.Pos)
	dist := delta.Len()
	overlap := ba.Radius + bb.Radius - dist
	if overlap <= SeparationSlop {
		return
	}
	normal := delta.Normalize()
	if normal.IsZero() {
		normal = Vec2{X: 1}
	}

	dashHit(s, a, b, normal)
	dashHit(s, b, a, normal.Scale(-1))

	switch {
	case ba.Static && bb.Static:
		return
	case ba.Static:
		tb.Pos = tb.Pos.Add(normal.Scale(overlap))
		reflect(tb, normal, bb.Restitution)
		if f := world.FieldData(a); f != nil && f.Kind == FieldIceWall {
			s.ApplySlow(b, f.SlowTime, f.SlowFactor)
		}
	case bb.Static:
		ta.Pos = ta.Pos.Sub(normal.Scale(overlap))
		reflect(ta, normal.Scale(-1), ba.Restitution)
		if f := world.FieldData(b); f != nil && f.Kind == FieldIceWall {
			s.ApplySlow(a, f.SlowTime, f.SlowFactor)
		}
	default:
		total := ba.Mass + bb.Mass
		if total <= 0 {
			total = 1
		}
		ta.Pos = ta.Pos.Sub(normal.Scale(overlap * bb.Mass / total))
		tb.Pos = tb.Pos.Add(normal.Scale(overlap * ba.Mass / total))

		// separation impulse along the contact normal, scaled by the
		// softer restitution
		rel := tb.Vel.Sub(ta.Vel).Dot(normal)
		if rel < 0 {
			e := ba.Restitution
			if bb.Restitution < e {
				e = bb.Restitution
			}
			impulse := -(1 + e) * rel / total
			ta.Vel = ta.Vel.Sub(normal.Scale(impulse * bb.Mass))
			tb.Vel = tb.Vel.Add(normal.Scale(impulse * ba.Mass))
		}
	}
}

func reflect(tr *Transform, normal Vec2, restitution float64) {
	vn := tr.Vel.Dot(normal)
	if vn < 0 {
		tr.Vel = tr.Vel.Sub(normal.Scale((1 + restitution) * vn))
	}
}

// dashHit stuns and damages the victim when a charging fighter rams them.
func dashHit(s *Session, rammer, victim EntityID, normal Vec2) {
	dash := s.World.DashData(rammer)
	if dash == nil || s.World.FighterData(victim) == nil {
		return
	}
	owner := s.World.OwnerData(rammer)
	if !s.damageAllowed(owner, victim) {
		return
	}
	f := s.World.FighterData(rammer)
	if f == nil {
		return
	}
	s.ApplyStun(victim, dash.StunTime)
	s.applyDamage(victim, rammer, f.Damage)
	if tr := s.World.Transform(victim); tr != nil {
		tr.Vel = tr.Vel.Add(normal.Scale(dash.Speed * 0.5))
	}
	// the dash ends on impact
	s.World.RemoveComponent(rammer, compDash)
	if tr := s.World.Transform(rammer); tr != nil {
		tr.Vel = Vec2{}
	}
}

func hazardTouch(s *Session, hazard, other EntityID) {
	hz := s.World.HazardData(hazard)
	if hz == nil || s.World.FighterData(other) == nil {
		return
	}
	switch hz.Kind {
	case HazardSpike:
		if s.Now >= hz.NextTickAt {
			s.applyDamage(other, hazard, hz.Damage)
			hz.NextTickAt = s.Now + hz.TickEvery
		}
	case HazardSlowPool:
		s.ApplySlow(other, hz.SlowTime, hz.SlowFactor)
	case HazardBouncePad:
		tr := s.World.Transform(other)
		htr := s.World.Transform(hazard)
		if tr != nil && htr != nil {
			away := tr.Pos.Sub(htr.Pos).Normalize()
			tr.Vel = tr.Vel.Add(away.Scale(hz.Bounce))
		}
	}
}

// updateProjectiles advances per-kind projectile behavior and expires shots
// whose lifetime ran out.
func updateProjectiles(s *Session, dt float64) {
	for _, id := range s.World.SortedIDs([]ComponentKey{CompProjectile, CompTransform}) {
		if !s.World.Exists(id) {
			continue
		}
		p := s.World.ProjectileData(id)
		if p == nil {
			continue
		}
		implFor(p.Kind).OnProjectileUpdate(s, id, dt)
		p = s.World.ProjectileData(id)
		if p == nil {
			continue
		}
		if s.Now-p.LaunchTime >= p.Lifetime {
			s.removeEntity(id)
		}
	}
}

// updateFighters ticks status effects and runs each surviving fighter's
// character hook (regen, auto abilities) and bot AI.
func updateFighters(s *Session, dt float64) {
	for _, id := range s.World.SortedIDs([]ComponentKey{CompFighter, CompHealth}) {
		if !s.World.Exists(id) {
			continue
		}
		tickStatusEffects(s, id)
		f := s.World.FighterData(id)
		hp := s.World.HealthData(id)
		if f == nil || hp == nil || hp.HP <= 0 || f.Decoy {
			continue
		}
		implFor(f.Kind).OnUpdate(s, id, dt)
		if agent := s.agents[id]; agent != nil && !s.movementLocked(id) {
			agent.update(s, id, dt)
		}
	}
}
