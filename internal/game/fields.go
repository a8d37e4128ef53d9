package game

// Fields are transient area effects owned by a fighter: vortex pull zones,
// wind tunnels, fire trails, ice walls, mines and void rifts. They carry a
// static Body for overlap queries; only ice walls block movement.

func (s *Session) spawnField(owner EntityID, pos Vec2, radius float64, field Field) EntityID {
	id := s.World.NewEntity()
	s.World.SetComponent(id, CompTransform, &Transform{Pos: pos})
	s.World.SetComponent(id, CompBody, &Body{Radius: radius, Mass: 1, Static: true})
	f := field
	s.World.SetComponent(id, CompField, &f)
	if o := s.World.OwnerData(owner); o != nil {
		s.World.SetComponent(id, CompOwner, &Owner{PlayerID: o.PlayerID, Entity: owner, Team: o.Team})
	}
	return id
}

func updateFields(s *Session, dt float64) {
	for _, id := range s.World.SortedIDs([]ComponentKey{CompField, CompTransform}) {
		if !s.World.Exists(id) {
			continue
		}
		f := s.World.FieldData(id)
		tr := s.World.Transform(id)
		body := s.World.BodyData(id)
		if f == nil || tr == nil || body == nil {
			continue
		}
		switch f.Kind {
		case FieldVortex:
			updateVortexField(s, id, f, tr, body)
		case FieldWindTunnel:
			updateWindTunnel(s, id, f, tr, body, dt)
		case FieldFireTrail:
			updateFireTrail(s, id, f, tr, body)
		case FieldMine:
			updateMine(s, id, f, tr, body)
		case FieldRift:
			updateRift(s, id, f, tr, body)
		}
		if f.Kind != FieldRift && s.Now >= f.Until {
			if f.Kind == FieldMine {
				releaseMineSlot(s, id)
			}
			s.removeEntity(id)
		}
	}
}

// updateVortexField pulls enemy fighters toward the center and ticks damage
// on anyone caught inside.
func updateVortexField(s *Session, id EntityID, f *Field, tr *Transform, body *Body) {
	owner := s.World.OwnerData(id)
	tick := f.TickEvery > 0 && s.Now >= f.NextTick
	s.World.ForEach([]ComponentKey{CompFighter, CompTransform}, func(target EntityID) {
		if !s.damageAllowed(owner, target) {
			return
		}
		ttr := s.World.Transform(target)
		if ttr == nil {
			return
		}
		delta := tr.Pos.Sub(ttr.Pos)
		if delta.Len() > body.Radius {
			return
		}
		ttr.Acc = ttr.Acc.Add(delta.Normalize().Scale(f.Pull))
		if tick {
			s.applyDamage(target, ownerEntityOf(s, id), f.PerTick)
		}
	})
	if tick {
		f.NextTick = s.Now + f.TickEvery
	}
}

// updateWindTunnel accelerates the owner's projectiles along the tunnel axis
// and shoves enemy projectiles off course.
func updateWindTunnel(s *Session, id EntityID, f *Field, tr *Transform, body *Body, dt float64) {
	owner := s.World.OwnerData(id)
	s.World.ForEach([]ComponentKey{CompProjectile, CompTransform}, func(proj EntityID) {
		ptr := s.World.Transform(proj)
		if ptr == nil || ptr.Pos.Dist(tr.Pos) > body.Radius {
			return
		}
		pOwner := s.World.OwnerData(proj)
		friendly := owner != nil && pOwner != nil && pOwner.PlayerID == owner.PlayerID
		if friendly {
			ptr.Vel = ptr.Vel.Add(ptr.Vel.Normalize().Scale(f.Pull * dt))
		} else {
			ptr.Vel = ptr.Vel.Add(f.Dir.Scale(f.Pull * dt))
		}
	})
}

func updateFireTrail(s *Session, id EntityID, f *Field, tr *Transform, body *Body) {
	owner := s.World.OwnerData(id)
	s.World.ForEach([]ComponentKey{CompFighter, CompTransform}, func(target EntityID) {
		if !s.damageAllowed(owner, target) {
			return
		}
		ttr := s.World.Transform(target)
		if ttr == nil || ttr.Pos.Dist(tr.Pos) > body.Radius {
			return
		}
		s.ApplyBurn(target, ownerEntityOf(s, id), f.BurnTime, f.TickEvery, f.PerTick)
	})
}

// updateMine arms after a delay and detonates on enemy proximity.
func updateMine(s *Session, id EntityID, f *Field, tr *Transform, body *Body) {
	if s.Now < f.ArmAt {
		return
	}
	owner := s.World.OwnerData(id)
	triggered := EntityID(0)
	for _, target := range s.World.SortedIDs([]ComponentKey{CompFighter, CompTransform}) {
		if triggered != 0 {
			break
		}
		if !s.damageAllowed(owner, target) {
			continue
		}
		if ttr := s.World.Transform(target); ttr != nil && ttr.Pos.Dist(tr.Pos) <= f.TriggerRadius {
			triggered = target
		}
	}
	if triggered == 0 {
		return
	}
	source := ownerEntityOf(s, id)
	s.World.ForEach([]ComponentKey{CompFighter, CompTransform}, func(target EntityID) {
		if !s.damageAllowed(owner, target) {
			return
		}
		ttr := s.World.Transform(target)
		if ttr == nil {
			return
		}
		delta := ttr.Pos.Sub(tr.Pos)
		if delta.Len() > body.Radius {
			return
		}
		s.applyDamage(target, source, f.PerTick)
		ttr.Vel = ttr.Vel.Add(delta.Normalize().Scale(200))
	})
	releaseMineSlot(s, id)
	s.removeEntity(id)
}

func releaseMineSlot(s *Session, mine EntityID) {
	if f := s.World.FighterData(ownerEntityOf(s, mine)); f != nil && f.MinesDown > 0 {
		f.MinesDown--
	}
}

// updateRift runs the opening -> active -> closing phase machine. While
// active it strikes the nearest enemy in range once per strike gap, up to the
// configured strike count.
func updateRift(s *Session, id EntityID, f *Field, tr *Transform, body *Body) {
	if f.Phase != RiftClosing && s.Now >= f.Until {
		f.Phase = RiftClosing
		f.PhaseAt = s.Now + f.CloseTime
	}
	switch f.Phase {
	case RiftOpening:
		if s.Now >= f.PhaseAt {
			f.Phase = RiftActive
			f.NextStrike = s.Now
		}
	case RiftActive:
		if f.Strikes <= 0 {
			f.Phase = RiftClosing
			f.PhaseAt = s.Now + f.CloseTime
			return
		}
		if s.Now < f.NextStrike {
			return
		}
		owner := s.World.OwnerData(id)
		target := nearestFighter(s, tr.Pos, body.Radius, func(candidate EntityID) bool {
			return s.damageAllowed(owner, candidate)
		})
		if target != 0 {
			s.applyDamage(target, ownerEntityOf(s, id), f.PerTick)
			f.Strikes--
		}
		f.NextStrike = s.Now + f.TickEvery
	case RiftClosing:
		if s.Now >= f.PhaseAt {
			s.removeEntity(id)
		}
	}
}

// nearestFighter returns the closest living fighter (decoys included, they
// are targetable) within maxRange that passes the filter; ties break toward
// the lower id because candidates are walked in ascending order with a
// strict comparison.
func nearestFighter(s *Session, from Vec2, maxRange float64, accept func(EntityID) bool) EntityID {
	best := EntityID(0)
	bestDist := maxRange
	for _, id := range s.World.SortedIDs([]ComponentKey{CompFighter, CompTransform, CompHealth}) {
		hp := s.World.HealthData(id)
		if hp == nil || hp.HP <= 0 {
			continue
		}
		if accept != nil && !accept(id) {
			continue
		}
		tr := s.World.Transform(id)
		if tr == nil {
			continue
		}
		d := tr.Pos.Dist(from)
		if d > maxRange {
			continue
		}
		if best == 0 || d < bestDist {
			best = id
			bestDist = d
		}
	}
	return best
}

// HazardSpec is the plain-data description of one static arena hazard, as
// produced by the external editor.
type HazardSpec struct {
	Kind       string  `json:"kind"` // spike | slow | bounce
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Radius     float64 `json:"radius"`
	Damage     float64 `json:"damage,omitempty"`
	SlowFactor float64 `json:"slow_factor,omitempty"`
	Bounce     float64 `json:"bounce,omitempty"`
}

// ArenaSettings is the imported arena preset. Malformed presets are rejected
// by the server layer before a session ever sees them.
type ArenaSettings struct {
	Width   float64      `json:"width"`
	Height  float64      `json:"height"`
	Hazards []HazardSpec `json:"hazards"`
}

// SpawnHazard places one static hazard. Unknown kinds become spikes with zero
// damage, which is harmless and visible rather than fatal.
func (s *Session) SpawnHazard(spec HazardSpec) EntityID {
	radius := spec.Radius
	if radius <= 0 {
		radius = 30
	}
	hz := &Hazard{TickEvery: 0.5}
	switch spec.Kind {
	case "slow":
		hz.Kind = HazardSlowPool
		hz.SlowFactor = Clamp(spec.SlowFactor, 0, 1)
		if hz.SlowFactor == 0 {
			hz.SlowFactor = 0.5
		}
		hz.SlowTime = 0.5
	case "bounce":
		hz.Kind = HazardBouncePad
		hz.Bounce = spec.Bounce
		if hz.Bounce <= 0 {
			hz.Bounce = 300
		}
	default:
		hz.Kind = HazardSpike
		hz.Damage = spec.Damage
	}
	id := s.World.NewEntity()
	pos := Vec2{X: Clamp(spec.X, radius, s.ArenaW-radius), Y: Clamp(spec.Y, radius, s.ArenaH-radius)}
	s.World.SetComponent(id, CompTransform, &Transform{Pos: pos})
	s.World.SetComponent(id, CompBody, &Body{Radius: radius, Mass: 1, Static: true})
	s.World.SetComponent(id, CompHazard, hz)
	return id
}
