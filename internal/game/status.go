package game

// Status effects are typed components keyed by (entity, effect kind). They are
// attached by ability hit/update hooks and cleared in exactly one place,
// tickStatusEffects, when their deadline passes. Re-applying an effect
// refreshes its deadline instead of stacking duration; burn instances from
// distinct sources tick independently.

type BurnInstance struct {
	Source    EntityID
	Until     float64
	TickEvery float64
	NextTick  float64
	PerTick   float64
}

type Burn struct {
	Instances []BurnInstance
}

type Slow struct {
	Until  float64
	Factor float64 // velocity multiplier, 0..1
}

type Stun struct {
	Until    float64
	SavedVel Vec2
}

type Grab struct {
	Until     float64
	Grabber   EntityID
	TickEvery float64
	NextTick  float64
	PerTick   float64
}

// ChargeDash locks an entity into a straight dash. Impacting another fighter
// while dashing stuns the victim.
type ChargeDash struct {
	Until    float64
	Dir      Vec2
	Speed    float64
	StunTime float64
}

type Shield struct {
	Until     float64
	Reduction float64 // incoming damage multiplier reduction, 0..1
}

func (s *Session) ApplyBurn(target, source EntityID, duration, tickEvery, perTick float64) {
	if duration <= 0 || tickEvery <= 0 {
		return
	}
	burn := s.World.BurnData(target)
	if burn == nil {
		if !s.World.Exists(target) {
			return
		}
		burn = &Burn{}
		s.World.SetComponent(target, compBurn, burn)
	}
	until := s.Now + duration
	for i := range burn.Instances {
		if burn.Instances[i].Source == source {
			burn.Instances[i].Until = until
			burn.Instances[i].PerTick = perTick
			burn.Instances[i].TickEvery = tickEvery
			return
		}
	}
	burn.Instances = append(burn.Instances, BurnInstance{
		Source:    source,
		Until:     until,
		TickEvery: tickEvery,
		NextTick:  s.Now + tickEvery,
		PerTick:   perTick,
	})
}

func (s *Session) ApplySlow(target EntityID, duration, factor float64) {
	if duration <= 0 || !s.World.Exists(target) {
		return
	}
	factor = Clamp(factor, 0, 1)
	if slow := s.World.SlowData(target); slow != nil {
		slow.Until = s.Now + duration
		if factor < slow.Factor {
			slow.Factor = factor
		}
		return
	}
	s.World.SetComponent(target, compSlow, &Slow{Until: s.Now + duration, Factor: factor})
}

func (s *Session) ApplyStun(target EntityID, duration float64) {
	if duration <= 0 || !s.World.Exists(target) {
		return
	}
	if stun := s.World.StunData(target); stun != nil {
		stun.Until = s.Now + duration
		return
	}
	saved := Vec2{}
	if tr := s.World.Transform(target); tr != nil {
		saved = tr.Vel
		tr.Vel = Vec2{}
	}
	s.World.SetComponent(target, compStun, &Stun{Until: s.Now + duration, SavedVel: saved})
}

func (s *Session) ApplyGrab(target, grabber EntityID, duration, tickEvery, perTick float64) {
	if duration <= 0 || !s.World.Exists(target) {
		return
	}
	if grab := s.World.GrabData(target); grab != nil {
		grab.Until = s.Now + duration
		grab.Grabber = grabber
		return
	}
	s.World.SetComponent(target, compGrab, &Grab{
		Until:     s.Now + duration,
		Grabber:   grabber,
		TickEvery: tickEvery,
		NextTick:  s.Now + tickEvery,
		PerTick:   perTick,
	})
}

func (s *Session) ApplyShield(target EntityID, duration, reduction float64) {
	if duration <= 0 || !s.World.Exists(target) {
		return
	}
	if shield := s.World.ShieldData(target); shield != nil {
		shield.Until = s.Now + duration
		if reduction > shield.Reduction {
			shield.Reduction = Clamp(reduction, 0, 1)
		}
		return
	}
	s.World.SetComponent(target, compShield, &Shield{Until: s.Now + duration, Reduction: Clamp(reduction, 0, 1)})
}

func (s *Session) startDash(id EntityID, dir Vec2, duration, speed, stunTime float64) {
	if duration <= 0 || !s.World.Exists(id) {
		return
	}
	dir = dir.Normalize()
	if dir.IsZero() {
		return
	}
	s.World.SetComponent(id, compDash, &ChargeDash{
		Until:    s.Now + duration,
		Dir:      dir,
		Speed:    speed,
		StunTime: stunTime,
	})
}

// tickStatusEffects runs once per fighter per tick. Expiry removes the whole
// component; no other code clears status state.
func tickStatusEffects(s *Session, id EntityID) {
	world := s.World
	now := s.Now

	if burn := world.BurnData(id); burn != nil {
		live := burn.Instances[:0]
		for i := range burn.Instances {
			inst := burn.Instances[i]
			// a tick landing exactly on the deadline still fires, so a
			// 3s burn at 0.5s cadence deals six ticks, not five
			for now >= inst.NextTick && inst.NextTick <= inst.Until+1e-9 {
				s.applyDamage(id, inst.Source, inst.PerTick)
				inst.NextTick += inst.TickEvery
			}
			if now >= inst.Until {
				continue
			}
			live = append(live, inst)
		}
		burn.Instances = live
		if len(burn.Instances) == 0 {
			world.RemoveComponent(id, compBurn)
		}
	}

	if slow := world.SlowData(id); slow != nil && now >= slow.Until {
		world.RemoveComponent(id, compSlow)
	}

	if stun := world.StunData(id); stun != nil {
		if now >= stun.Until {
			if tr := world.Transform(id); tr != nil {
				tr.Vel = stun.SavedVel
			}
			world.RemoveComponent(id, compStun)
		} else if tr := world.Transform(id); tr != nil {
			tr.Vel = Vec2{}
		}
	}

	if grab := world.GrabData(id); grab != nil {
		expired := now >= grab.Until || !world.Exists(grab.Grabber)
		if expired {
			world.RemoveComponent(id, compGrab)
		} else {
			for now >= grab.NextTick {
				s.applyDamage(id, grab.Grabber, grab.PerTick)
				grab.NextTick += grab.TickEvery
			}
			// drag the victim toward the grabber
			tr := world.Transform(id)
			gtr := world.Transform(grab.Grabber)
			if tr != nil && gtr != nil {
				tr.Vel = gtr.Pos.Sub(tr.Pos).Normalize().Scale(120)
			}
		}
	}

	if dash := world.DashData(id); dash != nil {
		if now >= dash.Until {
			world.RemoveComponent(id, compDash)
			if tr := world.Transform(id); tr != nil {
				tr.Vel = Vec2{}
			}
		} else if tr := world.Transform(id); tr != nil {
			tr.Vel = dash.Dir.Scale(dash.Speed)
		}
	}

	if shield := world.ShieldData(id); shield != nil && now >= shield.Until {
		world.RemoveComponent(id, compShield)
	}
}

// movementLocked reports whether an entity may act on its own (attack, steer).
func (s *Session) movementLocked(id EntityID) bool {
	if stun := s.World.StunData(id); stun != nil {
		return true
	}
	if grab := s.World.GrabData(id); grab != nil {
		return true
	}
	if dash := s.World.DashData(id); dash != nil {
		return true
	}
	return false
}
