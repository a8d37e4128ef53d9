package game

// Powerups drop onto the arena floor at a fixed cadence when the session was
// started with them enabled. Placement comes from the session rng, pickup
// checks walk fighters in id order, so seeded matches replay identically.

const (
	powerupEvery   = 10.0 // seconds between drops
	powerupLife    = 15.0 // unclaimed pickups despawn after this long
	powerupRadius  = 14.0
	powerupMaxLive = 3

	powerupHealAmount  = 40.0
	powerupShieldTime  = 5.0
	powerupShieldGuard = 0.4
)

func (s *Session) spawnPowerupLocked() EntityID {
	margin := powerupRadius * 3
	pos := Vec2{
		X: Clamp(margin+s.rng.Float64()*(s.ArenaW-2*margin), powerupRadius, s.ArenaW-powerupRadius),
		Y: Clamp(margin+s.rng.Float64()*(s.ArenaH-2*margin), powerupRadius, s.ArenaH-powerupRadius),
	}
	pu := &Powerup{Until: s.Now + powerupLife}
	if s.rng.Float64() < 0.5 {
		pu.Kind = PowerupHeal
		pu.Amount = powerupHealAmount
	} else {
		pu.Kind = PowerupShield
		pu.Amount = powerupShieldGuard
	}
	id := s.World.NewEntity()
	s.World.SetComponent(id, CompTransform, &Transform{Pos: pos})
	s.World.SetComponent(id, CompBody, &Body{Radius: powerupRadius, Mass: 1, Static: true})
	s.World.SetComponent(id, CompPowerup, pu)
	return id
}

func updatePowerups(s *Session) {
	live := s.World.SortedIDs([]ComponentKey{CompPowerup, CompTransform})

	if s.powerupsOn && s.started && s.Now >= s.nextPowerupAt {
		s.nextPowerupAt = s.Now + powerupEvery
		if len(live) < powerupMaxLive {
			live = append(live, s.spawnPowerupLocked())
		}
	}

	for _, id := range live {
		pu := s.World.PowerupData(id)
		tr := s.World.Transform(id)
		body := s.World.BodyData(id)
		if pu == nil || tr == nil || body == nil {
			continue
		}
		if s.Now >= pu.Until {
			s.removeEntity(id)
			continue
		}
		taker := EntityID(0)
		for _, f := range s.World.SortedIDs([]ComponentKey{CompFighter, CompTransform, CompBody}) {
			fighter := s.World.FighterData(f)
			hp := s.World.HealthData(f)
			if fighter == nil || fighter.Decoy || hp == nil || hp.HP <= 0 {
				continue
			}
			ftr := s.World.Transform(f)
			fbody := s.World.BodyData(f)
			if ftr == nil || fbody == nil {
				continue
			}
			if ftr.Pos.Dist(tr.Pos) <= body.Radius+fbody.Radius {
				taker = f
				break
			}
		}
		if taker == 0 {
			continue
		}
		switch pu.Kind {
		case PowerupHeal:
			if hp := s.World.HealthData(taker); hp != nil {
				hp.HP = Clamp(hp.HP+pu.Amount, 0, hp.MaxHP)
			}
		case PowerupShield:
			s.ApplyShield(taker, powerupShieldTime, pu.Amount)
		}
		s.removeEntity(id)
	}
}
