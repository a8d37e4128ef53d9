package game

// Bomber deploys proximity mines in place of a ranged shot. Mines arm after a
// short delay and detonate when an enemy wanders close.

type bomberImpl struct{ baseImpl }

func (bomberImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, tr, aim := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config
	if cfg.MaxMines > 0 && f.MinesDown >= cfg.MaxMines {
		return false
	}
	body := s.World.BodyData(id)
	if body == nil {
		return false
	}
	pos := tr.Pos.Add(aim.Scale(body.Radius + 12))
	pos.X = Clamp(pos.X, 8, s.ArenaW-8)
	pos.Y = Clamp(pos.Y, 8, s.ArenaH-8)
	s.spawnField(id, pos, 60, Field{
		Kind:          FieldMine,
		Until:         s.Now + cfg.MineLife,
		PerTick:       f.Damage,
		ArmAt:         s.Now + cfg.MineArmTime,
		TriggerRadius: cfg.MineTriggerAt,
	})
	f.MinesDown++
	f.Primary.LastUsed = s.Now
	return true
}
