package game

import "sort"

// Snapshots are read-only copies for the transport layer; nothing in them
// aliases live world state.

type EntitySnapshot struct {
	ID        EntityID
	Type      string // fighter | projectile | hazard | field
	Character string
	Pos       Vec2
	Vel       Vec2
	Radius    float64
	HP        float64
	MaxHP     float64
	Owner     string
	Decoy     bool
	Field     string
}

type PlayerSnapshot struct {
	ID         string
	Name       string
	Entity     EntityID
	Character  string
	Bot        bool
	Difficulty Difficulty
	Wins       int
	HP         float64
	MaxHP      float64
}

type SessionSnapshot struct {
	ID       string
	Now      float64
	ArenaW   float64
	ArenaH   float64
	Mode     string
	Paused   bool
	Over     bool
	Winner   string
	Duration float64
	Players  []PlayerSnapshot
	Entities []EntitySnapshot
}

var fieldNames = map[FieldKind]string{
	FieldVortex:     "vortex",
	FieldWindTunnel: "wind_tunnel",
	FieldFireTrail:  "fire_trail",
	FieldIceWall:    "ice_wall",
	FieldMine:       "mine",
	FieldRift:       "rift",
}

// Snapshot returns the current read-only state of the session. Callers get
// nil players/entities slices only when the session is empty.
func (s *Session) Snapshot() SessionSnapshot {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	snap := SessionSnapshot{
		ID:     s.ID,
		Now:    s.Now,
		ArenaW: s.ArenaW,
		ArenaH: s.ArenaH,
		Paused: s.paused,
		Over:   s.over,
	}
	if s.mode != nil {
		snap.Mode = s.mode.Name()
	}
	if s.over {
		snap.Winner = s.result.Winner
		snap.Duration = s.result.Duration
	}

	for _, pid := range sortedPlayerIDs(s.Players) {
		p := s.Players[pid]
		ps := PlayerSnapshot{
			ID:         p.ID,
			Name:       p.Name,
			Entity:     p.Entity,
			Character:  p.Kind.String(),
			Bot:        p.Bot,
			Difficulty: p.Difficulty,
			Wins:       p.Wins,
		}
		if hp := s.World.HealthData(p.Entity); hp != nil {
			ps.HP = hp.HP
			ps.MaxHP = hp.MaxHP
		}
		snap.Players = append(snap.Players, ps)
	}

	for _, id := range s.World.SortedIDs([]ComponentKey{CompTransform, CompBody}) {
		tr := s.World.Transform(id)
		body := s.World.BodyData(id)
		if tr == nil || body == nil {
			continue
		}
		es := EntitySnapshot{
			ID:     id,
			Pos:    tr.Pos,
			Vel:    tr.Vel,
			Radius: body.Radius,
		}
		switch {
		case s.World.FighterData(id) != nil:
			f := s.World.FighterData(id)
			es.Type = "fighter"
			es.Character = f.Kind.String()
			es.Decoy = f.Decoy
		case s.World.ProjectileData(id) != nil:
			es.Type = "projectile"
			es.Character = s.World.ProjectileData(id).Kind.String()
		case s.World.FieldData(id) != nil:
			es.Type = "field"
			es.Field = fieldNames[s.World.FieldData(id).Kind]
		case s.World.HazardData(id) != nil:
			es.Type = "hazard"
		case s.World.PowerupData(id) != nil:
			es.Type = "powerup"
			if s.World.PowerupData(id).Kind == PowerupShield {
				es.Field = "shield"
			} else {
				es.Field = "heal"
			}
		default:
			continue
		}
		if hp := s.World.HealthData(id); hp != nil {
			es.HP = hp.HP
			es.MaxHP = hp.MaxHP
		}
		if o := s.World.OwnerData(id); o != nil {
			es.Owner = o.PlayerID
		}
		snap.Entities = append(snap.Entities, es)
	}
	sort.Slice(snap.Entities, func(i, j int) bool { return snap.Entities[i].ID < snap.Entities[j].ID })
	return snap
}
