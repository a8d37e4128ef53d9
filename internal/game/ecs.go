package game

import "sort"

type EntityID int64

type ComponentKey string

// World is the single source of truth for all simulation state. Entities are
// plain ids; what an entity *is* follows from the components attached to it.
// Fighters carry Fighter+Transform+Body+Health, projectiles carry Projectile,
// static hazards carry Hazard, transient area effects carry Field.
type World struct {
	nextEntity EntityID
	components map[ComponentKey]map[EntityID]any
}

const (
	CompTransform  ComponentKey = "transform"
	CompBody       ComponentKey = "body"
	CompHealth     ComponentKey = "health"
	CompFighter    ComponentKey = "fighter"
	CompProjectile ComponentKey = "projectile"
	CompOwner      ComponentKey = "owner"
	CompHazard     ComponentKey = "hazard"
	CompField      ComponentKey = "field"
	CompPowerup    ComponentKey = "powerup"

	compBurn   ComponentKey = "status_burn"
	compSlow   ComponentKey = "status_slow"
	compStun   ComponentKey = "status_stun"
	compGrab   ComponentKey = "status_grab"
	compDash   ComponentKey = "status_dash"
	compShield ComponentKey = "status_shield"
)

// Transform holds position, velocity and the per-tick force accumulator.
type Transform struct {
	Pos Vec2
	Vel Vec2
	Acc Vec2
}

// Body holds the circle-collider constants used in collision response.
type Body struct {
	Radius      float64
	Mass        float64
	Restitution float64
	Friction    float64
	Static      bool
}

type Health struct {
	HP    float64
	MaxHP float64
}

// Owner marks who an entity acts for. PlayerID groups entities belonging to
// one participant; Entity is the spawning fighter, looked up by id only and
// never assumed alive.
type Owner struct {
	PlayerID string
	Entity   EntityID
	Team     int
}

func newWorld() *World {
	return &World{
		nextEntity: 0,
		components: make(map[ComponentKey]map[EntityID]any),
	}
}

func (w *World) NewEntity() EntityID {
	w.nextEntity++
	return w.nextEntity
}

func (w *World) SetComponent(id EntityID, key ComponentKey, value any) {
	store, ok := w.components[key]
	if !ok {
		store = make(map[EntityID]any)
		w.components[key] = store
	}
	store[id] = value
}

func (w *World) RemoveComponent(id EntityID, key ComponentKey) {
	if store, ok := w.components[key]; ok {
		delete(store, id)
	}
}

func (w *World) GetComponent(id EntityID, key ComponentKey) (any, bool) {
	if store, ok := w.components[key]; ok {
		val, ok := store[id]
		return val, ok
	}
	return nil, false
}

func (w *World) HasComponent(id EntityID, key ComponentKey) bool {
	if store, ok := w.components[key]; ok {
		_, ok := store[id]
		return ok
	}
	return false
}

func (w *World) RemoveEntity(id EntityID) {
	for _, store := range w.components {
		delete(store, id)
	}
}

func (w *World) Exists(id EntityID) bool {
	for _, store := range w.components {
		if _, ok := store[id]; ok {
			return true
		}
	}
	return false
}

func (w *World) ForEach(required []ComponentKey, fn func(EntityID)) {
	if len(required) == 0 {
		return
	}
	first := w.components[required[0]]
	if first == nil {
		return
	}
	for id := range first {
		match := true
		for _, key := range required[1:] {
			if store := w.components[key]; store == nil {
				match = false
				break
			} else if _, ok := store[id]; !ok {
				match = false
				break
			}
		}
		if match {
			fn(id)
		}
	}
}

// SortedIDs returns the ids matching the required components in ascending
// order. Collision resolution and target selection iterate this way so that
// simultaneous events resolve by a stable, documented rule.
func (w *World) SortedIDs(required []ComponentKey) []EntityID {
	var ids []EntityID
	w.ForEach(required, func(id EntityID) { ids = append(ids, id) })
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (w *World) Transform(id EntityID) *Transform {
	if v, ok := w.GetComponent(id, CompTransform); ok {
		if t, ok := v.(*Transform); ok {
			return t
		}
	}
	return nil
}

func (w *World) BodyData(id EntityID) *Body {
	if v, ok := w.GetComponent(id, CompBody); ok {
		if t, ok := v.(*Body); ok {
			return t
		}
	}
	return nil
}

func (w *World) HealthData(id EntityID) *Health {
	if v, ok := w.GetComponent(id, CompHealth); ok {
		if t, ok := v.(*Health); ok {
			return t
		}
	}
	return nil
}

func (w *World) FighterData(id EntityID) *Fighter {
	if v, ok := w.GetComponent(id, CompFighter); ok {
		if t, ok := v.(*Fighter); ok {
			return t
		}
	}
	return nil
}

func (w *World) ProjectileData(id EntityID) *Projectile {
	if v, ok := w.GetComponent(id, CompProjectile); ok {
		if t, ok := v.(*Projectile); ok {
			return t
		}
	}
	return nil
}

func (w *World) OwnerData(id EntityID) *Owner {
	if v, ok := w.GetComponent(id, CompOwner); ok {
		if t, ok := v.(*Owner); ok {
			return t
		}
	}
	return nil
}

func (w *World) HazardData(id EntityID) *Hazard {
	if v, ok := w.GetComponent(id, CompHazard); ok {
		if t, ok := v.(*Hazard); ok {
			return t
		}
	}
	return nil
}

func (w *World) FieldData(id EntityID) *Field {
	if v, ok := w.GetComponent(id, CompField); ok {
		if t, ok := v.(*Field); ok {
			return t
		}
	}
	return nil
}

func (w *World) PowerupData(id EntityID) *Powerup {
	if v, ok := w.GetComponent(id, CompPowerup); ok {
		if t, ok := v.(*Powerup); ok {
			return t
		}
	}
	return nil
}

func (w *World) BurnData(id EntityID) *Burn {
	if v, ok := w.GetComponent(id, compBurn); ok {
		if t, ok := v.(*Burn); ok {
			return t
		}
	}
	return nil
}

func (w *World) SlowData(id EntityID) *Slow {
	if v, ok := w.GetComponent(id, compSlow); ok {
		if t, ok := v.(*Slow); ok {
			return t
		}
	}
	return nil
}

func (w *World) StunData(id EntityID) *Stun {
	if v, ok := w.GetComponent(id, compStun); ok {
		if t, ok := v.(*Stun); ok {
			return t
		}
	}
	return nil
}

func (w *World) GrabData(id EntityID) *Grab {
	if v, ok := w.GetComponent(id, compGrab); ok {
		if t, ok := v.(*Grab); ok {
			return t
		}
	}
	return nil
}

func (w *World) DashData(id EntityID) *ChargeDash {
	if v, ok := w.GetComponent(id, compDash); ok {
		if t, ok := v.(*ChargeDash); ok {
			return t
		}
	}
	return nil
}

func (w *World) ShieldData(id EntityID) *Shield {
	if v, ok := w.GetComponent(id, compShield); ok {
		if t, ok := v.(*Shield); ok {
			return t
		}
	}
	return nil
}
