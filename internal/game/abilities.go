package game

// CharacterImpl is the behavior bundle for one archetype. Implementations are
// stateless singletons; all mutable state lives on components, so one impl
// serves every fighter of its kind.
type CharacterImpl interface {
	PrimaryAttack(s *Session, id EntityID, dir Vec2) bool
	SpecialAbility(s *Session, id EntityID, dir Vec2) bool
	OnUpdate(s *Session, id EntityID, dt float64)
	OnProjectileUpdate(s *Session, proj EntityID, dt float64)
	OnProjectileHit(s *Session, proj, target EntityID)
	OnDamaged(s *Session, id, source EntityID, amount float64)
	OnKill(s *Session, id, victim EntityID)
}

var (
	defaultCharacter  = baseImpl{}
	vortexCharacter   = vortexImpl{}
	guardianCharacter = guardianImpl{}
	strikerCharacter  = strikerImpl{}
	mysticCharacter   = mysticImpl{}
	flameCharacter    = flameImpl{}
	frostCharacter    = frostImpl{}
	shadowCharacter   = shadowImpl{}
	titanCharacter    = titanImpl{}
	archerCharacter   = archerImpl{}
	samuraiCharacter  = samuraiImpl{}
	voidCharacter     = voidImpl{}
	bomberCharacter   = bomberImpl{}
)

// implFor dispatches over the closed kind set. The default arm is the
// forward-compat fallback for data-driven rosters, not an error path.
func implFor(kind CharacterKind) CharacterImpl {
	switch kind {
	case KindVortex:
		return vortexCharacter
	case KindGuardian:
		return guardianCharacter
	case KindStriker:
		return strikerCharacter
	case KindMystic:
		return mysticCharacter
	case KindFlame:
		return flameCharacter
	case KindFrost:
		return frostCharacter
	case KindShadow:
		return shadowCharacter
	case KindTitan:
		return titanCharacter
	case KindArcher:
		return archerCharacter
	case KindSamurai:
		return samuraiCharacter
	case KindVoid:
		return voidCharacter
	case KindBomber:
		return bomberCharacter
	default:
		return defaultCharacter
	}
}

// fireGate performs the shared preamble of every attack: the entity must
// still exist (ids routinely go stale mid-tick), must not be movement-locked,
// and the slot must be off cooldown. A zero direction falls back to facing.
// Returns nils when the attack must silently no-op.
func fireGate(s *Session, id EntityID, dir Vec2, special bool) (*Fighter, *Transform, Vec2) {
	f := s.World.FighterData(id)
	tr := s.World.Transform(id)
	if f == nil || tr == nil || f.Decoy {
		return nil, nil, Vec2{}
	}
	if hp := s.World.HealthData(id); hp == nil || hp.HP <= 0 {
		return nil, nil, Vec2{}
	}
	if s.movementLocked(id) {
		return nil, nil, Vec2{}
	}
	slot := &f.Primary
	if special {
		slot = &f.Special
	}
	if !slot.Ready(s.Now) {
		return nil, nil, Vec2{}
	}
	aim := dir.Normalize()
	if aim.IsZero() {
		aim = f.Facing.Normalize()
	}
	if aim.IsZero() {
		aim = Vec2{X: 1}
	}
	f.Facing = aim
	return f, tr, aim
}

// spawnProjectile places a shot offset past the owner's radius so it cannot
// collide with the owner on its first tick, and stamps ownership for the
// friendly-fire rule.
func (s *Session) spawnProjectile(owner EntityID, dir Vec2, radius float64, proj Projectile) EntityID {
	otr := s.World.Transform(owner)
	obody := s.World.BodyData(owner)
	if otr == nil || obody == nil {
		return 0
	}
	dir = dir.Normalize()
	if dir.IsZero() {
		dir = Vec2{X: 1}
	}
	pos := otr.Pos.Add(dir.Scale(obody.Radius + radius + ProjectileSpawnGap))

	id := s.World.NewEntity()
	s.World.SetComponent(id, CompTransform, &Transform{Pos: pos, Vel: dir.Scale(proj.Speed)})
	s.World.SetComponent(id, CompBody, &Body{
		Radius:      radius,
		Mass:        0.1,
		Restitution: ProjectileRestitution,
	})
	p := proj
	p.LaunchTime = s.Now
	p.Origin = pos
	s.World.SetComponent(id, CompProjectile, &p)
	if o := s.World.OwnerData(owner); o != nil {
		s.World.SetComponent(id, CompOwner, &Owner{PlayerID: o.PlayerID, Entity: owner, Team: o.Team})
	}
	return id
}

// baseImpl is the default archetype and the embedded fallback for every other
// implementation: single straight shot, plain damage on hit.
type baseImpl struct{}

func (baseImpl) PrimaryAttack(s *Session, id EntityID, dir Vec2) bool {
	f, _, aim := fireGate(s, id, dir, false)
	if f == nil {
		return false
	}
	cfg := f.Config
	s.spawnProjectile(id, aim, cfg.ProjectileRadius, Projectile{
		Kind:     f.Kind,
		Variant:  VariantShot,
		Damage:   f.Damage,
		Speed:    cfg.ProjectileSpeed,
		Lifetime: cfg.ProjectileLife,
	})
	f.Primary.LastUsed = s.Now
	return true
}

func (baseImpl) SpecialAbility(s *Session, id EntityID, dir Vec2) bool { return false }

func (baseImpl) OnUpdate(s *Session, id EntityID, dt float64) {}

func (baseImpl) OnProjectileUpdate(s *Session, proj EntityID, dt float64) {}

func (baseImpl) OnProjectileHit(s *Session, proj, target EntityID) {
	if p := s.World.ProjectileData(proj); p != nil {
		s.applyDamage(target, ownerEntityOf(s, proj), p.Damage)
	}
}

func (baseImpl) OnDamaged(s *Session, id, source EntityID, amount float64) {}

func (baseImpl) OnKill(s *Session, id, victim EntityID) {}
