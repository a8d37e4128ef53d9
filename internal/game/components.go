package game

// Ability tracks cooldown gating for one attack slot. Cooldowns reset only by
// timestamp comparison; a fresh Ability (respawn) is immediately ready.
type Ability struct {
	Cooldown float64
	LastUsed float64
}

func newAbility(cooldown float64) Ability {
	return Ability{Cooldown: cooldown, LastUsed: -1e9}
}

func (a *Ability) Ready(now float64) bool {
	return now >= a.LastUsed+a.Cooldown
}

// Fighter is the component carried by player-type entities (humans, bots and
// shadow decoys). Stat fields are seeded from the archetype config at spawn
// and stay mutable per entity: live balance tuning edits them directly.
type Fighter struct {
	Kind    CharacterKind
	Config  CharacterConfig
	Facing  Vec2
	Primary Ability
	Special Ability

	Damage          float64
	AttackRange     float64
	DamageReduction float64 // 0..1, applied before shields

	// Per-archetype ability state. Each field is owned by one kind.
	Stacks      int     // vortex: primary fires since last burst
	HoldStart   float64 // archer: charge hold start time, 0 when idle
	NextWallAt  float64 // frost: next automatic wall spawn
	NextDashAt  float64 // titan: next self-triggered charge dash
	NextTrailAt float64 // flame: next fire-trail drop while moving
	MinesDown   int     // bomber: live mines in the world

	Decoy bool // shadow clone: targetable, never acts
}

type ProjectileVariant uint8

const (
	VariantShot ProjectileVariant = iota
	VariantVortexShot
	VariantWave
	VariantChainBolt
	VariantWeb
	VariantFlameShot
	VariantArrow
	VariantCannon
	VariantRiftShot
)

// Projectile is the component carried by fired attacks. Lifetime counts down
// in simulated seconds; HitsRemaining is the number of additional targets a
// piercing projectile survives.
type Projectile struct {
	Kind          CharacterKind
	Variant       ProjectileVariant
	Damage        float64
	Speed         float64
	LaunchTime    float64
	Lifetime      float64
	HitsRemaining int
	Origin        Vec2
	MaxDistance   float64 // >0: stop/convert after traveling this far
	Target        EntityID
	TurnRate      float64 // homing steer rate, rad/s
	ChainHops     int
	NextTrailAt   float64    // flame: next fire-trail drop
	Hit           []EntityID // targets already struck, never re-hit
}

func (p *Projectile) alreadyHit(id EntityID) bool {
	for _, h := range p.Hit {
		if h == id {
			return true
		}
	}
	return false
}

type HazardKind uint8

const (
	HazardSpike HazardKind = iota
	HazardSlowPool
	HazardBouncePad
)

// Hazard is a static arena feature supplied by preset data.
type Hazard struct {
	Kind       HazardKind
	Damage     float64
	TickEvery  float64
	NextTickAt float64
	SlowFactor float64
	SlowTime   float64
	Bounce     float64 // outward impulse for bounce pads
}

type PowerupKind uint8

const (
	PowerupHeal PowerupKind = iota
	PowerupShield
)

// Powerup is a floor pickup. The first living fighter to touch it consumes
// it; unclaimed pickups expire at Until.
type Powerup struct {
	Kind   PowerupKind
	Amount float64 // heal points, or shield damage reduction in [0, 1)
	Until  float64
}

type FieldKind uint8

const (
	FieldVortex FieldKind = iota
	FieldWindTunnel
	FieldFireTrail
	FieldIceWall
	FieldMine
	FieldRift
)

type RiftPhase uint8

const (
	RiftTraveling RiftPhase = iota
	RiftOpening
	RiftActive
	RiftClosing
)

// Field is a transient area effect. Expiry (Now >= Until) removes the entity;
// per-kind behavior runs from updateFields each tick.
type Field struct {
	Kind      FieldKind
	Until     float64
	TickEvery float64
	NextTick  float64
	PerTick   float64

	Pull float64 // vortex inward / wind tunnel push strength
	Dir  Vec2    // wind tunnel axis

	SlowFactor float64
	SlowTime   float64
	BurnTime   float64 // fire trail: burn duration applied on contact

	ArmAt         float64 // mine: armed once Now passes this
	TriggerRadius float64

	Phase      RiftPhase
	PhaseAt    float64 // when the current phase ends
	CloseTime  float64
	Strikes    int
	NextStrike float64
}
