package game

import (
	"strings"
	"sync"
)

// CharacterKind is the closed set of character archetypes. Unknown kind
// strings resolve to KindDefault rather than failing, so data-driven rosters
// stay forward compatible.
type CharacterKind uint8

const (
	KindDefault CharacterKind = iota
	KindVortex
	KindGuardian
	KindStriker
	KindMystic
	KindFlame
	KindFrost
	KindShadow
	KindTitan
	KindArcher
	KindSamurai
	KindVoid
	KindBomber
)

var kindNames = map[CharacterKind]string{
	KindDefault:  "default",
	KindVortex:   "vortex",
	KindGuardian: "guardian",
	KindStriker:  "striker",
	KindMystic:   "mystic",
	KindFlame:    "flame",
	KindFrost:    "frost",
	KindShadow:   "shadow",
	KindTitan:    "titan",
	KindArcher:   "archer",
	KindSamurai:  "samurai",
	KindVoid:     "void",
	KindBomber:   "bomber",
}

func (k CharacterKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "default"
}

// ParseKind maps an archetype name to its kind. "sniper" is the roster's
// legacy alias for void. Unknown names fall back to KindDefault.
func ParseKind(name string) CharacterKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "vortex":
		return KindVortex
	case "guardian":
		return KindGuardian
	case "striker":
		return KindStriker
	case "mystic":
		return KindMystic
	case "flame":
		return KindFlame
	case "frost":
		return KindFrost
	case "shadow":
		return KindShadow
	case "titan":
		return KindTitan
	case "archer":
		return KindArcher
	case "samurai":
		return KindSamurai
	case "void", "sniper":
		return KindVoid
	case "bomber":
		return KindBomber
	default:
		return KindDefault
	}
}

// CharacterConfig is the immutable per-archetype stat block. Kind-specific
// tunables are plain named fields; each field is read by exactly one
// archetype's ability code.
type CharacterConfig struct {
	MaxHP            float64
	MoveSpeed        float64
	Radius           float64
	Mass             float64
	Damage           float64
	ProjectileSpeed  float64
	ProjectileRadius float64
	ProjectileLife   float64 // seconds
	Cooldown         float64 // seconds between primary attacks
	SpecialCooldown  float64
	AttackRange      float64

	// Vortex
	VortexTravelDist  float64
	VortexFieldRadius float64
	VortexPull        float64
	VortexDuration    float64
	VortexTickDamage  float64
	VortexBurstStacks int
	VortexBurstShots  int
	VortexBurstGap    float64

	// Guardian
	WaveGrowthRate     float64
	WaveSlowFactor     float64
	WaveSlowTime       float64
	GuardianReduce     float64 // passive damage reduction 0..1
	GuardianRegen      float64 // HP per second
	GuardianDotTime    float64
	GuardianDotTick    float64
	GuardianDotPerTick float64

	// Striker / Samurai chain lightning
	ChainHops    float64
	ChainRadius  float64
	ChainFalloff float64

	// Mystic
	HomingTurnRate float64
	WebSlowFactor  float64
	WebSlowTime    float64

	// Flame
	FanShots    int
	FanSpread   float64 // radians between fan shots
	BurnTime    float64
	BurnTick    float64
	BurnPerTick float64
	TrailEvery  float64
	TrailLife   float64

	// Frost
	WallEvery      float64
	WallLife       float64
	WallHP         float64
	WallSlowTime   float64
	WallSlowFactor float64

	// Shadow
	SpreadShots int
	DecoyLife   float64
	DecoyHP     float64

	// Titan
	PierceHits    int
	GrabRange     float64
	GrabTime      float64
	GrabTick      float64
	GrabPerTick   float64
	SlamRadius    float64
	SlamKnockback float64
	SlamStunTime  float64
	DashEvery     float64
	DashSpeed     float64
	DashTime      float64
	DashStunTime  float64

	// Archer
	BarrageShots   int
	BarrageGap     float64
	ChargeMaxHold  float64
	ChargeDmgScale float64 // damage multiplier at full hold
	TunnelLife     float64
	TunnelRadius   float64
	TunnelPush     float64

	// Void rift
	RiftTravelDist float64
	RiftOpenTime   float64
	RiftStrikes    int
	RiftStrikeGap  float64
	RiftRadius     float64
	RiftCloseTime  float64

	// Bomber
	MineArmTime   float64
	MineTriggerAt float64
	MineLife      float64
	MaxMines      int
}

var (
	configMu sync.RWMutex
	configs  = defaultConfigs()
)

func defaultConfigs() map[CharacterKind]CharacterConfig {
	base := CharacterConfig{
		MaxHP:            250,
		MoveSpeed:        180,
		Radius:           FighterDefaultRadius,
		Mass:             FighterDefaultMass,
		Damage:           12,
		ProjectileSpeed:  340,
		ProjectileRadius: 6,
		ProjectileLife:   2.5,
		Cooldown:         0.6,
		SpecialCooldown:  5.0,
		AttackRange:      BotAutoFireRange,
	}

	table := map[CharacterKind]CharacterConfig{KindDefault: base}

	vortex := base
	vortex.Damage = 10
	vortex.Cooldown = 0.5
	vortex.VortexTravelDist = 220
	vortex.VortexFieldRadius = 70
	vortex.VortexPull = 150
	vortex.VortexDuration = 2.5
	vortex.VortexTickDamage = 3
	vortex.VortexBurstStacks = 5
	vortex.VortexBurstShots = 3
	vortex.VortexBurstGap = 0.15
	table[KindVortex] = vortex

	guardian := base
	guardian.MaxHP = 320
	guardian.MoveSpeed = 150
	guardian.Mass = 1.6
	guardian.Damage = 14
	guardian.ProjectileSpeed = 240
	guardian.ProjectileRadius = 10
	guardian.Cooldown = 1.1
	guardian.WaveGrowthRate = 14
	guardian.WaveSlowFactor = 0.55
	guardian.WaveSlowTime = 1.6
	guardian.GuardianReduce = 0.25
	guardian.GuardianRegen = 2.0
	guardian.GuardianDotTime = 2.0
	guardian.GuardianDotTick = 0.5
	guardian.GuardianDotPerTick = 2.0
	table[KindGuardian] = guardian

	striker := base
	striker.Damage = 16
	striker.Cooldown = 0.9
	striker.ChainHops = 3
	striker.ChainRadius = 160
	striker.ChainFalloff = 0.7
	table[KindStriker] = striker

	mystic := base
	mystic.Damage = 9
	mystic.ProjectileSpeed = 260
	mystic.HomingTurnRate = 4.0
	mystic.WebSlowFactor = 0.5
	mystic.WebSlowTime = 1.8
	table[KindMystic] = mystic

	flame := base
	flame.Damage = 8
	flame.Cooldown = 0.7
	flame.FanShots = 3
	flame.FanSpread = 0.22
	flame.BurnTime = 3.0
	flame.BurnTick = 0.5
	flame.BurnPerTick = 2
	flame.TrailEvery = 0.12
	flame.TrailLife = 0.8
	table[KindFlame] = flame

	frost := base
	frost.Damage = 11
	frost.WallEvery = 4.0
	frost.WallLife = 3.5
	frost.WallHP = 60
	frost.WallSlowTime = 1.2
	frost.WallSlowFactor = 0.6
	table[KindFrost] = frost

	shadow := base
	shadow.Damage = 7
	shadow.Cooldown = 0.55
	shadow.SpreadShots = 3
	shadow.FanSpread = 0.3
	shadow.DecoyLife = 4.0
	shadow.DecoyHP = 40
	table[KindShadow] = shadow

	titan := base
	titan.MaxHP = 360
	titan.MoveSpeed = 140
	titan.Mass = 2.0
	titan.Damage = 22
	titan.ProjectileSpeed = 300
	titan.ProjectileRadius = 12
	titan.Cooldown = 1.3
	titan.PierceHits = 2
	titan.GrabRange = 150
	titan.GrabTime = 1.5
	titan.GrabTick = 0.4
	titan.GrabPerTick = 5
	titan.SlamRadius = 120
	titan.SlamKnockback = 380
	titan.SlamStunTime = 0.8
	titan.DashEvery = 7.0
	titan.DashSpeed = 520
	titan.DashTime = 0.45
	titan.DashStunTime = 0.7
	table[KindTitan] = titan

	archer := base
	archer.Damage = 6
	archer.Cooldown = 1.0
	archer.ProjectileSpeed = 420
	archer.PierceHits = 1
	archer.BarrageShots = 4
	archer.BarrageGap = 0.08
	archer.ChargeMaxHold = 1.5
	archer.ChargeDmgScale = 2.5
	archer.TunnelLife = 3.0
	archer.TunnelRadius = 90
	archer.TunnelPush = 260
	table[KindArcher] = archer

	samurai := base
	samurai.Damage = 18
	samurai.Cooldown = 0.8
	samurai.AttackRange = 120
	samurai.ChainHops = 2
	samurai.ChainRadius = 110
	samurai.ChainFalloff = 0.8
	table[KindSamurai] = samurai

	void := base
	void.Damage = 15
	void.Cooldown = 1.4
	void.ProjectileSpeed = 380
	void.RiftTravelDist = 260
	void.RiftOpenTime = 0.3
	void.RiftStrikes = 3
	void.RiftStrikeGap = 0.2
	void.RiftRadius = 110
	void.RiftCloseTime = 0.25
	table[KindVoid] = void

	bomber := base
	bomber.Damage = 26
	bomber.Cooldown = 1.2
	bomber.MineArmTime = 0.6
	bomber.MineTriggerAt = 55
	bomber.MineLife = 10.0
	bomber.MaxMines = 4
	table[KindBomber] = bomber

	return table
}

// ConfigFor returns the stat block for a kind. Missing entries resolve to the
// default archetype; gameplay code never sees an error here.
func ConfigFor(kind CharacterKind) CharacterConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	if cfg, ok := configs[kind]; ok {
		return cfg
	}
	return configs[KindDefault]
}

// SetConfig replaces one archetype's entry atomically. Used by the tuning
// hot-reload path; live entities keep the stats they spawned with.
func SetConfig(kind CharacterKind, cfg CharacterConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	configs[kind] = cfg
}

// ResetConfigs restores the built-in table. Test hook.
func ResetConfigs() {
	configMu.Lock()
	defer configMu.Unlock()
	configs = defaultConfigs()
}
