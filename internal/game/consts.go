package game

const (
	SimHz        = 60.0 // simulation tick rate
	Dt           = 1.0 / SimHz
	UpdateRateHz = 20.0 // per-client WS state pushes

	ArenaDefaultW     = 800.0
	ArenaDefaultH     = 600.0
	ArenaMinDimension = 100.0

	SessionMaxPlayers = 8

	FighterDefaultRadius = 20.0
	FighterDefaultMass   = 1.0
	FighterRestitution   = 0.4
	FighterFriction      = 0.90 // velocity retained per tick for knockback decay

	ProjectileRestitution = 1.0

	// Spawned projectiles start this far beyond the owner's radius so they
	// never collide with the owner on their first tick.
	ProjectileSpawnGap = 4.0

	SeparationSlop = 0.5 // overlap tolerated before fighters are pushed apart

	BotAutoFireRange = 420.0
)
