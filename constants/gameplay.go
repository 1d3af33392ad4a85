package constants

// Cycle Constants
const (
	// DefaultSpeed is cells per second
	DefaultSpeed = 15.0

	// MinSpeed and MaxSpeed bound configured speed
	MinSpeed = 1.0
	MaxSpeed = 60.0

	// DeathDimPercent is the share of color removed from a crashed cycle and its trail
	DeathDimPercent = 40

	// DefaultPlayers is the local player count
	DefaultPlayers = 2
)

// Arena Constants (cells)
const (
	DefaultArenaWidth  = 60
	DefaultArenaHeight = 30

	MinArenaWidth  = 10
	MinArenaHeight = 6

	// SpawnInsetDivisor places spawns at 1/4 of the arena from each edge
	SpawnInsetDivisor = 4
)
