package constants

// UI Layout Constants
const (
	// DefaultCellWidth is terminal columns per arena cell, compensating glyph aspect ratio
	DefaultCellWidth = 2

	// MaxCellWidth bounds configured cell width
	MaxCellWidth = 4

	// StatusBarHeight is the rows reserved under the arena
	StatusBarHeight = 1

	// BorderThickness is the rows/columns on each side used by the arena frame
	BorderThickness = 1
)

// Glyphs
const (
	TrailGlyph        = '█'
	DeadTrailGlyph    = '▓'
	BorderHorizontal  = '─'
	BorderVertical    = '│'
	BorderTopLeft     = '┌'
	BorderTopRight    = '┐'
	BorderBottomLeft  = '└'
	BorderBottomRight = '┘'

	HeadNorth = '▲'
	HeadSouth = '▼'
	HeadEast  = '▶'
	HeadWest  = '◀'
	HeadIdle  = '●'
	HeadDead  = '✖'
)

// Status Text
const (
	PausedText = " PAUSED "
	MutedText  = " MUTED "
	DrawText   = "DRAW"
	HelpText   = "arrows/wasd steer  p pause  r restart  m mute  esc quit"
)
