package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the runner scene.
const (
	ColorDefault Color = iota
	ColorFloor
	ColorCloud
	ColorPlayer
	ColorMushroom
	ColorWing
	ColorHUD
	ColorAlert
	ColorCelebrate
)
