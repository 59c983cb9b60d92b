package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorSky
	ColorCloud
	ColorPipe
	ColorPipeCap
	ColorGround
	ColorGroundTexture
	ColorAvatar
	ColorAvatarWing
	ColorBeak
	ColorEye
	ColorText
)
