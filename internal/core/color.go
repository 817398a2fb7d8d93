package core

// Color is the foreground of a screen cell. The platform decides how each
// one looks on the terminal.
type Color uint8

const (
	ColorDefault     Color = iota
	ColorWhite             // HUD text, dividers
	ColorBrightWhite       // Player ship, pause headline
	ColorGreen             // Aliens
	ColorBrightGreen       // Player bullets
	ColorRed               // Alien bullets
)
