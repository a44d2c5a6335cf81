// Package gfx provides the render-agnostic cell buffer screens draw into.
// It decouples game rendering from the terminal: screens draw colored runes
// and the platform layer handles actual display.
package gfx

// Color is a foreground color for a screen cell, mapped by the platform
// layer onto ANSI 256-color codes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)
