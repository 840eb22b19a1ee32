// Package ui draws the HUD and overlays and reads window input.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	Text        rl.Color
	Accent      rl.Color
	PanelBg     rl.Color
	PanelBorder rl.Color
	FontSize    int32
	TitleSize   int32
	Padding     int32
	ButtonW     float32
	ButtonH     float32
}

// DefaultTheme returns the default UI theme for the given HUD font size.
func DefaultTheme(fontSize int) Theme {
	return Theme{
		Text:        rl.White,
		Accent:      rl.Yellow,
		PanelBg:     rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder: rl.Color{R: 60, G: 70, B: 80, A: 255},
		FontSize:    int32(fontSize),
		TitleSize:   int32(fontSize) * 2,
		Padding:     12,
		ButtonW:     140,
		ButtonH:     32,
	}
}
