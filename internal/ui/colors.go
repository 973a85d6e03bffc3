package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"filler-game/internal/game"
)

// paletteHex holds the on-screen shade of each named color.
var paletteHex = map[game.Color]string{
	game.Black:  "#383838",
	game.Pink:   "#d24259",
	game.Yellow: "#d8bf1d",
	game.Blue:   "#3f98d2",
	game.Green:  "#8cb64a",
	game.Purple: "#5f458c",
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	var rgb [3]int32
	for i := range rgb {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid component %d in %s: %w", i, hex, err)
		}
		rgb[i] = int32(v)
	}
	return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// ColorOf returns the terminal color for a game color.
func ColorOf(c game.Color) tcell.Color {
	hex, ok := paletteHex[c]
	if !ok {
		return tcell.ColorDefault
	}
	return MustParseHexColor(hex)
}
