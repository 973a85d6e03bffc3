package game

import (
	"fmt"
	"math/rand"
)

const (
	DefaultBoardSize = 8
	MinPaletteSize   = 3

	// maxSetupAttempts bounds board regeneration when both anchors land on the same color.
	maxSetupAttempts = 64
)

// Generate fills a size×size board row-major. Each cell avoids the colors of
// its top and left neighbors; diagonal repeats are allowed.
func Generate(size int, palette Palette, rng *rand.Rand) (Board, error) {
	if size < 1 {
		return Board{}, configError(fmt.Sprintf("board size must be positive, got %d", size))
	}
	if err := palette.Validate(); err != nil {
		return Board{}, err
	}

	b := NewBoard(size)
	candidates := make([]Color, 0, len(palette))
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			candidates = candidates[:0]
			for _, color := range palette {
				if r > 0 && b.Cells[r-1][c] == color {
					continue
				}
				if c > 0 && b.Cells[r][c-1] == color {
					continue
				}
				candidates = append(candidates, color)
			}
			b.Cells[r][c] = candidates[rng.Intn(len(candidates))]
		}
	}
	return b, nil
}

// Settings describes a new session.
type Settings struct {
	Size    int
	Palette Palette
}

// DefaultSettings is an 8×8 board over the full palette.
func DefaultSettings() Settings {
	return Settings{Size: DefaultBoardSize, Palette: DefaultPalette()}
}

// Anchors returns the seed cells for both parties: party 1 bottom-left,
// party 2 top-right.
func Anchors(size int) [2]Coord {
	return [2]Coord{
		{Row: size - 1, Col: 0},
		{Row: 0, Col: size - 1},
	}
}

// NewGame generates a board and seats both parties on their anchors.
// Party 1 moves first.
func NewGame(set Settings, rng *rand.Rand) (GameState, error) {
	if set.Size < 2 {
		return GameState{}, configError(fmt.Sprintf("two parties need a board of at least 2x2, got %d", set.Size))
	}
	anchors := Anchors(set.Size)

	for attempt := 0; attempt < maxSetupAttempts; attempt++ {
		b, err := Generate(set.Size, set.Palette, rng)
		if err != nil {
			return GameState{}, err
		}
		if b.At(anchors[0]) == b.At(anchors[1]) {
			continue
		}
		return NewGameFromBoard(b, set.Palette, anchors)
	}
	return GameState{}, configError("could not give both parties distinct starting colors")
}

// NewGameFromBoard seats both parties on an existing board. Each party takes
// the color of its anchor cell.
func NewGameFromBoard(b Board, palette Palette, anchors [2]Coord) (GameState, error) {
	if err := palette.Validate(); err != nil {
		return GameState{}, err
	}
	for _, a := range anchors {
		if !b.In(a) {
			return GameState{}, configError(fmt.Sprintf("anchor %v is off the board", a))
		}
		if !palette.Contains(b.At(a)) {
			return GameState{}, configError(fmt.Sprintf("anchor %v has color %q outside the palette", a, b.At(a)))
		}
	}
	if b.At(anchors[0]) == b.At(anchors[1]) {
		return GameState{}, configError("both anchors share a color")
	}

	s := GameState{
		Board:   b.Clone(),
		Palette: append(Palette(nil), palette...),
		Turn:    Party1,
		Winner:  NoParty,
	}
	for i, id := range []PartyID{Party1, Party2} {
		a := anchors[i]
		color := b.At(a)
		s.Parties[i] = Party{
			ID:      id,
			Color:   color,
			Anchors: []Coord{a},
			Blob:    ComputeBlob(s.Board, []Coord{a}, color),
		}
	}
	// Hand-built boards may already give a party the majority.
	evaluateTerminal(&s)
	return s, nil
}
