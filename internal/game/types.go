package game

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Color is a paint from the fixed palette. Colors only compare for equality.
type Color string

const (
	Black  Color = "black"
	Yellow Color = "yellow"
	Pink   Color = "pink"
	Blue   Color = "blue"
	Green  Color = "green"
	Purple Color = "purple"
)

// AllColors lists the named colors in palette order.
var AllColors = []Color{Black, Yellow, Pink, Blue, Green, Purple}

// IsNamed reports whether c is one of the six named colors.
func (c Color) IsNamed() bool {
	for _, n := range AllColors {
		if n == c {
			return true
		}
	}
	return false
}

// Palette is the set of colors a session plays with.
type Palette []Color

// DefaultPalette returns all six named colors.
func DefaultPalette() Palette {
	return append(Palette(nil), AllColors...)
}

// ParsePalette validates color names and builds a palette from them.
func ParsePalette(names []string) (Palette, error) {
	p := make(Palette, 0, len(names))
	seen := map[Color]bool{}
	for _, n := range names {
		c := Color(n)
		if !c.IsNamed() {
			return nil, configError(fmt.Sprintf("unknown color %q", n))
		}
		if seen[c] {
			return nil, configError(fmt.Sprintf("duplicate color %q", n))
		}
		seen[c] = true
		p = append(p, c)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that the palette can always satisfy the generation constraint.
func (p Palette) Validate() error {
	if len(p) < MinPaletteSize {
		return configError(fmt.Sprintf("palette needs at least %d colors, got %d", MinPaletteSize, len(p)))
	}
	return nil
}

// Contains reports whether c belongs to the palette.
func (p Palette) Contains(c Color) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int
	Col int
}

// MarshalJSON encodes a coordinate as a [row, col] pair.
func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON decodes a [row, col] pair.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	c.Row, c.Col = pair[0], pair[1]
	return nil
}

// Board is a square grid of colors stored row-major.
type Board struct {
	Size  int       `json:"size"`
	Cells [][]Color `json:"cells"`
}

// NewBoard allocates an empty size×size board.
func NewBoard(size int) Board {
	c := make([][]Color, size)
	for i := range c {
		c[i] = make([]Color, size)
	}
	return Board{Size: size, Cells: c}
}

// In reports whether the coordinate lies on the board.
func (b Board) In(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Size && c.Col >= 0 && c.Col < b.Size
}

// At returns the color at c.
func (b Board) At(c Coord) Color {
	return b.Cells[c.Row][c.Col]
}

// CellCount is the total number of cells.
func (b Board) CellCount() int {
	return b.Size * b.Size
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	out := NewBoard(b.Size)
	for r := range b.Cells {
		copy(out.Cells[r], b.Cells[r])
	}
	return out
}

func (b Board) index(c Coord) int {
	return c.Row*b.Size + c.Col
}

// Blob is a set of coordinates kept sorted row-major.
type Blob []Coord

// Len returns the number of cells in the blob.
func (bl Blob) Len() int { return len(bl) }

// Contains reports whether c is part of the blob.
func (bl Blob) Contains(c Coord) bool {
	i := sort.Search(len(bl), func(i int) bool { return !less(bl[i], c) })
	return i < len(bl) && bl[i] == c
}

// Clone returns a copy of the blob.
func (bl Blob) Clone() Blob {
	return append(Blob(nil), bl...)
}

func less(a, b Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// PartyID identifies one of the two contending parties.
type PartyID int

const (
	NoParty PartyID = 0
	Party1  PartyID = 1
	Party2  PartyID = 2
)

// Opponent returns the other party.
func (p PartyID) Opponent() PartyID {
	if p == Party1 {
		return Party2
	}
	return Party1
}

// Valid reports whether p names one of the two parties.
func (p PartyID) Valid() bool {
	return p == Party1 || p == Party2
}

// Party is a contender with its current paint and owned region.
type Party struct {
	ID      PartyID `json:"id"`
	Color   Color   `json:"color"`
	Anchors []Coord `json:"anchors"`
	Blob    Blob    `json:"blob"`
}

func (p Party) clone() Party {
	p.Anchors = append([]Coord(nil), p.Anchors...)
	p.Blob = p.Blob.Clone()
	return p
}

// GameState is the full authoritative state of one session.
type GameState struct {
	Board    Board    `json:"board"`
	Palette  Palette  `json:"palette"`
	Parties  [2]Party `json:"parties"`
	Turn     PartyID  `json:"turn"`
	Winner   PartyID  `json:"winner"`
	Draw     bool     `json:"draw"`
	Terminal bool     `json:"terminal"`
	Moves    int      `json:"moves"`
}

// Party returns the party with the given id.
func (s GameState) Party(id PartyID) Party {
	return s.Parties[id-1]
}

// Clone returns a deep copy sharing no slices with s.
func (s GameState) Clone() GameState {
	out := s
	out.Board = s.Board.Clone()
	out.Palette = append(Palette(nil), s.Palette...)
	for i := range s.Parties {
		out.Parties[i] = s.Parties[i].clone()
	}
	return out
}

func (s *GameState) party(id PartyID) *Party {
	return &s.Parties[id-1]
}
