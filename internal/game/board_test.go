package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func TestGenerateNoEqualOrthogonalNeighbors(t *testing.T) {
	palettes := []Palette{DefaultPalette(), {Black, Pink, Blue}}
	for _, pal := range palettes {
		for size := 1; size <= 12; size++ {
			for seed := int64(0); seed < 20; seed++ {
				b, err := Generate(size, pal, rand.New(rand.NewSource(seed)))
				if err != nil {
					t.Fatalf("Generate(%d, %v): %v", size, pal, err)
				}
				for r := 0; r < size; r++ {
					for c := 0; c < size; c++ {
						if !pal.Contains(b.Cells[r][c]) {
							t.Fatalf("cell (%d,%d) = %q not in palette", r, c, b.Cells[r][c])
						}
						if r > 0 && b.Cells[r][c] == b.Cells[r-1][c] {
							t.Fatalf("seed %d size %d: (%d,%d) matches the cell above", seed, size, r, c)
						}
						if c > 0 && b.Cells[r][c] == b.Cells[r][c-1] {
							t.Fatalf("seed %d size %d: (%d,%d) matches the cell to the left", seed, size, r, c)
						}
					}
				}
			}
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a, _ := Generate(8, DefaultPalette(), rand.New(rand.NewSource(99)))
	b, _ := Generate(8, DefaultPalette(), rand.New(rand.NewSource(99)))
	if fmt.Sprint(a.Cells) != fmt.Sprint(b.Cells) {
		t.Fatalf("same seed produced different boards")
	}
}

func TestGenerateRejectsBadConfiguration(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := Generate(0, DefaultPalette(), rng); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("size 0: got %v", err)
	}
	if _, err := Generate(4, Palette{Black, Pink}, rng); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("two colors: got %v", err)
	}
	if _, err := NewGame(Settings{Size: 1, Palette: DefaultPalette()}, rng); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("1x1 game: got %v", err)
	}
}

func TestParsePalette(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		wantErr bool
	}{
		{"full", []string{"black", "yellow", "pink", "blue", "green", "purple"}, false},
		{"three", []string{"pink", "blue", "green"}, false},
		{"too few", []string{"pink", "blue"}, true},
		{"unknown", []string{"pink", "blue", "orange"}, true},
		{"duplicate", []string{"pink", "blue", "pink"}, true},
		{"empty", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePalette(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Fatalf("expected invalid configuration, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p) != len(tt.in) {
				t.Fatalf("got %d colors, want %d", len(p), len(tt.in))
			}
		})
	}
}

func TestNewGameSeatsBothParties(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s, err := NewGame(DefaultSettings(), rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		p1, p2 := s.Party(Party1), s.Party(Party2)
		if p1.Color == p2.Color {
			t.Fatalf("seed %d: both parties start on %q", seed, p1.Color)
		}
		if p1.Anchors[0] != (Coord{Row: 7, Col: 0}) || p2.Anchors[0] != (Coord{Row: 0, Col: 7}) {
			t.Fatalf("seed %d: anchors %v %v", seed, p1.Anchors, p2.Anchors)
		}
		if s.Turn != Party1 || s.Terminal || s.Moves != 0 {
			t.Fatalf("seed %d: bad initial flags %+v", seed, s)
		}
		if !p1.Blob.Contains(p1.Anchors[0]) || !p2.Blob.Contains(p2.Anchors[0]) {
			t.Fatalf("seed %d: blobs must contain their anchors", seed)
		}
	}
}

func TestNewGameFromBoardRejects(t *testing.T) {
	b := boardOf([][]Color{
		{Pink, Yellow},
		{Pink, Blue},
	})
	if _, err := NewGameFromBoard(b, DefaultPalette(), [2]Coord{{1, 0}, {0, 0}}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("shared anchor color: got %v", err)
	}
	if _, err := NewGameFromBoard(b, DefaultPalette(), [2]Coord{{2, 0}, {0, 1}}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("anchor off board: got %v", err)
	}
	if _, err := NewGameFromBoard(b, Palette{Pink, Blue, Green}, [2]Coord{{1, 0}, {0, 1}}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("anchor color outside palette: got %v", err)
	}
}

func TestCoordJSON(t *testing.T) {
	raw, err := json.Marshal(Coord{Row: 3, Col: 5})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[3,5]" {
		t.Fatalf("got %s", raw)
	}
	var c Coord
	if err := json.Unmarshal([]byte("[7,0]"), &c); err != nil {
		t.Fatal(err)
	}
	if c != (Coord{Row: 7, Col: 0}) {
		t.Fatalf("got %+v", c)
	}
	if err := json.Unmarshal([]byte(`{"row":1}`), &c); err == nil {
		t.Fatalf("expected error for object form")
	}
}

func TestErrorsMatchByCode(t *testing.T) {
	wrapped := fmt.Errorf("room ABC: %w", ErrForbiddenColor)
	if !errors.Is(wrapped, ErrForbiddenColor) {
		t.Fatalf("wrapped error lost its identity")
	}
	if errors.Is(wrapped, ErrNoOpMove) {
		t.Fatalf("codes must not cross-match")
	}
	if got := CodeOf(wrapped); got != CodeForbiddenColor {
		t.Fatalf("CodeOf = %q", got)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Fatalf("CodeOf(plain) = %q", got)
	}
}

func boardOf(rows [][]Color) Board {
	b := NewBoard(len(rows))
	for r := range rows {
		copy(b.Cells[r], rows[r])
	}
	return b
}
