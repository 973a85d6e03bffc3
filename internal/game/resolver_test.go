package game

import (
	"errors"
	"math/rand"
	"reflect"
	"sync"
	"testing"

	"filler-game/internal/config"
)

// twoByTwo is
//
//	pink   yellow
//	black  pink
//
// with party 1 on black at (1,0) and party 2 on yellow at (0,1).
func twoByTwo(t *testing.T) GameState {
	t.Helper()
	b := boardOf([][]Color{
		{Pink, Yellow},
		{Black, Pink},
	})
	s, err := NewGameFromBoard(b, DefaultPalette(), Anchors(2))
	if err != nil {
		t.Fatalf("NewGameFromBoard: %v", err)
	}
	return s
}

func newRandomGame(t *testing.T, seed int64, size int) GameState {
	t.Helper()
	s, err := NewGame(Settings{Size: size, Palette: DefaultPalette()}, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return s
}

func TestTwoByTwoCaptureWins(t *testing.T) {
	s := twoByTwo(t)
	if got := s.Party(Party1).Blob; !reflect.DeepEqual(got, Blob{{1, 0}}) {
		t.Fatalf("initial party 1 blob = %v", got)
	}

	next, out := Resolve(s, Party1, Pink)
	if !out.Accepted {
		t.Fatalf("move rejected: %v", out.Err)
	}
	want := Blob{{0, 0}, {1, 0}, {1, 1}}
	if got := next.Party(Party1).Blob; !reflect.DeepEqual(got, want) {
		t.Fatalf("party 1 blob = %v, want %v", got, want)
	}
	if got := next.Party(Party2).Blob; !reflect.DeepEqual(got, Blob{{0, 1}}) {
		t.Fatalf("party 2 blob = %v", got)
	}
	if !next.Terminal || next.Winner != Party1 || next.Draw {
		t.Fatalf("expected party 1 win, got winner=%d terminal=%v draw=%v", next.Winner, next.Terminal, next.Draw)
	}
	if s.Terminal || s.Board.Cells[1][0] != Black {
		t.Fatalf("Resolve modified its input")
	}
}

func TestTwoByTwoDraw(t *testing.T) {
	b := boardOf([][]Color{
		{Pink, Yellow},
		{Black, Blue},
	})
	s, err := NewGameFromBoard(b, DefaultPalette(), Anchors(2))
	if err != nil {
		t.Fatal(err)
	}

	s, out := Resolve(s, Party1, Pink)
	if !out.Accepted || s.Terminal {
		t.Fatalf("first move: accepted=%v terminal=%v", out.Accepted, s.Terminal)
	}
	s, out = Resolve(s, Party2, Blue)
	if !out.Accepted {
		t.Fatalf("second move rejected: %v", out.Err)
	}
	if !s.Terminal || !s.Draw || s.Winner != NoParty {
		t.Fatalf("expected draw, got winner=%d terminal=%v draw=%v", s.Winner, s.Terminal, s.Draw)
	}
	if Scores(s) != [2]int{2, 2} {
		t.Fatalf("scores = %v", Scores(s))
	}
}

func TestValidationOrder(t *testing.T) {
	s := twoByTwo(t)
	over, _ := Resolve(s, Party1, Pink)

	tests := []struct {
		name  string
		state GameState
		party PartyID
		color Color
		want  error
	}{
		{"game over beats everything", over, Party2, "orange", ErrGameOver},
		{"unknown party", s, PartyID(3), Pink, ErrUnknownParty},
		{"no party", s, NoParty, Pink, ErrUnknownParty},
		{"unknown color before turn", s, Party2, "orange", ErrUnknownColor},
		{"color outside a small palette", withPalette(s, Palette{Black, Yellow, Pink}), Party1, Green, ErrUnknownColor},
		{"out of turn", s, Party2, Green, ErrOutOfTurn},
		{"no-op", s, Party1, Black, ErrNoOpMove},
		{"forbidden", s, Party1, Yellow, ErrForbiddenColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.state, tt.party, tt.color); !errors.Is(err, tt.want) {
				t.Fatalf("Validate = %v, want %v", err, tt.want)
			}
			_, out := Resolve(tt.state, tt.party, tt.color)
			if out.Accepted || out.Code != CodeOf(tt.want) {
				t.Fatalf("Resolve outcome = %+v", out)
			}
		})
	}
}

func withPalette(s GameState, p Palette) GameState {
	s = s.Clone()
	s.Palette = p
	return s
}

func TestRejectedMovesLeaveStateIdentical(t *testing.T) {
	s := newRandomGame(t, 5, 8)
	e := NewEngine(s)
	before := e.State()

	for _, move := range []struct {
		party PartyID
		color Color
		want  error
	}{
		{Party1, before.Party(Party1).Color, ErrNoOpMove},
		{Party1, before.Party(Party2).Color, ErrForbiddenColor},
		{Party2, LegalColors(before, Party2)[0], ErrOutOfTurn},
	} {
		got, err := e.ApplyMove(move.party, move.color)
		if !errors.Is(err, move.want) {
			t.Fatalf("ApplyMove(%d, %s) = %v, want %v", move.party, move.color, err, move.want)
		}
		if !reflect.DeepEqual(got, before) || !reflect.DeepEqual(e.State(), before) {
			t.Fatalf("rejected %s changed state", move.want)
		}
	}
}

func TestTurnsAlternate(t *testing.T) {
	e := NewEngine(newRandomGame(t, 11, 8))
	s := e.State()
	if _, err := e.ApplyMove(Party1, LegalColors(s, Party1)[0]); err != nil {
		t.Fatal(err)
	}
	s = e.State()
	if _, err := e.ApplyMove(Party1, LegalColors(s, Party1)[0]); !errors.Is(err, ErrOutOfTurn) {
		t.Fatalf("second move by party 1: got %v", err)
	}
	if _, err := e.ApplyMove(Party2, LegalColors(s, Party2)[0]); err != nil {
		t.Fatalf("party 2 reply: %v", err)
	}
	if got := e.State(); got.Turn != Party1 || got.Moves != 2 {
		t.Fatalf("turn=%d moves=%d", got.Turn, got.Moves)
	}
}

// TestRandomPlayouts plays random legal games and checks the blob invariants
// after every move.
func TestRandomPlayouts(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		size := 2 + int(seed%9)
		s := newRandomGame(t, seed, size)
		rng := rand.New(rand.NewSource(seed * 7))
		checkBlobs(t, s)

		for moves := 0; !s.Terminal; moves++ {
			if moves > 50*size*size {
				t.Fatalf("seed %d: game did not finish", seed)
			}
			legal := LegalColors(s, s.Turn)
			if len(legal) == 0 {
				t.Fatalf("seed %d: party %d has no legal color", seed, s.Turn)
			}
			prev := s
			var out Outcome
			s, out = Resolve(s, s.Turn, legal[rng.Intn(len(legal))])
			if !out.Accepted {
				t.Fatalf("seed %d: legal color rejected: %v", seed, out.Err)
			}
			if s.Party(prev.Turn).Blob.Len() < prev.Party(prev.Turn).Blob.Len() {
				t.Fatalf("seed %d: acting blob shrank", seed)
			}
			checkBlobs(t, s)
		}
		checkAbsorbing(t, s)
	}
}

func checkBlobs(t *testing.T, s GameState) {
	t.Helper()
	p1, p2 := s.Party(Party1), s.Party(Party2)
	for _, c := range p1.Blob {
		if p2.Blob.Contains(c) {
			t.Fatalf("cell %v owned by both parties", c)
		}
	}
	for _, p := range []Party{p1, p2} {
		if !Connected(p.Blob) {
			t.Fatalf("party %d blob is not connected: %v", p.ID, p.Blob)
		}
		for _, a := range p.Anchors {
			if !p.Blob.Contains(a) {
				t.Fatalf("party %d lost its anchor %v", p.ID, a)
			}
		}
		for i, c := range p.Blob {
			if s.Board.At(c) != p.Color {
				t.Fatalf("party %d owns %v of color %q, party color %q", p.ID, c, s.Board.At(c), p.Color)
			}
			if i > 0 && !less(p.Blob[i-1], c) {
				t.Fatalf("party %d blob not sorted", p.ID)
			}
		}
		if want := ComputeBlob(s.Board, p.Anchors, p.Color); !reflect.DeepEqual(p.Blob, want) {
			t.Fatalf("party %d blob %v is not maximal, want %v", p.ID, p.Blob, want)
		}
	}
	if p1.Color == p2.Color {
		t.Fatalf("both parties hold %q", p1.Color)
	}
}

func checkAbsorbing(t *testing.T, s GameState) {
	t.Helper()
	e := NewEngine(s)
	for _, party := range []PartyID{Party1, Party2} {
		for _, c := range s.Palette {
			got, err := e.ApplyMove(party, c)
			if !errors.Is(err, ErrGameOver) {
				t.Fatalf("move after the end: got %v", err)
			}
			if !reflect.DeepEqual(got, s) {
				t.Fatalf("finished state changed")
			}
		}
	}
	if LegalColors(s, s.Turn) != nil {
		t.Fatalf("finished game still has legal colors")
	}
}

func TestEngineSerializesRacingMoves(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		e := NewEngine(newRandomGame(t, seed, 8))
		legal := LegalColors(e.State(), Party1)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = e.ApplyMove(Party1, legal[i])
			}(i)
		}
		wg.Wait()

		accepted := 0
		for _, err := range errs {
			switch {
			case err == nil:
				accepted++
			case !errors.Is(err, ErrOutOfTurn):
				t.Fatalf("unexpected error %v", err)
			}
		}
		if accepted != 1 {
			t.Fatalf("seed %d: %d moves accepted, want exactly 1", seed, accepted)
		}
		if got := e.State(); got.Moves != 1 || got.Turn != Party2 {
			t.Fatalf("moves=%d turn=%d", got.Moves, got.Turn)
		}
	}
}

func TestLegalColorsAndGain(t *testing.T) {
	s := twoByTwo(t)
	legal := LegalColors(s, Party1)
	want := []Color{Pink, Blue, Green, Purple}
	if !reflect.DeepEqual(legal, want) {
		t.Fatalf("LegalColors = %v, want %v", legal, want)
	}
	if g := Gain(s, Party1, Pink); g != 2 {
		t.Fatalf("Gain(pink) = %d, want 2", g)
	}
	if g := Gain(s, Party1, Blue); g != 0 {
		t.Fatalf("Gain(blue) = %d, want 0", g)
	}
	if LegalColors(s, NoParty) != nil {
		t.Fatalf("no party should have no colors")
	}
}

func TestBestMove(t *testing.T) {
	w := config.Defaults().DefaultWeights
	s := twoByTwo(t)

	for depth := 1; depth <= 4; depth++ {
		c, ok := BestMove(s, Party1, depth, w)
		if !ok || c != Pink {
			t.Fatalf("depth %d: BestMove = %q, %v; want the winning pink", depth, c, ok)
		}
	}
	if _, ok := BestMove(s, Party2, 2, w); ok {
		t.Fatalf("BestMove must refuse when it is not the party's turn")
	}
	over, _ := Resolve(s, Party1, Pink)
	if _, ok := BestMove(over, Party2, 2, w); ok {
		t.Fatalf("BestMove must refuse on a finished game")
	}
	if got := HeuristicScore(over, Party1, w); got != w.WWin {
		t.Fatalf("HeuristicScore(win) = %d", got)
	}
	if got := HeuristicScore(over, Party2, w); got != -w.WWin {
		t.Fatalf("HeuristicScore(loss) = %d", got)
	}
}

func TestBestMoveIsLegal(t *testing.T) {
	w := config.Defaults().DefaultWeights
	e := NewEngine(newRandomGame(t, 21, 6))
	for i := 0; i < 1000 && !e.State().Terminal; i++ {
		s := e.State()
		c, ok := BestMove(s, s.Turn, 2, w)
		if !ok {
			t.Fatalf("no move for party %d", s.Turn)
		}
		if _, err := e.ApplyMove(s.Turn, c); err != nil {
			t.Fatalf("BestMove picked a rejected color: %v", err)
		}
	}
	if !e.State().Terminal {
		t.Fatalf("bot self-play did not finish")
	}
}
