package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"filler-game/internal/game"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the board, the palette keys and a status line. Each cell is
// two columns wide; owned cells carry their party number.
func (r *Renderer) Render(s game.GameState, human game.PartyID, msg string) {
	r.screen.Clear()

	scores := game.Scores(s)
	header := fmt.Sprintf("Filler  you: %d   bot: %d   move %d", scores[human-1], scores[human.Opponent()-1], s.Moves)
	r.drawText(0, 0, header, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	p1, p2 := s.Party(game.Party1), s.Party(game.Party2)
	for row := 0; row < s.Board.Size; row++ {
		for col := 0; col < s.Board.Size; col++ {
			c := game.Coord{Row: row, Col: col}
			style := tcell.StyleDefault.Background(ColorOf(s.Board.At(c))).Foreground(tcell.ColorWhite)
			mark := ' '
			switch {
			case p1.Blob.Contains(c):
				mark = '1'
			case p2.Blob.Contains(c):
				mark = '2'
			}
			r.screen.SetContent(2*col, row+1, mark, style)
			r.screen.SetContent(2*col+1, row+1, ' ', style)
		}
	}

	y := s.Board.Size + 2
	legal := game.LegalColors(s, human)
	x := 0
	for i, c := range s.Palette {
		style := tcell.StyleDefault.Foreground(ColorOf(c))
		if !contains(legal, c) {
			style = style.Dim(true)
		}
		x = r.drawText(x, y, fmt.Sprintf("[%d] %s ", i+1, c), style)
	}

	r.drawText(0, y+1, msg, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	r.drawText(0, y+2, fmt.Sprintf("1-%d pick a color, q quit", len(s.Palette)), tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// drawText writes text starting at x and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

func contains(colors []game.Color, c game.Color) bool {
	for _, x := range colors {
		if x == c {
			return true
		}
	}
	return false
}
