package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"filler-game/internal/config"
	"filler-game/internal/game"
	"filler-game/internal/telemetry"
)

// App is a local game of one human against the bot.
type App struct {
	screen   *Screen
	renderer *Renderer
	engine   *game.Engine
	human    game.PartyID
	depth    int
	weights  config.HeuristicWeights
	msg      string
	running  bool
}

// NewApp seats the human as party 1 and the bot as party 2.
func NewApp(screen *Screen, initial game.GameState, depth int, w config.HeuristicWeights) *App {
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		engine:   game.NewEngine(initial),
		human:    game.Party1,
		depth:    depth,
		weights:  w,
		msg:      "your move",
		running:  true,
	}
}

// State returns the current game state.
func (a *App) State() game.GameState {
	return a.engine.State()
}

// Run executes the main game loop until the player quits.
func (a *App) Run(ctx context.Context) error {
	for a.running {
		s := a.engine.State()
		if !s.Terminal && s.Turn != a.human {
			if err := a.botMove(ctx, s); err != nil {
				return err
			}
			continue
		}

		a.renderer.Render(s, a.human, a.msg)
		a.handleInput()
	}
	return nil
}

func (a *App) botMove(ctx context.Context, s game.GameState) error {
	_, span := telemetry.Tracer("ui").Start(ctx, "ui.bot_move")
	defer span.End()

	color, ok := game.BestMove(s, s.Turn, a.depth, a.weights)
	if !ok {
		return errors.New("bot has no move")
	}
	next, err := a.engine.ApplyMove(s.Turn, color)
	if err != nil {
		return fmt.Errorf("bot move %s: %w", color, err)
	}
	span.SetAttributes(attribute.String("bot.color", string(color)), attribute.Int("game.moves", next.Moves))
	a.msg = a.status(next, fmt.Sprintf("bot picked %s", color))
	return nil
}

// handleInput processes a single input event.
func (a *App) handleInput() {
	switch ev := a.screen.PollEvent().(type) {
	case *tcell.EventKey:
		a.handleKeyEvent(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	case nil:
		// screen finalized
		a.running = false
	}
}

func (a *App) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q' || r == 'Q':
			a.running = false
		case r >= '1' && r <= '9':
			a.pick(int(r - '1'))
		}
	}
}

func (a *App) pick(i int) {
	s := a.engine.State()
	if i >= len(s.Palette) {
		return
	}
	next, err := a.engine.ApplyMove(a.human, s.Palette[i])
	if err != nil {
		a.msg = fmt.Sprintf("%s: %v", s.Palette[i], err)
		return
	}
	a.msg = a.status(next, fmt.Sprintf("you picked %s", s.Palette[i]))
}

func (a *App) status(s game.GameState, last string) string {
	switch {
	case !s.Terminal:
		return last
	case s.Draw:
		return last + ". Draw."
	case s.Winner == a.human:
		return last + ". You win!"
	default:
		return last + ". The bot wins."
	}
}
