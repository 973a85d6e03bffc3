package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"filler-game/internal/config"
	"filler-game/internal/game"
	"filler-game/internal/ui"
)

// Local game against the bot in the terminal.
func main() {
	_ = godotenv.Load()
	cfg := config.Get()

	palette, err := game.ParsePalette(cfg.Palette)
	if err != nil {
		log.Fatalf("palette: %v", err)
	}
	s, err := game.NewGame(game.Settings{Size: cfg.BoardSize, Palette: palette}, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		log.Fatalf("new game: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	app := ui.NewApp(screen, s, cfg.BotDepth, cfg.DefaultWeights)
	runErr := app.Run(context.Background())
	screen.Close()
	if runErr != nil {
		log.Fatalf("game: %v", runErr)
	}

	final := app.State()
	scores := game.Scores(final)
	switch {
	case !final.Terminal:
		fmt.Printf("Game left after %d moves (%d - %d).\n", final.Moves, scores[0], scores[1])
	case final.Draw:
		fmt.Printf("Draw after %d moves (%d - %d).\n", final.Moves, scores[0], scores[1])
	default:
		fmt.Printf("Party %d wins after %d moves (%d - %d).\n", final.Winner, final.Moves, scores[0], scores[1])
	}
}
