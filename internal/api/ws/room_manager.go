package ws

import (
	"context"

	"filler-game/internal/game"
	"filler-game/internal/room"
)

type RoomManager interface {
	Get(roomCode string) (*room.Room, bool)
	ApplyMove(ctx context.Context, r *room.Room, playerID string, color game.Color) (game.GameState, error)
	BotMove(ctx context.Context, r *room.Room, botID string) (game.Color, error)
}
