package http

import (
	"filler-game/internal/config"
	"filler-game/internal/game"
)

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomRequest represents the payload for joining an existing room.
type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// PlayRequest represents the payload for /play.
type PlayRequest struct {
	RoomCode string `json:"roomCode"`
}

// MoveRequest represents a player move.
type MoveRequest struct {
	RoomCode string     `json:"roomCode"`
	PlayerID string     `json:"playerId"`
	Color    game.Color `json:"color"`
}

// MoveBotRequest represents a bot move.
type MoveBotRequest struct {
	RoomCode string `json:"roomCode"`
	BotID    string `json:"botId"`
}

type UpdateRoomWeightsRequest struct {
	RoomCode string                   `json:"roomCode"`
	Weights  *config.HeuristicWeights `json:"weights"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
