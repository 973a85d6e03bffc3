package shared

import (
	"filler-game/internal/game"
)

// Inbound actions.
const (
	ActionPlayerMove = "playerMove"
	ActionBotMove    = "botMove"
	ActionGetState   = "getState"
)

// Outbound actions.
const (
	ActionState    = "state"
	ActionRejected = "rejected"
	ActionError    = "error"
)

// CodeMalformedMessage marks messages that could not be decoded. They never
// reach the engine.
const CodeMalformedMessage = "MALFORMED_MESSAGE"

// MoveMessage is what a client sends. Board and turn are never taken from
// the client.
type MoveMessage struct {
	Action      string       `json:"action"`
	ActingParty game.PartyID `json:"actingParty"`
	ChosenColor game.Color   `json:"chosenColor"`
}

// Envelope wraps every outbound message.
type Envelope struct {
	Action string `json:"action"`
	Data   any    `json:"data"`
}

// ErrorMessage reports a rejection or a malformed message to one connection.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PartyState struct {
	ID       game.PartyID `json:"id"`
	Color    game.Color   `json:"color"`
	Anchors  []game.Coord `json:"anchors"`
	Blob     []game.Coord `json:"blob"`
	BlobSize int          `json:"blobSize"`
}

// StateMessage is the state broadcast to every participant of a room.
type StateMessage struct {
	RoomCode        string         `json:"roomCode,omitempty"`
	Board           [][]game.Color `json:"board"`
	Palette         []game.Color   `json:"palette"`
	CurrentPlayer   game.PartyID   `json:"currentPlayer"`
	Winner          game.PartyID   `json:"winner"`
	Draw            bool           `json:"draw"`
	Terminal        bool           `json:"terminal"`
	Moves           int            `json:"moves"`
	Parties         []PartyState   `json:"parties"`
	SocketConnected bool           `json:"socketConnected"`
}

// NewStateMessage flattens a game state for the wire.
func NewStateMessage(roomCode string, s game.GameState) StateMessage {
	msg := StateMessage{
		RoomCode:        roomCode,
		Board:           s.Board.Cells,
		Palette:         s.Palette,
		CurrentPlayer:   s.Turn,
		Winner:          s.Winner,
		Draw:            s.Draw,
		Terminal:        s.Terminal,
		Moves:           s.Moves,
		Parties:         make([]PartyState, 0, len(s.Parties)),
		SocketConnected: true,
	}
	for _, p := range s.Parties {
		msg.Parties = append(msg.Parties, PartyState{
			ID:       p.ID,
			Color:    p.Color,
			Anchors:  p.Anchors,
			Blob:     p.Blob,
			BlobSize: p.Blob.Len(),
		})
	}
	return msg
}

func NewErrorMessage(code string, err error) ErrorMessage {
	return ErrorMessage{Code: code, Message: err.Error()}
}
