package room

import (
	"errors"
	"sync"
	"time"

	"filler-game/internal/config"
	"filler-game/internal/game"
	"filler-game/internal/shared"
)

type Status string

const (
	StatusLobby    Status = "lobby"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomFull      = errors.New("room is full")
	ErrNotAPlayer    = errors.New("not a player in this room")
	ErrNotStarted    = errors.New("waiting for a second player")
	ErrNotBotTurn    = errors.New("not bot's turn")
	ErrPartyMismatch = errors.New("player does not control that party")
)

type Player struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	IsBot bool         `json:"isBot"`
	Party game.PartyID `json:"party"`
}

// Room is one game session: two seats and the engine they play on.
type Room struct {
	ID         string
	Code       string
	CreatedAt  time.Time
	RoomConfig *config.RoomConfig

	engine *game.Engine

	// moveMu orders each accepted move with its broadcast.
	moveMu sync.Mutex

	mu         sync.RWMutex
	players    []Player
	status     Status
	lastActive time.Time
}

// View is the JSON shape of a room.
type View struct {
	ID        string              `json:"id"`
	Code      string              `json:"code"`
	Status    Status              `json:"status"`
	Players   []Player            `json:"players"`
	CreatedAt time.Time           `json:"createdAt"`
	State     shared.StateMessage `json:"state"`
}

func (r *Room) View() View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return View{
		ID:        r.ID,
		Code:      r.Code,
		Status:    r.status,
		Players:   append([]Player(nil), r.players...),
		CreatedAt: r.CreatedAt,
		State:     shared.NewStateMessage(r.Code, r.engine.State()),
	}
}

// State returns a snapshot of the room's game.
func (r *Room) State() game.GameState {
	return r.engine.State()
}

func (r *Room) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

func (r *Room) Players() []Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Player(nil), r.players...)
}

// Player looks up a seated player by id.
func (r *Room) Player(id string) (Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// BotToMove returns the bot whose turn it is, if any.
func (r *Room) BotToMove() (Player, bool) {
	s := r.engine.State()
	if s.Terminal {
		return Player{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.status != StatusPlaying {
		return Player{}, false
	}
	for _, p := range r.players {
		if p.IsBot && p.Party == s.Turn {
			return p, true
		}
	}
	return Player{}, false
}

func (r *Room) LastActive() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastActive
}

func (r *Room) touch(now time.Time) {
	r.mu.Lock()
	r.lastActive = now
	r.mu.Unlock()
}

// seat adds a player to the first free party.
func (r *Room) seat(p Player, now time.Time) (Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.players) >= 2 {
		return Player{}, ErrRoomFull
	}
	p.Party = game.PartyID(len(r.players) + 1)
	r.players = append(r.players, p)
	if len(r.players) == 2 && r.status == StatusLobby {
		r.status = StatusPlaying
	}
	r.lastActive = now
	return p, nil
}

func (r *Room) finish() {
	r.mu.Lock()
	r.status = StatusFinished
	r.mu.Unlock()
}
