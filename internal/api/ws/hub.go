package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"filler-game/internal/room"
	"filler-game/internal/shared"
)

const writeWait = 10 * time.Second

type client struct {
	conn     *websocket.Conn
	playerID string

	// gorilla allows one concurrent writer per connection.
	mu sync.Mutex
}

func (c *client) send(action string, data any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(shared.Envelope{Action: action, Data: data})
}

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*client]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*client]struct{}),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// HandleWS upgrades a seated player's connection and serves its messages.
func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	playerID := c.Query("player_id")
	if roomCode == "" || playerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code or player_id"})
		return
	}
	rm, ok := h.roomManager.Get(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	if _, ok := rm.Player(playerID); !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a player in this room"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}
	cl := &client{conn: conn, playerID: playerID}
	log.Printf("ws: player %s connected to room %s", playerID, roomCode)

	h.add(roomCode, cl)
	defer func() {
		h.remove(roomCode, cl)
		_ = conn.Close()
		log.Printf("ws: player %s left room %s", playerID, roomCode)
	}()

	if err := cl.send(shared.ActionState, shared.NewStateMessage(roomCode, rm.State())); err != nil {
		log.Printf("ws: initial state to %s failed: %v", playerID, err)
		return
	}

	ctx := c.Request.Context()
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws: read from %s: %v", playerID, err)
			}
			return
		}
		h.handleMessage(ctx, rm, cl, raw)
	}
}

func (h *Hub) handleMessage(ctx context.Context, rm *room.Room, cl *client, raw []byte) {
	var msg shared.MoveMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		h.malformed(cl, fmt.Errorf("decode message: %w", err))
		return
	}

	switch msg.Action {
	case shared.ActionPlayerMove:
		h.handlePlayerMove(ctx, rm, cl, msg)
	case shared.ActionBotMove:
		bot, ok := rm.BotToMove()
		if !ok {
			h.reject(cl, room.ErrNotBotTurn)
			return
		}
		if _, err := h.roomManager.BotMove(ctx, rm, bot.ID); err != nil {
			h.reject(cl, err)
		}
	case shared.ActionGetState:
		if err := cl.send(shared.ActionState, shared.NewStateMessage(rm.Code, rm.State())); err != nil {
			log.Printf("ws: state to %s failed: %v", cl.playerID, err)
		}
	default:
		h.malformed(cl, fmt.Errorf("unknown action %q", msg.Action))
	}
}

func (h *Hub) handlePlayerMove(ctx context.Context, rm *room.Room, cl *client, msg shared.MoveMessage) {
	if msg.ChosenColor == "" {
		h.malformed(cl, fmt.Errorf("missing chosenColor"))
		return
	}
	p, ok := rm.Player(cl.playerID)
	if !ok {
		h.reject(cl, room.ErrNotAPlayer)
		return
	}
	if msg.ActingParty != p.Party {
		h.reject(cl, room.ErrPartyMismatch)
		return
	}

	// The accepted state reaches everyone through Broadcast.
	if _, err := h.roomManager.ApplyMove(ctx, rm, cl.playerID, msg.ChosenColor); err != nil {
		h.reject(cl, err)
		return
	}

	if bot, ok := rm.BotToMove(); ok {
		go func() {
			if _, err := h.roomManager.BotMove(context.Background(), rm, bot.ID); err != nil {
				log.Printf("ws: bot move in room %s failed: %v", rm.Code, err)
			}
		}()
	}
}

func (h *Hub) reject(cl *client, err error) {
	if sendErr := cl.send(shared.ActionRejected, shared.NewErrorMessage(room.ErrorCode(err), err)); sendErr != nil {
		log.Printf("ws: rejection to %s failed: %v", cl.playerID, sendErr)
	}
}

func (h *Hub) malformed(cl *client, err error) {
	log.Printf("ws: malformed message from %s: %v", cl.playerID, err)
	if sendErr := cl.send(shared.ActionError, shared.NewErrorMessage(shared.CodeMalformedMessage, err)); sendErr != nil {
		log.Printf("ws: error to %s failed: %v", cl.playerID, sendErr)
	}
}

// Broadcast sends a message to every connection in the room. Connections
// that fail to accept it are dropped.
func (h *Hub) Broadcast(roomCode string, action string, data any) {
	if h == nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[roomCode]))
	for cl := range h.rooms[roomCode] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		if err := cl.send(action, data); err != nil {
			log.Printf("ws: broadcast to %s failed: %v", cl.playerID, err)
			h.remove(roomCode, cl)
			_ = cl.conn.Close()
		}
	}
}

// Connections returns how many connections are open for a room.
func (h *Hub) Connections(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}

func (h *Hub) add(roomCode string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*client]struct{})
	}
	h.rooms[roomCode][cl] = struct{}{}
}

func (h *Hub) remove(roomCode string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[roomCode], cl)
	if len(h.rooms[roomCode]) == 0 {
		delete(h.rooms, roomCode)
	}
}
