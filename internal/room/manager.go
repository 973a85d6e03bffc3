package room

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"filler-game/internal/config"
	"filler-game/internal/game"
	"filler-game/internal/shared"
	"filler-game/internal/telemetry"
)

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
	Rooms() []*Room
}

type Manager struct {
	store    Store
	cfg      config.Config
	settings game.Settings
	bc       Broadcaster
	seed     func() int64
	now      func() time.Time
}

type Option func(*Manager)

// WithSeed fixes the seed source used for new boards.
func WithSeed(seed func() int64) Option {
	return func(m *Manager) { m.seed = seed }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager validates the board settings once so a bad palette or size
// fails at startup rather than on the first room.
func NewManager(s Store, cfg config.Config, opts ...Option) (*Manager, error) {
	palette, err := game.ParsePalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	settings := game.Settings{Size: cfg.BoardSize, Palette: palette}
	if settings.Size < 2 {
		return nil, fmt.Errorf("board size %d: %w", settings.Size, game.ErrInvalidConfiguration)
	}

	m := &Manager{
		store:    s,
		cfg:      cfg,
		settings: settings,
		bc:       nopBroadcaster{},
		seed:     func() int64 { return time.Now().UnixNano() },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) SetBroadcaster(b Broadcaster) {
	if b == nil {
		b = nopBroadcaster{}
	}
	m.bc = b
}

func (m *Manager) Config() config.Config {
	return m.cfg
}

// CreateRoom starts a session with a fresh board and seats the creator as party 1.
func (m *Manager) CreateRoom(ctx context.Context, creatorName string) (*Room, Player, error) {
	_, span := telemetry.Tracer("room").Start(ctx, "room.create")
	defer span.End()

	if creatorName == "" {
		creatorName = "Player"
	}

	seed := m.seed()
	state, err := game.NewGame(m.settings, rand.New(rand.NewSource(seed)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, Player{}, err
	}

	now := m.now()
	code := m.uniqueCode()
	r := &Room{
		ID:         uuid.NewString(),
		Code:       code,
		CreatedAt:  now,
		RoomConfig: config.NewRoomConfig(code, m.cfg.DefaultWeights),
		engine:     game.NewEngine(state),
		status:     StatusLobby,
		lastActive: now,
	}
	p, err := r.seat(Player{ID: uuid.NewString(), Name: creatorName}, now)
	if err != nil {
		return nil, Player{}, err
	}
	m.store.SaveRoom(r)

	span.SetAttributes(
		attribute.String("room.code", code),
		attribute.Int64("board.seed", seed),
		attribute.Int("board.size", m.settings.Size),
	)
	log.Printf("room %s created by %s", code, creatorName)
	return r, p, nil
}

// Join seats a human in the free seat of an existing room.
func (m *Manager) Join(ctx context.Context, code, name string) (*Room, Player, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, Player{}, ErrRoomNotFound
	}
	if name == "" {
		name = "Player"
	}
	p, err := r.seat(Player{ID: uuid.NewString(), Name: name}, m.now())
	if err != nil {
		return r, Player{}, err
	}
	log.Printf("room %s: %s joined as party %d", code, name, p.Party)
	m.BroadcastState(r)
	return r, p, nil
}

// AddBot seats a bot in the free seat.
func (m *Manager) AddBot(ctx context.Context, r *Room) (Player, error) {
	p, err := r.seat(Player{ID: "bot-" + uuid.NewString(), Name: "Bot", IsBot: true}, m.now())
	if err != nil {
		return Player{}, err
	}
	log.Printf("room %s: bot seated as party %d", r.Code, p.Party)
	m.BroadcastState(r)
	return p, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// ApplyMove submits a color for the player's party and broadcasts the new
// state to the room. Rejections leave the game untouched and are not broadcast.
func (m *Manager) ApplyMove(ctx context.Context, r *Room, playerID string, color game.Color) (game.GameState, error) {
	_, span := telemetry.Tracer("room").Start(ctx, "room.apply_move")
	defer span.End()
	span.SetAttributes(
		attribute.String("room.code", r.Code),
		attribute.String("move.color", string(color)),
	)

	p, ok := r.Player(playerID)
	if !ok {
		return r.State(), ErrNotAPlayer
	}
	if r.Status() == StatusLobby {
		return r.State(), ErrNotStarted
	}

	r.moveMu.Lock()
	defer r.moveMu.Unlock()

	state, err := r.engine.ApplyMove(p.Party, color)
	if err != nil {
		span.SetAttributes(attribute.String("move.rejected", ErrorCode(err)))
		log.Printf("room %s: move by party %d rejected: %v", r.Code, p.Party, err)
		return state, err
	}
	r.touch(m.now())
	if state.Terminal {
		r.finish()
		log.Printf("room %s: game over, winner=%d draw=%v", r.Code, state.Winner, state.Draw)
	}
	span.SetAttributes(attribute.Int("game.moves", state.Moves))

	m.bc.Broadcast(r.Code, shared.ActionState, shared.NewStateMessage(r.Code, state))
	return state, nil
}

// BotMove lets the bot pick and play a color when it is its turn.
func (m *Manager) BotMove(ctx context.Context, r *Room, botID string) (game.Color, error) {
	bot, ok := r.BotToMove()
	if !ok || bot.ID != botID {
		return "", ErrNotBotTurn
	}

	ctx, span := telemetry.Tracer("room").Start(ctx, "room.bot_search")
	weights := r.RoomConfig.GetWeights()
	color, ok := game.BestMove(r.State(), bot.Party, m.cfg.BotDepth, weights)
	span.SetAttributes(
		attribute.String("room.code", r.Code),
		attribute.Int("bot.depth", m.cfg.BotDepth),
		attribute.String("bot.color", string(color)),
	)
	span.End()
	if !ok {
		return "", ErrNotBotTurn
	}

	if _, err := m.ApplyMove(ctx, r, bot.ID, color); err != nil {
		return "", err
	}
	return color, nil
}

// LegalColors lists what the player could pick right now.
func (m *Manager) LegalColors(r *Room, playerID string) ([]game.Color, error) {
	p, ok := r.Player(playerID)
	if !ok {
		return nil, ErrNotAPlayer
	}
	return game.LegalColors(r.State(), p.Party), nil
}

// BroadcastState pushes the current state to everyone in the room.
func (m *Manager) BroadcastState(r *Room) {
	m.bc.Broadcast(r.Code, shared.ActionState, shared.NewStateMessage(r.Code, r.State()))
}

// Reap drops rooms nobody has touched for longer than the configured TTL and
// returns how many were removed.
func (m *Manager) Reap() int {
	cutoff := m.now().Add(-m.cfg.RoomTTL)
	n := 0
	for _, r := range m.store.Rooms() {
		if r.LastActive().Before(cutoff) {
			m.store.DeleteRoom(r.Code)
			n++
		}
	}
	if n > 0 {
		log.Printf("reaped %d idle rooms", n)
	}
	return n
}

// RunReaper calls Reap every interval until ctx is done.
func (m *Manager) RunReaper(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Reap()
		}
	}
}

func (m *Manager) uniqueCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for {
		code := randCode(rng, 6)
		if _, taken := m.store.GetRoom(code); !taken {
			return code
		}
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}

// ErrorCode maps room and game errors to wire codes.
func ErrorCode(err error) string {
	if c := game.CodeOf(err); c != "" {
		return string(c)
	}
	switch {
	case errors.Is(err, ErrRoomNotFound):
		return "ROOM_NOT_FOUND"
	case errors.Is(err, ErrRoomFull):
		return "ROOM_FULL"
	case errors.Is(err, ErrNotAPlayer):
		return "NOT_A_PLAYER"
	case errors.Is(err, ErrNotStarted):
		return "NOT_STARTED"
	case errors.Is(err, ErrNotBotTurn):
		return "NOT_BOT_TURN"
	case errors.Is(err, ErrPartyMismatch):
		return "PARTY_MISMATCH"
	}
	return "UNKNOWN"
}
