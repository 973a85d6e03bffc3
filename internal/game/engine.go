package game

import "sync"

// Engine owns the authoritative state of one session. Moves are applied one
// at a time; a move fully resolves before the next one is looked at.
type Engine struct {
	mu    sync.Mutex
	state GameState
}

// NewEngine takes ownership of a copy of the initial state.
func NewEngine(initial GameState) *Engine {
	return &Engine{state: initial.Clone()}
}

// ApplyMove submits a color selection for a party. On success the new state
// is returned; on rejection the state is unchanged and the error says why.
func (e *Engine) ApplyMove(party PartyID, color Color) (GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, out := Resolve(e.state, party, color)
	if !out.Accepted {
		return e.state.Clone(), out.Err
	}
	e.state = next
	return next.Clone(), nil
}

// State returns a snapshot of the current state.
func (e *Engine) State() GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}
