package config

import (
	"errors"
	"sync"
)

// RoomConfig holds bot weights for a single room. Rooms start on the
// process defaults until someone customizes them.
type RoomConfig struct {
	mu         sync.RWMutex
	roomCode   string
	weights    HeuristicWeights
	customized bool
}

func NewRoomConfig(roomCode string, defaults HeuristicWeights) *RoomConfig {
	return &RoomConfig{roomCode: roomCode, weights: defaults}
}

func (rc *RoomConfig) RoomCode() string {
	return rc.roomCode
}

func (rc *RoomConfig) GetWeights() HeuristicWeights {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.weights
}

func (rc *RoomConfig) IsCustomized() bool {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	return rc.customized
}

// SetWeights replaces the room's weights.
func (rc *RoomConfig) SetWeights(w HeuristicWeights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.weights = w
	rc.customized = true
	return nil
}

// Reset drops customizations in favor of defaults.
func (rc *RoomConfig) Reset(defaults HeuristicWeights) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.weights = defaults
	rc.customized = false
}

var ErrInvalidWeights = errors.New("weights must not be negative")

// Validate rejects negative weights.
func (w HeuristicWeights) Validate() error {
	if w.WWin < 0 || w.WArea < 0 || w.WFrontier < 0 || w.WMobility < 0 {
		return ErrInvalidWeights
	}
	return nil
}
