package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"filler-game/internal/room"
)

type ConfigHandler struct {
	rm *room.Manager
}

func NewConfigHandler(rm *room.Manager) *ConfigHandler {
	return &ConfigHandler{rm: rm}
}

// GetDefaultWeightsHandler returns the global default weights
// @Summary Get default heuristic weights
// @Tags Config
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /config/weights/default [get]
func (h *ConfigHandler) GetDefaultWeightsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"weights": h.rm.Config().DefaultWeights,
	})
}

// GetRoomWeightsHandler returns the weights for a specific room
// @Summary Get room heuristic weights
// @Tags Config
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /config/weights/room [get]
func (h *ConfigHandler) GetRoomWeightsHandler(c *gin.Context) {
	roomCode := c.Query("roomCode")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "roomCode is required"})
		return
	}
	rx, ok := h.rm.Get(roomCode)
	if !ok {
		writeError(c, room.ErrRoomNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"roomCode":     roomCode,
		"weights":      rx.RoomConfig.GetWeights(),
		"isCustomized": rx.RoomConfig.IsCustomized(),
	})
}

// UpdateRoomWeightsHandler sets the bot weights of one room
// @Summary Update room heuristic weights
// @Tags Config
// @Accept json
// @Produce json
// @Param request body UpdateRoomWeightsRequest true "Weights"
// @Success 200 {object} map[string]interface{}
// @Router /config/weights/room [post]
func (h *ConfigHandler) UpdateRoomWeightsHandler(c *gin.Context) {
	var req UpdateRoomWeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RoomCode == "" || req.Weights == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "roomCode and weights are required"})
		return
	}
	rx, ok := h.rm.Get(req.RoomCode)
	if !ok {
		writeError(c, room.ErrRoomNotFound)
		return
	}
	if err := rx.RoomConfig.SetWeights(*req.Weights); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_WEIGHTS"})
		return
	}
	log.Printf("room %s: bot weights set to %+v", req.RoomCode, *req.Weights)
	c.JSON(http.StatusOK, gin.H{
		"roomCode":     req.RoomCode,
		"weights":      rx.RoomConfig.GetWeights(),
		"isCustomized": true,
	})
}

// ResetRoomWeightsHandler puts a room back on the default weights
// @Summary Reset room heuristic weights
// @Tags Config
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /config/weights/room [delete]
func (h *ConfigHandler) ResetRoomWeightsHandler(c *gin.Context) {
	rx, ok := h.rm.Get(c.Query("roomCode"))
	if !ok {
		writeError(c, room.ErrRoomNotFound)
		return
	}
	rx.RoomConfig.Reset(h.rm.Config().DefaultWeights)
	c.JSON(http.StatusOK, gin.H{
		"roomCode":     rx.Code,
		"weights":      rx.RoomConfig.GetWeights(),
		"isCustomized": false,
	})
}
