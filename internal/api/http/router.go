package http

import (
	"github.com/gin-gonic/gin"

	"filler-game/internal/api/ws"
	"filler-game/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/join-room", JoinRoomHandler(rm))
	r.POST("/play", PlayHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/state", StateHandler(rm))
	r.GET("/possible-moves", PossibleMovesHandler(rm))
	r.POST("/move", MoveHandler(rm))
	r.POST("/move-bot", MoveBotHandler(rm))

	// --- CONFIG ENDPOINTS ---
	ch := NewConfigHandler(rm)
	r.GET("/config/weights/default", ch.GetDefaultWeightsHandler)
	r.GET("/config/weights/room", ch.GetRoomWeightsHandler)
	r.POST("/config/weights/room", ch.UpdateRoomWeightsHandler)
	r.DELETE("/config/weights/room", ch.ResetRoomWeightsHandler)

	return r
}
