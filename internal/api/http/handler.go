package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"filler-game/internal/game"
	"filler-game/internal/room"
	"filler-game/internal/shared"
)

// @Summary Create new room
// @Description Create a new room with a single human player seated as party 1
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "playerName required"})
			return
		}
		rx, p, err := rm.CreateRoom(c.Request.Context(), req.PlayerName)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"roomCode": rx.Code, "player": p, "room": rx.View()})
	}
}

// @Summary Join a room
// @Description Seat a second human player as party 2
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.JoinRoomRequest true "Room and player info"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} http.ErrorResponse
// @Router /join-room [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "roomCode required"})
			return
		}
		rx, p, err := rm.Join(c.Request.Context(), req.RoomCode, req.PlayerName)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"player": p, "room": rx.View()})
	}
}

// @Summary Add a bot to a room
// @Description Seat the bot in the free seat and start the game
// @Tags Room
// @Accept json
// @Produce json
// @Param request body PlayRequest true "Room info"
// @Success 200 {object} map[string]interface{}
// @Router /play [post]
func PlayHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlayRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "roomCode required"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			writeError(c, room.ErrRoomNotFound)
			return
		}
		bot, err := rm.AddBot(c.Request.Context(), rx)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bot": bot, "room": rx.View()})
	}
}

// @Summary Get room state
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} shared.StateMessage
// @Router /state [get]
func StateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			writeError(c, room.ErrRoomNotFound)
			return
		}
		c.JSON(http.StatusOK, shared.NewStateMessage(rx.Code, rx.State()))
	}
}

// @Summary Get possible colors for player
// @Description Returns the colors the player's party may pick right now
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Param playerId query string true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Router /possible-moves [get]
func PossibleMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			writeError(c, room.ErrRoomNotFound)
			return
		}
		playerID := c.Query("playerId")
		colors, err := rm.LegalColors(rx, playerID)
		if err != nil {
			writeError(c, err)
			return
		}
		p, _ := rx.Player(playerID)
		s := rx.State()
		gains := make(map[game.Color]int, len(colors))
		for _, col := range colors {
			gains[col] = game.Gain(s, p.Party, col)
		}
		c.JSON(http.StatusOK, gin.H{"colors": colors, "gains": gains})
	}
}

// @Summary Player makes a move
// @Description Submit a color for the player's party
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} http.ErrorResponse
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload", Code: shared.CodeMalformedMessage})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			writeError(c, room.ErrRoomNotFound)
			return
		}
		s, err := rm.ApplyMove(c.Request.Context(), rx, req.PlayerID, req.Color)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"state":  shared.NewStateMessage(rx.Code, s),
			"scores": game.Scores(s),
		})
	}
}

// @Summary Let bot make its move
// @Description Bot picks a color by minimax search over the room's weights
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveBotRequest true "Bot move"
// @Success 200 {object} map[string]interface{}
// @Router /move-bot [post]
func MoveBotHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveBotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payload", Code: shared.CodeMalformedMessage})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			writeError(c, room.ErrRoomNotFound)
			return
		}
		color, err := rm.BotMove(c.Request.Context(), rx, req.BotID)
		if err != nil {
			writeError(c, err)
			return
		}
		s := rx.State()
		c.JSON(http.StatusOK, gin.H{
			"color":  color,
			"state":  shared.NewStateMessage(rx.Code, s),
			"scores": game.Scores(s),
		})
	}
}

func writeError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.Is(err, room.ErrRoomFull):
		status = http.StatusConflict
	case errors.Is(err, room.ErrNotAPlayer):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrInvalidConfiguration):
		status = http.StatusInternalServerError
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: room.ErrorCode(err)})
}
