package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/quizhub/quizhub-backend/internal/middleware"
	"github.com/quizhub/quizhub-backend/internal/service"
	ws "github.com/quizhub/quizhub-backend/internal/websocket"
	"github.com/rs/zerolog"
)

// standingsPushInterval is how often the current board is re-sent.
const standingsPushInterval = 5 * time.Second

// buildUpgrader creates a WebSocket upgrader with origin validation. An
// empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams live leaderboard standings.
type WSHandler struct {
	leaderboard *service.LeaderboardService
	log         zerolog.Logger
	upgrader    websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(leaderboard *service.LeaderboardService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		leaderboard: leaderboard,
		log:         log.With().Str("component", "ws_handler").Logger(),
		upgrader:    buildUpgrader(allowedOrigins),
	}
}

// LeaderboardStream godoc
// WS /ws/v1/leaderboard/stream
// Pushes standings snapshots periodically; the client can switch boards with
// a subscribe message.
func (h *WSHandler) LeaderboardStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Int("user_id", claims.UserID).Logger()
	wsLog.Info().Msg("Leaderboard stream connected")

	// The read loop only forwards client messages; every write goes through
	// the select loop below so the connection has a single writer.
	categoryCh := make(chan string, 4)
	pongCh := make(chan struct{}, 4)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			var msg ws.SubscribeRequest
			if err := ws.ReadJSON(conn, &msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					wsLog.Warn().Err(err).Msg("Unexpected close")
				}
				return
			}
			switch msg.Action {
			case ws.ActionSubscribe:
				categoryCh <- msg.Category
			case ws.ActionPing:
				select {
				case pongCh <- struct{}{}:
				default:
					// Ping flood; the client already has pongs in flight.
				}
			}
		}
	}()

	ticker := time.NewTicker(standingsPushInterval)
	defer ticker.Stop()

	category := ""
	push := func() bool {
		entries, err := h.leaderboard.Top(c.Request.Context(), category)
		if err != nil {
			wsLog.Error().Err(err).Msg("Standings read failed")
			_ = ws.WriteError(conn, "standings unavailable")
			return true
		}
		return ws.WriteTyped(conn, ws.StandingsResponse{
			Event:    ws.EventStandings,
			Category: category,
			Entries:  entries,
		}) == nil
	}

	if !push() {
		return
	}
	for {
		select {
		case <-done:
			wsLog.Debug().Msg("Leaderboard stream closed")
			return
		case category = <-categoryCh:
			if !push() {
				return
			}
		case <-pongCh:
			if ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong}) != nil {
				return
			}
		case <-ticker.C:
			if !push() {
				return
			}
		}
	}
}
