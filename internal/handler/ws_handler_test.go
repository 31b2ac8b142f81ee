package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/quizhub/quizhub-backend/internal/middleware"
	"github.com/quizhub/quizhub-backend/internal/repository"
	"github.com/quizhub/quizhub-backend/internal/service"
	ws "github.com/quizhub/quizhub-backend/internal/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// newStreamServer wires LeaderboardStream behind a route that injects claims
// directly. Redis points at a closed port, so every standings push degrades
// to an error frame; the tests only care about frame integrity.
func newStreamServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	leaderboard := service.NewLeaderboardService(rdb, repository.NewUserRepository(nil), 10, zerolog.Nop())
	h := NewWSHandler(leaderboard, zerolog.Nop(), nil)

	r := gin.New()
	r.GET("/stream", func(c *gin.Context) {
		c.Set(middleware.ContextKeyClaims, &service.Claims{UserID: 1})
		h.LeaderboardStream(c)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// A client interleaving subscribes with pings must get well-formed frames
// back, one writer's worth at a time: standings or error pushes for the
// subscribes, pongs for the pings.
func TestLeaderboardStreamInterleavedPings(t *testing.T) {
	srv := newStreamServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))

	readFrame := func() ws.Event {
		t.Helper()
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var frame struct {
			Event ws.Event `json:"event"`
		}
		if err := json.Unmarshal(data, &frame); err != nil {
			t.Fatalf("malformed frame %q: %v", data, err)
		}
		switch frame.Event {
		case ws.EventStandings, ws.EventError, ws.EventPong:
		default:
			t.Fatalf("unknown event in frame %q", data)
		}
		return frame.Event
	}

	// The connection opens with one push.
	readFrame()

	pongs := 0
	for i := 0; i < 20; i++ {
		if err := conn.WriteJSON(ws.SubscribeRequest{Action: ws.ActionSubscribe, Category: "geography"}); err != nil {
			t.Fatalf("write subscribe: %v", err)
		}
		if err := conn.WriteJSON(ws.SubscribeRequest{Action: ws.ActionPing}); err != nil {
			t.Fatalf("write ping: %v", err)
		}
		for j := 0; j < 2; j++ {
			if readFrame() == ws.EventPong {
				pongs++
			}
		}
	}
	if pongs < 15 {
		t.Fatalf("got %d pong frames, want one per ping", pongs)
	}
}
