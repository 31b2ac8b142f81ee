package websocket

import "github.com/quizhub/quizhub-backend/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	// ActionSubscribe switches the stream to a category board ("" = global).
	ActionSubscribe Action = "subscribe"
	ActionPing      Action = "ping"
)

// SubscribeRequest selects which board the client wants pushed. Category is
// ignored for non-subscribe actions.
type SubscribeRequest struct {
	Action   Action `json:"action"`
	Category string `json:"category"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventStandings Event = "standings"
	EventError     Event = "error"
	EventPong      Event = "pong"
)

// StandingsResponse is a leaderboard snapshot pushed to the client.
type StandingsResponse struct {
	Event    Event                    `json:"event"`
	Category string                   `json:"category"`
	Entries  []model.LeaderboardEntry `json:"entries"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
