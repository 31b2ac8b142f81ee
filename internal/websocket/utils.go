package websocket

import (
	"time"

	"github.com/gorilla/websocket"
)

// Deadlines for the leaderboard stream. Reads are generous because clients
// may idle between subscribes; a write stalling this long means a dead peer.
const (
	writeDeadline = 10 * time.Second
	readDeadline  = 5 * time.Minute
)

// WriteTyped sends a typed event payload. The connection supports a single
// concurrent writer, so stream handlers funnel all writes through one
// goroutine.
func WriteTyped(conn *websocket.Conn, v interface{}) error {
	conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteJSON(v)
}

// WriteError sends a typed ErrorResponse.
func WriteError(conn *websocket.Conn, errMsg string) error {
	return WriteTyped(conn, ErrorResponse{Event: EventError, Error: errMsg})
}

// ReadJSON reads and decodes the next client message.
func ReadJSON(conn *websocket.Conn, v interface{}) error {
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	return conn.ReadJSON(v)
}
