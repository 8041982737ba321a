package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Writer serializes writes to one connection. gorilla/websocket supports at
// most one concurrent writer, and the progress stream writes from both the
// relay loop and the ping reader.
type Writer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWriter wraps conn so it can be written from multiple goroutines.
func NewWriter(conn *websocket.Conn) *Writer {
	return &Writer{conn: conn}
}

// WriteTyped sends a strongly-typed response payload over the WebSocket.
func (w *Writer) WriteTyped(v interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.conn.WriteJSON(v)
}

// WriteError sends a typed ErrorResponse over the WebSocket.
func (w *Writer) WriteError(errMsg string) error {
	return w.WriteTyped(ErrorResponse{
		Event: EventError,
		Error: errMsg,
	})
}

// ReadJSON reads and decodes a message into the provided structure.
// It sets a read deadline.
func ReadJSON(conn *websocket.Conn, v interface{}) error {
	conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
	return conn.ReadJSON(v)
}
