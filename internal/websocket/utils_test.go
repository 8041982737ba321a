package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

// The progress stream writes pong replies and relay events from different
// goroutines. The Writer must serialize them; an unguarded connection fails
// this test under the race detector and can panic with gorilla's
// "concurrent write to websocket connection".
func TestWriterConcurrentWrites(t *testing.T) {
	const writers = 4
	const perWriter = 25

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		writer := NewWriter(conn)
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perWriter; j++ {
					if err := writer.WriteTyped(PongResponse{Event: EventPong}); err != nil {
						t.Errorf("write: %v", err)
						return
					}
				}
			}()
		}
		wg.Wait()
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	for received := 0; received < writers*perWriter; received++ {
		var resp PongResponse
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatalf("read after %d messages: %v", received, err)
		}
		if resp.Event != EventPong {
			t.Fatalf("event = %q, want %q", resp.Event, EventPong)
		}
	}
}

func TestWriteErrorPayload(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		NewWriter(conn).WriteError("unknown action: nope")
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	var resp ErrorResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.Event != EventError || resp.Error != "unknown action: nope" {
		t.Fatalf("got %+v", resp)
	}
}
