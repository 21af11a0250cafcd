package appstatus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wsPair dials a real websocket against an httptest server and hands back
// both ends.
func wsPair(t *testing.T) (server *websocket.Conn, client *websocket.Conn) {
	t.Helper()

	up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	connCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		connCh <- conn
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return <-connCh, client
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	serverConn, _ := wsPair(t)

	id := hub.Register(serverConn)
	assert.Equal(t, 1, hub.SubscriberCount())

	hub.Unregister(id)
	assert.Equal(t, 0, hub.SubscriberCount())
}

func TestHubConcurrentBroadcasts(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	serverConn, client := wsPair(t)
	hub.Register(serverConn)

	const broadcasts = 20

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < broadcasts; i++ {
			var ev StatusEvent
			if err := client.ReadJSON(&ev); err != nil {
				return
			}
			assert.Equal(t, "app_status", ev.Event)
		}
	}()

	// Concurrent writers to the same connection must be serialized by the
	// hub, not by the caller.
	var wg sync.WaitGroup
	for i := 0; i < broadcasts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Broadcast(StatusEvent{Event: "app_status", Status: "LIVE"})
		}()
	}
	wg.Wait()
	<-done

	assert.Equal(t, 1, hub.SubscriberCount())
}

func TestHubSendAfterUnregisterIsNoop(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	serverConn, _ := wsPair(t)

	id := hub.Register(serverConn)
	hub.Unregister(id)

	assert.NoError(t, hub.Send(id, StatusEvent{Event: "app_status", Status: "LIVE"}))
}
