package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/kicad-dblib/internal/model"
	catalogv1 "github.com/you-humble/kicad-dblib/pkg/api/catalog/v1"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestHubShowParts(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	rows := []model.PartRow{{KicadPartNumber: "R001", ComponentType: model.ComponentResistor}}
	filter := model.PartsFilter{ComponentType: model.ComponentResistor}
	require.NoError(t, hub.ShowParts(context.Background(), filter, rows))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var evt catalogv1.Event
	require.NoError(t, json.Unmarshal(data, &evt))
	assert.Equal(t, EventPartsRefreshed, evt.Type)
	assert.Equal(t, "Resistor", evt.ComponentType)
	require.Len(t, evt.Parts, 1)
	assert.Equal(t, "R001", evt.Parts[0].KicadPartNumber)
}

func TestHubWithoutClients(t *testing.T) {
	hub := NewHub()
	assert.NoError(t, hub.ShowParts(context.Background(), model.PartsFilter{}, nil))
	assert.Zero(t, hub.Clients())
}

func TestHubClose(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Close(context.Background()))
	assert.Zero(t, hub.Clients())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestHubDropsLaggingClient(t *testing.T) {
	hub := NewHub()

	// No write pump drains this client, so its queue only fills up.
	lagging := newClient(nil)
	hub.register(lagging)
	for range sendBuffer {
		lagging.send <- []byte("{}")
	}

	start := time.Now()
	require.NoError(t, hub.ShowParts(context.Background(), model.PartsFilter{}, nil))
	assert.Less(t, time.Since(start), writeWait)

	assert.Zero(t, hub.Clients())
	select {
	case <-lagging.quit:
	default:
		t.Fatal("lagging client was not stopped")
	}
}

func TestHubQueuesWithoutWaitingForWrites(t *testing.T) {
	hub := NewHub()

	idle := newClient(nil)
	hub.register(idle)

	for range sendBuffer {
		require.NoError(t, hub.ShowParts(context.Background(), model.PartsFilter{}, nil))
	}

	assert.Equal(t, 1, hub.Clients())
	assert.Len(t, idle.send, sendBuffer)
}
