package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/retroboardhq/retroboard/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	cm := NewConnectionManager(DefaultConnectionConfig(), clockwork.NewRealClock())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go cm.Start(ctx)

	mux := http.NewServeMux()
	NewWebSocketHandler(cm).RegisterRoutes(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return cm, server
}

func dialBoard(t *testing.T, server *httptest.Server, boardID uuid.UUID, userID string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/board?board_id=" + boardID.String() + "&user_id=" + userID
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) BoardEvent {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event BoardEvent
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func waitForConnections(t *testing.T, cm *ConnectionManager, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		total, _ := cm.ConnectionStats()
		if total == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	total, _ := cm.ConnectionStats()
	t.Fatalf("expected %d connections, have %d", want, total)
}

func TestBroadcastReachesOnlyTargetBoard(t *testing.T) {
	cm, server := newTestGateway(t)

	boardA := uuid.New()
	boardB := uuid.New()

	connA1 := dialBoard(t, server, boardA, "alice")
	connA2 := dialBoard(t, server, boardA, "bob")
	connB := dialBoard(t, server, boardB, "carol")
	waitForConnections(t, cm, 3)

	cm.BroadcastToBoard(boardA, &BoardEvent{
		Type:    events.EventTypeBoardUpdated,
		Payload: json.RawMessage(`{"board":{"title":"renamed"}}`),
	})

	for _, conn := range []*websocket.Conn{connA1, connA2} {
		event := readFrame(t, conn)
		assert.Equal(t, events.EventTypeBoardUpdated, event.Type)
		assert.JSONEq(t, `{"board":{"title":"renamed"}}`, string(event.Payload))
	}

	// The other board's session must stay silent
	require.NoError(t, connB.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := connB.ReadMessage()
	assert.Error(t, err)
}

func TestBroadcastPreservesOrderPerBoard(t *testing.T) {
	cm, server := newTestGateway(t)

	boardID := uuid.New()
	conn := dialBoard(t, server, boardID, "alice")
	waitForConnections(t, cm, 1)

	for i := 0; i < 5; i++ {
		payload, _ := json.Marshal(map[string]int{"seq": i})
		cm.BroadcastToBoard(boardID, &BoardEvent{
			Type:    events.EventTypeCardsUpdated,
			Payload: payload,
		})
	}

	for i := 0; i < 5; i++ {
		event := readFrame(t, conn)
		var payload struct {
			Seq int `json:"seq"`
		}
		require.NoError(t, json.Unmarshal(event.Payload, &payload))
		assert.Equal(t, i, payload.Seq)
	}
}

func TestClosedConnectionUnregisters(t *testing.T) {
	cm, server := newTestGateway(t)

	boardID := uuid.New()
	conn := dialBoard(t, server, boardID, "alice")
	waitForConnections(t, cm, 1)

	conn.Close()
	waitForConnections(t, cm, 0)

	// Broadcasting into an empty registry must not panic
	cm.BroadcastToBoard(boardID, &BoardEvent{Type: events.EventTypeBoardDeleted, Payload: json.RawMessage(`{}`)})
}

func TestBroadcastDuringDisconnectDoesNotPanic(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig(), clockwork.NewRealClock())

	boardID := uuid.New()
	event := &BoardEvent{
		Type:    events.EventTypeCardsUpdated,
		Payload: json.RawMessage(`{"cards":[]}`),
	}

	// Race a session teardown against a broadcast to the same board. A
	// session leaving between the broadcast snapshot and the channel send
	// must be skipped, not written to after its Send channel is closed.
	for i := 0; i < 1000; i++ {
		conn := &Connection{
			ID:      strconv.Itoa(i),
			UserID:  "alice",
			BoardID: boardID,
			Send:    make(chan []byte, 1),
			Manager: cm,
		}
		cm.registerConnection(conn)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			cm.unregisterConnection(conn)
		}()
		go func() {
			defer wg.Done()
			cm.handleBroadcast(BroadcastMessage{BoardID: boardID, Event: event})
		}()
		wg.Wait()
	}

	total, _ := cm.ConnectionStats()
	assert.Equal(t, 0, total)
}

func TestBoardConnectionRequiresBoardID(t *testing.T) {
	_, server := newTestGateway(t)

	resp, err := http.Get(server.URL + "/ws/board")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBoardEventFromEnvelope(t *testing.T) {
	envelope := events.Envelope{
		EventID:   uuid.NewString(),
		EventType: events.EventTypeColumnsUpdated,
		BoardID:   uuid.NewString(),
		Payload:   json.RawMessage(`{"columns":[]}`),
	}

	event, err := boardEventFromEnvelope(envelope)
	require.NoError(t, err)
	assert.Equal(t, events.EventTypeColumnsUpdated, event.Type)

	envelope.EventType = "SOMETHING_ELSE"
	_, err = boardEventFromEnvelope(envelope)
	assert.Error(t, err)
}
