package wsbridge

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/justyntemme/genart-go/pkg/framework/debug"
	"github.com/justyntemme/genart-go/pkg/framework/message"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, err := websocket.Dial(wsURL, "", srv.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) message.Message {
	t.Helper()
	_ = conn.SetDeadline(time.Now().Add(2 * time.Second))
	var msg message.Message
	require.NoError(t, json.NewDecoder(conn).Decode(&msg))
	return msg
}

func setup(t *testing.T) (*message.Bus, *Bridge, *httptest.Server) {
	t.Helper()
	bus := message.NewBus("art", debug.Discard())
	bridge := New(bus, debug.Discard())
	bus.SetParent(bridge)
	srv := httptest.NewServer(bridge.Handler())
	t.Cleanup(srv.Close)
	return bus, bridge, srv
}

func waitPeers(t *testing.T, b *Bridge, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return b.Peers() == n }, 2*time.Second, 5*time.Millisecond)
}

func TestBroadcastReachesPeers(t *testing.T) {
	bus, bridge, srv := setup(t)
	first, second := dial(t, srv), dial(t, srv)
	waitPeers(t, bridge, 2)

	bus.Publish(message.Message{Type: message.TypeStateChange, State: "play"}, message.ScopeParent)

	for _, conn := range []*websocket.Conn{first, second} {
		msg := readMessage(t, conn)
		require.Equal(t, message.TypeStateChange, msg.Type)
		require.Equal(t, "art", msg.APIID)
		require.Equal(t, "play", msg.State)
	}
}

func TestPeerFramesAreDispatched(t *testing.T) {
	bus, bridge, srv := setup(t)
	got := make(chan message.Message, 1)
	bus.Handle(message.TypeSetParamValue, func(_ context.Context, msg message.Message) error {
		got <- msg
		return nil
	})
	conn := dial(t, srv)
	waitPeers(t, bridge, 1)

	require.NoError(t, websocket.Message.Send(conn, `not json`))
	require.NoError(t, websocket.Message.Send(conn, `{"type":"genart:set-param-value","apiID":"elsewhere","paramID":"a"}`))
	require.NoError(t, websocket.Message.Send(conn, `{"type":"genart:set-param-value","apiID":"art","paramID":"size","value":3}`))

	select {
	case msg := <-got:
		require.Equal(t, "size", msg.ParamID)
		require.Equal(t, 3.0, msg.Value)
	case <-time.After(2 * time.Second):
		t.Fatal("frame was not dispatched")
	}
	require.Empty(t, got)
}

func TestClosedPeerIsDropped(t *testing.T) {
	bus, bridge, srv := setup(t)
	conn := dial(t, srv)
	waitPeers(t, bridge, 1)

	require.NoError(t, conn.Close())
	waitPeers(t, bridge, 0)
	bus.Publish(message.Message{Type: message.TypeStateChange, State: "stop"}, message.ScopeAll)
	require.NoError(t, bridge.Post(message.Message{Type: message.TypeInfo}))
}
