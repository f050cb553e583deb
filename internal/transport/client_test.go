package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/lexio/internal/client"
	"github.com/palemoky/lexio/internal/protocol"
	"github.com/palemoky/lexio/internal/protocol/codec"
	"github.com/palemoky/lexio/internal/tile"
)

var _ client.Sender = (*Client)(nil)

var upgrader = websocket.Upgrader{}

func echoHandler(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer c.Close()
	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		// simple echo
		_ = c.WriteMessage(mt, message)
	}
}

func wsURL(s *httptest.Server) string {
	return "ws" + strings.TrimPrefix(s.URL, "http")
}

func TestClient_ConnectAndEcho(t *testing.T) {
	t.Parallel()

	for _, cd := range []codec.Codec{codec.JSON{}, codec.Proto{}} {
		t.Run(cd.Name(), func(t *testing.T) {
			t.Parallel()

			s := httptest.NewServer(http.HandlerFunc(echoHandler))
			defer s.Close()

			c := NewClient(wsURL(s), cd)
			require.NoError(t, c.Connect(context.Background()))
			defer c.Close()
			assert.True(t, c.IsConnected())

			hand := []tile.Tile{tile.New(tile.Sun, 15), tile.New(tile.Moon, 1)}
			require.NoError(t, c.PlayHand(hand))

			got, err := c.ReceiveWithTimeout(time.Second)
			require.NoError(t, err)
			assert.Equal(t, protocol.MsgPlayHand, got.Type)

			payload, err := protocol.ParsePayload[protocol.PlayHandPayload](got)
			require.NoError(t, err)
			assert.Equal(t, hand, []tile.Tile(*payload))

			require.NoError(t, c.RequestStartGame(4))
			got, err = c.ReceiveWithTimeout(time.Second)
			require.NoError(t, err)
			start, err := protocol.ParsePayload[protocol.StartGamePayload](got)
			require.NoError(t, err)
			assert.Equal(t, 4, start.NumPlayers)

			require.NoError(t, c.PassTurn())
			got, err = c.ReceiveWithTimeout(time.Second)
			require.NoError(t, err)
			assert.Equal(t, protocol.MsgPassTurn, got.Type)
		})
	}
}

func TestClient_ConnectFails(t *testing.T) {
	t.Parallel()

	c := NewClient("ws://127.0.0.1:1/ws", nil)
	assert.Error(t, c.Connect(context.Background()))
	assert.False(t, c.IsConnected())
}

func TestClient_SendAfterClose(t *testing.T) {
	t.Parallel()

	s := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer s.Close()

	c := NewClient(wsURL(s), nil)
	require.NoError(t, c.Connect(context.Background()))
	c.Close()
	c.Close()

	assert.False(t, c.IsConnected())
	assert.ErrorIs(t, c.RequestNewGame(), ErrClosed)
	_, err := c.Receive()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestClient_ReceiveTimeout(t *testing.T) {
	t.Parallel()

	s := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer s.Close()

	c := NewClient(wsURL(s), nil)
	require.NoError(t, c.Connect(context.Background()))
	defer c.Close()

	_, err := c.ReceiveWithTimeout(20 * time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_ReconnectsAfterDrop(t *testing.T) {
	t.Parallel()

	var conns atomic.Int32
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if conns.Add(1) == 1 {
			c, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			_ = c.Close() // drop the first connection without a close frame
			return
		}
		echoHandler(w, r)
	}))
	defer s.Close()

	reconnected := make(chan struct{}, 1)
	c := NewClient(wsURL(s), nil)
	c.backoff = 10 * time.Millisecond
	c.OnReconnect = func() { reconnected <- struct{}{} }

	require.NoError(t, c.Connect(context.Background()))
	defer c.Close()

	select {
	case <-reconnected:
	case <-time.After(2 * time.Second):
		t.Fatal("client did not reconnect")
	}

	require.NoError(t, c.PassTurn())
	got, err := c.ReceiveWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, protocol.MsgPassTurn, got.Type)
	assert.Equal(t, int32(2), conns.Load())
}

func TestNextBackoff(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4*time.Second, nextBackoff(2*time.Second))
	assert.Equal(t, maxReconnectDelay, nextBackoff(20*time.Second))
}

func TestClient_SendBeforeConnect(t *testing.T) {
	t.Parallel()

	c := NewClient("ws://127.0.0.1:1/ws", nil)
	assert.ErrorIs(t, c.PassTurn(), ErrNotConnected)
}

func TestClient_SendWhileReconnecting(t *testing.T) {
	t.Parallel()

	s := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer s.Close()

	c := NewClient(wsURL(s), nil)
	require.NoError(t, c.Connect(context.Background()))
	defer c.Close()

	c.reconnecting.Store(true)
	assert.True(t, c.IsReconnecting())
	assert.ErrorIs(t, c.PlayHand([]tile.Tile{tile.New(tile.Moon, 4)}), ErrReconnecting)

	c.reconnecting.Store(false)
	require.NoError(t, c.PassTurn())
	got, err := c.ReceiveWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, protocol.MsgPassTurn, got.Type)
}

func TestClient_GiveUpCallsOnClose(t *testing.T) {
	t.Parallel()

	var conns atomic.Int32
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if conns.Add(1) > 1 {
			http.Error(w, "gone", http.StatusServiceUnavailable)
			return
		}
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = c.Close()
	}))
	defer s.Close()

	closed := make(chan struct{}, 2)
	c := NewClient(wsURL(s), nil)
	c.backoff = time.Millisecond
	c.OnClose = func() { closed <- struct{}{} }

	require.NoError(t, c.Connect(context.Background()))

	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("OnClose not called after giving up")
	}
	assert.False(t, c.IsConnected())
	assert.False(t, c.IsReconnecting())
	assert.Equal(t, int32(1+maxReconnectAttempts), conns.Load())
}
