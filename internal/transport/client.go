// Package transport is the websocket connection to the Lexio server.
package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/palemoky/lexio/internal/protocol"
	"github.com/palemoky/lexio/internal/protocol/codec"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	handshakeTimeout = 10 * time.Second
	sendBufferSize   = 256

	// 最大重连次数
	maxReconnectAttempts = 5
	// 重连间隔
	reconnectInterval = 2 * time.Second
	maxReconnectDelay = 30 * time.Second
)

var (
	ErrClosed         = errors.New("connection closed")
	ErrNotConnected   = errors.New("not connected")
	ErrSendBufferFull = errors.New("send buffer full")
	ErrTimeout        = errors.New("receive timeout")
	ErrReconnecting   = errors.New("reconnecting")
)

// Client WebSocket 客户端
type Client struct {
	ServerURL string
	codec     codec.Codec

	conn    *websocket.Conn
	send    chan []byte
	receive chan *protocol.Message
	done    chan struct{}
	ctx     context.Context

	// 回调
	OnClose        func()                     // 关闭回调
	OnReconnecting func(attempt, maxTries int) // 正在重连回调
	OnReconnect    func()                     // 重连成功回调，新连接意味着新会话

	mu             sync.RWMutex
	closed         bool
	reconnecting   atomic.Bool
	reconnectCount int
	backoff        time.Duration
}

// NewClient 创建客户端。c 为 nil 时使用 JSON 编码。
func NewClient(serverURL string, c codec.Codec) *Client {
	if c == nil {
		c = codec.JSON{}
	}
	return &Client{
		ServerURL: serverURL,
		codec:     c,
		send:      make(chan []byte, sendBufferSize),
		receive:   make(chan *protocol.Message, sendBufferSize),
		done:      make(chan struct{}),
		ctx:       context.Background(),
		backoff:   reconnectInterval,
	}
}

// Codec returns the frame codec in use.
func (c *Client) Codec() codec.Codec { return c.codec }

// Connect 连接服务器。ctx 同时约束后续的自动重连。
func (c *Client) Connect(ctx context.Context) error {
	conn, err := c.dial(ctx)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.ServerURL, err)
	}

	c.mu.Lock()
	c.ctx = ctx
	c.conn = conn
	c.mu.Unlock()

	c.start(conn)
	return nil
}

func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout:  handshakeTimeout,
		EnableCompression: false,
	}
	conn, _, err := dialer.DialContext(ctx, c.ServerURL, nil)
	return conn, err
}

// start 启动读写协程
func (c *Client) start(conn *websocket.Conn) {
	connDone := make(chan struct{})
	go c.readPump(conn, connDone)
	go c.writePump(conn, connDone)
}

// SendMessage 发送消息
func (c *Client) SendMessage(msg *protocol.Message) error {
	c.mu.RLock()
	closed, conn := c.closed, c.conn
	c.mu.RUnlock()
	switch {
	case closed:
		return ErrClosed
	case conn == nil:
		return ErrNotConnected
	case c.IsReconnecting():
		// 重连期间的消息会在新连接建立前被丢弃
		return ErrReconnecting
	}

	data, err := c.codec.Encode(msg)
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Receive 接收消息 (阻塞)
func (c *Client) Receive() (*protocol.Message, error) {
	select {
	case msg := <-c.receive:
		return msg, nil
	case <-c.done:
		return nil, ErrClosed
	}
}

// ReceiveWithTimeout 带超时接收消息
func (c *Client) ReceiveWithTimeout(timeout time.Duration) (*protocol.Message, error) {
	select {
	case msg := <-c.receive:
		return msg, nil
	case <-time.After(timeout):
		return nil, ErrTimeout
	case <-c.done:
		return nil, ErrClosed
	}
}

// Close 关闭连接
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.done)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	}
}

// IsConnected 是否已连接
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.closed && c.conn != nil
}

// IsReconnecting 是否正在重连
func (c *Client) IsReconnecting() bool {
	return c.reconnecting.Load()
}

func (c *Client) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}
