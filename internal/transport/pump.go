package transport

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/palemoky/lexio/internal/logger"
)

// readPump 从服务器读取消息
func (c *Client) readPump(conn *websocket.Conn, connDone chan struct{}) {
	defer c.handleReadExit(conn, connDone)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.handleReadError(err)
			return
		}

		msg, err := c.codec.Decode(data)
		if err != nil {
			logger.LogError("消息解析错误: %v", err)
			continue
		}

		// Delivery blocks rather than drops so snapshots stay in order.
		select {
		case c.receive <- msg:
		case <-c.done:
			return
		}
	}
}

func (c *Client) handleReadExit(conn *websocket.Conn, connDone chan struct{}) {
	if r := recover(); r != nil {
		logger.LogPanic(r)
	}
	close(connDone)
	_ = conn.Close()

	// 非主动关闭时尝试重连
	if !c.isClosed() && !c.reconnecting.Load() {
		go c.tryReconnect()
		return
	}
	if c.isClosed() && c.OnClose != nil {
		c.OnClose()
	}
}

func (c *Client) handleReadError(err error) {
	if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		logger.LogError("connection lost: %v", err)
	}
}

// writePump 向服务器写入消息
func (c *Client) writePump(conn *websocket.Conn, connDone chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		ticker.Stop()
		_ = conn.Close()
	}()

	frameType := c.codec.FrameType()
	for {
		select {
		case message := <-c.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(frameType, message); err != nil {
				logger.LogError("write failed: %v", err)
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-connDone:
			return

		case <-c.done:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
