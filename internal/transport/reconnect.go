package transport

import (
	"time"

	"github.com/palemoky/lexio/internal/logger"
)

// nextBackoff 计算下一次退避时间 (最大 30 秒)
func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxReconnectDelay {
		d = maxReconnectDelay
	}
	return d
}

// drainSend drops frames queued for the lost connection. They belong to the old session.
func (c *Client) drainSend() {
	for {
		select {
		case <-c.send:
		default:
			return
		}
	}
}

// tryReconnect 尝试重连
func (c *Client) tryReconnect() {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			c.reconnecting.Store(false)
		}
	}()

	if !c.reconnecting.CompareAndSwap(false, true) {
		return
	}

	// 指数退避重连策略
	backoff := c.backoff
	c.mu.RLock()
	ctx := c.ctx
	c.mu.RUnlock()

	for c.reconnectCount < maxReconnectAttempts {
		c.reconnectCount++
		// 通过回调通知 UI 正在重连
		if c.OnReconnecting != nil {
			c.OnReconnecting(c.reconnectCount, maxReconnectAttempts)
		}
		logger.LogInfo("reconnecting (%d/%d) in %s", c.reconnectCount, maxReconnectAttempts, backoff)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			c.giveUp()
			return
		case <-c.done:
			c.reconnecting.Store(false)
			return
		}
		backoff = nextBackoff(backoff)

		conn, err := c.dial(ctx)
		if err != nil {
			logger.LogError("reconnect failed: %v", err)
			continue
		}

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			_ = conn.Close()
			c.reconnecting.Store(false)
			return
		}
		c.conn = conn
		c.mu.Unlock()

		c.drainSend()
		c.reconnectCount = 0
		c.reconnecting.Store(false)
		c.start(conn)

		logger.LogInfo("reconnected to %s", c.ServerURL)
		if c.OnReconnect != nil {
			c.OnReconnect()
		}
		return
	}

	logger.LogError("reconnect abandoned after %d attempts", maxReconnectAttempts)
	c.giveUp()
}

func (c *Client) giveUp() {
	c.reconnecting.Store(false)
	c.Close()
	if c.OnClose != nil {
		c.OnClose()
	}
}
