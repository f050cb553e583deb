package transport

import (
	"github.com/palemoky/lexio/internal/protocol"
	"github.com/palemoky/lexio/internal/tile"
)

// --- 便捷方法 ---

// RequestStartGame 请求开局
func (c *Client) RequestStartGame(numPlayers int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgRequestStartGame, protocol.StartGamePayload{
		NumPlayers: numPlayers,
	}))
}

// RequestNewGame 再来一局
func (c *Client) RequestNewGame() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgRequestNewGame, nil))
}

// PlayHand 出牌，顺序即选择顺序
func (c *Client) PlayHand(tiles []tile.Tile) error {
	if tiles == nil {
		tiles = []tile.Tile{}
	}
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPlayHand, protocol.PlayHandPayload(tiles)))
}

// PassTurn 不出
func (c *Client) PassTurn() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPassTurn, nil))
}
