//go:build !production

package testutil

import (
	"github.com/palemoky/lexio/internal/protocol"
	"github.com/palemoky/lexio/internal/tile"
)

// Snapshot 构造一个 n 人局的最小可渲染快照，每人手里三张牌
func Snapshot(n, current int) *protocol.Snapshot {
	s := &protocol.Snapshot{
		PlayerHands:        make([][]tile.Tile, n),
		PlayerMoney:        make([]int, n),
		CurrentPlayerIndex: current,
		PlayersWhoPassed:   []int{},
		LastPlayedHandInfo: protocol.HandInfo{},
		LastPlayedTiles:    []tile.Tile{},
		GameLog:            []string{},
	}
	for i := range n {
		s.PlayerHands[i] = []tile.Tile{
			tile.New(tile.Cloud, i+1),
			tile.New(tile.Star, i+2),
			tile.New(tile.Sun, i+3),
		}
		s.PlayerMoney[i] = 120
	}
	return s
}
