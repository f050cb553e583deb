//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/lexio/internal/tile"
)

// MockSender 实现 client.Sender 的 mock
type MockSender struct {
	mock.Mock
}

func (m *MockSender) RequestStartGame(numPlayers int) error {
	args := m.Called(numPlayers)
	return args.Error(0)
}

func (m *MockSender) RequestNewGame() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSender) PlayHand(tiles []tile.Tile) error {
	args := m.Called(tiles)
	return args.Error(0)
}

func (m *MockSender) PassTurn() error {
	args := m.Called()
	return args.Error(0)
}

// RecordingSender 记录所有发出动作的简单 Sender（不使用 testify）
type RecordingSender struct {
	Starts   []int
	NewGames int
	Plays    [][]tile.Tile
	Passes   int
	Err      error
}

func (r *RecordingSender) RequestStartGame(n int) error {
	r.Starts = append(r.Starts, n)
	return r.Err
}

func (r *RecordingSender) RequestNewGame() error {
	r.NewGames++
	return r.Err
}

func (r *RecordingSender) PlayHand(tiles []tile.Tile) error {
	r.Plays = append(r.Plays, append([]tile.Tile(nil), tiles...))
	return r.Err
}

func (r *RecordingSender) PassTurn() error {
	r.Passes++
	return r.Err
}

// Total 返回发出动作的总数
func (r *RecordingSender) Total() int {
	return len(r.Starts) + r.NewGames + len(r.Plays) + r.Passes
}
