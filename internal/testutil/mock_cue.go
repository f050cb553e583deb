//go:build !production

package testutil

import "github.com/stretchr/testify/mock"

// MockCuePlayer 实现 client.CuePlayer 的 mock
type MockCuePlayer struct {
	mock.Mock
}

func (m *MockCuePlayer) Replay(name string) error {
	args := m.Called(name)
	return args.Error(0)
}
