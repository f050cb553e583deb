package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/lexio/internal/tile"
)

func TestTruncateLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short line within limit", "P1 passed", 20, "P1 passed"},
		{"exact length", "HelloWorld", 10, "HelloWorld"},
		{"long line truncated", "P2 played a straight", 10, "P2 played…"},
		{"korean line truncated", "P1이(가) 냈습니다", 5, "P1이(…"},
		{"empty line", "", 10, ""},
		{"single char limit", "Hello", 1, "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := TruncateLine(tt.input, tt.maxLen)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTileFace(t *testing.T) {
	t.Parallel()

	assert.Contains(t, TileFace(tile.New(tile.Sun, 12)), "12")
	assert.Contains(t, TileFace(tile.New(tile.Moon, 3)), " 3")
	assert.Contains(t, RenderTiles([]tile.Tile{tile.New(tile.Star, 5), tile.New(tile.Cloud, 9)}), "9")
	assert.Empty(t, RenderTiles(nil))
}

func TestButton(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Button("Play", true), "Play")
	assert.Contains(t, Button("Pass", false), "Pass")
}
