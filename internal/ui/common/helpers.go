package common

import (
	"fmt"
	"strings"

	"github.com/palemoky/lexio/internal/tile"
)

// TruncateLine truncates a line to the specified maximum number of runes.
func TruncateLine(line string, maxLen int) string {
	runes := []rune(line)
	if len(runes) > maxLen {
		return string(runes[:maxLen-1]) + "…"
	}
	return line
}

// TileFace is the plain two-part face of a tile, such as "☀ 12".
func TileFace(t tile.Tile) string {
	return fmt.Sprintf("%s %2d", t.Suit.Symbol(), t.Rank)
}

// RenderTiles renders tiles left to right with their suit colours.
func RenderTiles(ts []tile.Tile) string {
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		parts = append(parts, SuitStyle(t.Suit).Render(TileFace(t)))
	}
	return strings.Join(parts, " ")
}

// FormatMoney renders a balance with the won sign.
func FormatMoney(n int) string {
	return fmt.Sprintf("%d ₩", n)
}
