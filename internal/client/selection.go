// Package client holds the state-reception core: role derivation, rendering, selection,
// the play cue and the action gate.
package client

import (
	"slices"

	"github.com/palemoky/lexio/internal/tile"
)

// Selection is the ordered set of hand positions the local player marked to play.
// It is bound to one rendered hand and is discarded whenever that hand is rebuilt.
type Selection struct {
	hand      []tile.Tile
	positions []int
}

// NewSelection creates an empty selection with no hand bound.
func NewSelection() *Selection {
	return &Selection{}
}

// Reset binds the selection to a freshly rendered hand and drops every mark.
func (s *Selection) Reset(hand []tile.Tile) {
	s.hand = slices.Clone(hand)
	s.positions = s.positions[:0]
}

// Toggle marks or unmarks the tile at pos. It reports whether pos is now selected;
// positions outside the bound hand are ignored.
func (s *Selection) Toggle(pos int) bool {
	if pos < 0 || pos >= len(s.hand) {
		return false
	}
	if i := slices.Index(s.positions, pos); i >= 0 {
		s.positions = slices.Delete(s.positions, i, i+1)
		return false
	}
	s.positions = append(s.positions, pos)
	return true
}

// Selected reports whether pos is marked.
func (s *Selection) Selected(pos int) bool {
	return slices.Contains(s.positions, pos)
}

// Positions returns the marked positions in selection order.
func (s *Selection) Positions() []int {
	return slices.Clone(s.positions)
}

// Tiles maps the marks back to tile values in selection order.
func (s *Selection) Tiles() []tile.Tile {
	out := make([]tile.Tile, 0, len(s.positions))
	for _, pos := range s.positions {
		out = append(out, s.hand[pos])
	}
	return out
}

// Len returns the number of marked tiles.
func (s *Selection) Len() int { return len(s.positions) }

// Empty reports whether nothing is marked.
func (s *Selection) Empty() bool { return len(s.positions) == 0 }

// Hand returns the bound hand in its current local order.
func (s *Selection) Hand() []tile.Tile {
	return slices.Clone(s.hand)
}

// Move swaps the tile at pos with its neighbour delta steps away and carries any marks
// along. It returns the tile's new position, or pos when the move falls outside the hand.
// The order is local; the next Reset restores the server's order.
func (s *Selection) Move(pos, delta int) int {
	to := pos + delta
	if pos < 0 || pos >= len(s.hand) || to < 0 || to >= len(s.hand) || delta == 0 {
		return pos
	}
	s.hand[pos], s.hand[to] = s.hand[to], s.hand[pos]
	for i, p := range s.positions {
		switch p {
		case pos:
			s.positions[i] = to
		case to:
			s.positions[i] = pos
		}
	}
	return to
}

// Clear drops every mark but keeps the bound hand.
func (s *Selection) Clear() {
	s.positions = s.positions[:0]
}
