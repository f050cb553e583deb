// Package tile defines the Lexio tile model shared by the protocol and the client core.
package tile

import (
	"fmt"
	"strconv"
)

// Suit is the tile category as sent by the server.
type Suit string

const (
	Cloud Suit = "cloud"
	Star  Suit = "star"
	Moon  Suit = "moon"
	Sun   Suit = "sun"
)

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Cloud: "☁",
	Star:  "★",
	Moon:  "☾",
	Sun:   "☀",
}

// Known reports whether s is one of the four deck suits.
func (s Suit) Known() bool {
	_, ok := suitSymbols[s]
	return ok
}

// Symbol returns a single-glyph label, falling back to the raw suit name.
func (s Suit) Symbol() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return string(s)
}

func (s Suit) String() string { return string(s) }

const (
	MinRank = 1
	MaxRank = 15
)

// Tile is a single Lexio tile. Two tiles with equal suit and rank are interchangeable.
type Tile struct {
	Suit Suit `json:"suit"`
	Rank int  `json:"rank"`
}

// New creates a tile.
func New(suit Suit, rank int) Tile {
	return Tile{Suit: suit, Rank: rank}
}

// AssetKey returns the static resource key "{suit}_{rank}".
func (t Tile) AssetKey() string {
	return string(t.Suit) + "_" + strconv.Itoa(t.Rank)
}

// Label returns a compact label such as "☁3".
func (t Tile) Label() string {
	return t.Suit.Symbol() + strconv.Itoa(t.Rank)
}

func (t Tile) String() string {
	return fmt.Sprintf("%s %d", t.Suit, t.Rank)
}

// Valid reports whether the tile belongs to the standard deck.
func (t Tile) Valid() bool {
	return t.Suit.Known() && t.Rank >= MinRank && t.Rank <= MaxRank
}
