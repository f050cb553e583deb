package client

import (
	"fmt"

	"github.com/palemoky/lexio/internal/apperrors"
	"github.com/palemoky/lexio/internal/tile"
)

// Sender emits outbound actions. transport.Client implements it.
type Sender interface {
	RequestStartGame(numPlayers int) error
	RequestNewGame() error
	PlayHand(tiles []tile.Tile) error
	PassTurn() error
}

// AllowedPlayerCounts are the table sizes the server deals for.
var AllowedPlayerCounts = []int{3, 4, 5}

// Gate validates local intent before it reaches the transport.
type Gate struct {
	sender Sender
}

// NewGate creates an action gate over sender.
func NewGate(sender Sender) *Gate {
	return &Gate{sender: sender}
}

// SubmitPlay emits one play_hand carrying the selected tiles in selection order, then clears
// the selection. Legality is left to the server.
func (g *Gate) SubmitPlay(sel *Selection) error {
	if sel == nil || sel.Empty() {
		return apperrors.ErrNothingSelected
	}
	if err := g.sender.PlayHand(sel.Tiles()); err != nil {
		return fmt.Errorf("send play_hand: %w", err)
	}
	sel.Clear()
	return nil
}

// SubmitPass emits pass_turn. The enabled state of the Pass affordance is the only gate.
func (g *Gate) SubmitPass() error {
	if err := g.sender.PassTurn(); err != nil {
		return fmt.Errorf("send pass_turn: %w", err)
	}
	return nil
}

// StartGame asks the server to open a table for numPlayers seats.
func (g *Gate) StartGame(numPlayers int) error {
	valid := false
	for _, n := range AllowedPlayerCounts {
		if n == numPlayers {
			valid = true
			break
		}
	}
	if !valid {
		return apperrors.ErrInvalidNumPlayers
	}
	if err := g.sender.RequestStartGame(numPlayers); err != nil {
		return fmt.Errorf("send request_start_game: %w", err)
	}
	return nil
}

// PlayAgain asks the server for a fresh game after game over.
func (g *Gate) PlayAgain() error {
	if err := g.sender.RequestNewGame(); err != nil {
		return fmt.Errorf("send request_new_game: %w", err)
	}
	return nil
}
