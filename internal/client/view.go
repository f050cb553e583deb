package client

import (
	"fmt"
	"slices"

	"github.com/palemoky/lexio/internal/protocol"
	"github.com/palemoky/lexio/internal/tile"
)

// StatusCell is the per-row turn status in the status table.
type StatusCell string

const (
	StatusInProgress StatusCell = "in progress"
	StatusPass       StatusCell = "pass"
	StatusWaiting    StatusCell = ""
)

// HandTile is one selectable tile of the local hand.
type HandTile struct {
	Position int
	Tile     tile.Tile
	AssetKey string
	Selected bool
}

// Banner is the turn indicator.
type Banner struct {
	MyTurn bool
	Player int // 1-based slot of the acting player
	Text   string
}

// StatusRow is one seat in the status table.
type StatusRow struct {
	Slot       int
	Name       string
	Self       bool
	Cards      int
	Money      int
	Status     StatusCell
	Acting     bool
	ActingSelf bool
}

// ViewState is the complete rendered output for one snapshot.
type ViewState struct {
	Hand        []HandTile
	Board       []tile.Tile
	BoardCombo  string
	Banner      Banner
	Status      []StatusRow
	Log         []string
	ScrollToEnd bool
	Role        Role
	CanPlay     bool
	CanPass     bool
}

// SelectedCount returns how many hand tiles are marked.
func (v ViewState) SelectedCount() int {
	n := 0
	for _, h := range v.Hand {
		if h.Selected {
			n++
		}
	}
	return n
}

// PlayerName is the status-table label of a 0-based slot.
func PlayerName(slot, myPlayerNum int) string {
	name := fmt.Sprintf("P%d", slot+1)
	if slot == myPlayerNum {
		name += " (you)"
	}
	return name
}

// Render rebuilds the whole view from s. It resets sel against the new hand first, so no
// selection survives a render. The result depends only on s and myPlayerNum.
func Render(s *protocol.Snapshot, myPlayerNum int, sel *Selection) (ViewState, error) {
	role, err := DeriveRole(s, myPlayerNum)
	if err != nil {
		return ViewState{}, err
	}

	myHand := s.PlayerHands[myPlayerNum]
	if sel != nil {
		sel.Reset(myHand)
	}

	view := ViewState{
		Hand:        renderHand(myHand),
		Board:       slices.Clone(s.LastPlayedTiles),
		BoardCombo:  s.LastPlayedHandInfo.ComboName(),
		Banner:      renderBanner(s.CurrentPlayerIndex, myPlayerNum),
		Status:      renderStatus(s, myPlayerNum),
		Log:         slices.Clone(s.GameLog),
		ScrollToEnd: true,
		Role:        role,
		CanPlay:     role.CanPlay(),
		CanPass:     role.CanPass(),
	}
	if view.Board == nil {
		view.Board = []tile.Tile{}
	}
	if view.Log == nil {
		view.Log = []string{}
	}
	return view, nil
}

// WithSelection marks the hand tiles selected in sel and applies the local tile order
// when sel is bound to this hand.
func (v ViewState) WithSelection(sel *Selection) ViewState {
	hand := slices.Clone(v.Hand)
	order := sel.Hand()
	for i := range hand {
		if len(order) == len(hand) {
			hand[i].Tile = order[hand[i].Position]
			hand[i].AssetKey = hand[i].Tile.AssetKey()
		}
		hand[i].Selected = sel.Selected(hand[i].Position)
	}
	v.Hand = hand
	return v
}

func renderHand(hand []tile.Tile) []HandTile {
	out := make([]HandTile, 0, len(hand))
	for i, t := range hand {
		out = append(out, HandTile{Position: i, Tile: t, AssetKey: t.AssetKey()})
	}
	return out
}

func renderBanner(current, myPlayerNum int) Banner {
	if current == myPlayerNum {
		return Banner{MyTurn: true, Player: current + 1, Text: "Your turn!"}
	}
	return Banner{Player: current + 1, Text: fmt.Sprintf("Player %d's turn.", current+1)}
}

func renderStatus(s *protocol.Snapshot, myPlayerNum int) []StatusRow {
	rows := make([]StatusRow, 0, s.PlayerCount())
	for i, hand := range s.PlayerHands {
		row := StatusRow{
			Slot:  i,
			Name:  PlayerName(i, myPlayerNum),
			Self:  i == myPlayerNum,
			Cards: len(hand),
			Money: s.Money(i),
		}
		switch {
		case i == s.CurrentPlayerIndex:
			row.Status = StatusInProgress
			row.Acting = true
			row.ActingSelf = row.Self
		case s.Passed(i):
			row.Status = StatusPass
		default:
			row.Status = StatusWaiting
		}
		rows = append(rows, row)
	}
	return rows
}
