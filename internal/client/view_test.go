package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/lexio/internal/apperrors"
	"github.com/palemoky/lexio/internal/protocol"
	"github.com/palemoky/lexio/internal/testutil"
	"github.com/palemoky/lexio/internal/tile"
)

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	s := testutil.Snapshot(4, 1)
	s.PlayersWhoPassed = []int{3}
	s.GameLog = []string{"Round 1", "P1이(가) 냈습니다"}

	first, err := Render(s, 0, NewSelection())
	require.NoError(t, err)
	second, err := Render(s, 0, NewSelection())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_ResetsSelection(t *testing.T) {
	t.Parallel()

	s := testutil.Snapshot(3, 0)
	sel := NewSelection()
	_, err := Render(s, 0, sel)
	require.NoError(t, err)
	sel.Toggle(0)
	sel.Toggle(2)

	view, err := Render(s, 0, sel)
	require.NoError(t, err)
	assert.True(t, sel.Empty())
	assert.Zero(t, view.SelectedCount())
}

func TestRender_Hand(t *testing.T) {
	t.Parallel()

	s := testutil.Snapshot(3, 0)
	view, err := Render(s, 1, NewSelection())
	require.NoError(t, err)

	require.Len(t, view.Hand, 3)
	for i, h := range view.Hand {
		assert.Equal(t, i, h.Position)
		assert.Equal(t, s.PlayerHands[1][i], h.Tile)
		assert.Equal(t, h.Tile.AssetKey(), h.AssetKey)
		assert.False(t, h.Selected)
	}
	assert.Equal(t, "cloud_2", view.Hand[0].AssetKey)
}

func TestRender_BoardAndLog(t *testing.T) {
	t.Parallel()

	s := testutil.Snapshot(3, 0)
	s.LastPlayedTiles = []tile.Tile{tile.New(tile.Moon, 5), tile.New(tile.Sun, 5)}
	s.LastPlayedHandInfo = protocol.NewHandInfo("pair")
	s.GameLog = []string{"a", "b", "c"}

	view, err := Render(s, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, s.LastPlayedTiles, view.Board)
	assert.Equal(t, "pair", view.BoardCombo)
	assert.Equal(t, []string{"a", "b", "c"}, view.Log)
	assert.True(t, view.ScrollToEnd)

	s.GameLog[0] = "mutated"
	assert.Equal(t, "a", view.Log[0], "log is copied")
}

func TestRender_EmptyBoardIsNotNil(t *testing.T) {
	t.Parallel()

	s := testutil.Snapshot(3, 0)
	s.LastPlayedTiles = nil
	s.GameLog = nil

	view, err := Render(s, 0, nil)
	require.NoError(t, err)
	assert.NotNil(t, view.Board)
	assert.Empty(t, view.Board)
	assert.NotNil(t, view.Log)
	assert.Empty(t, view.BoardCombo)
}

func TestRender_Banner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		my      int
		want    string
	}{
		{name: "own turn", current: 2, my: 2, want: "Your turn!"},
		{name: "other turn", current: 0, my: 2, want: "Player 1's turn."},
		{name: "last seat", current: 3, my: 0, want: "Player 4's turn."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			view, err := Render(testutil.Snapshot(4, tt.current), tt.my, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, view.Banner.Text)
			assert.Equal(t, tt.current == tt.my, view.Banner.MyTurn)
			assert.Equal(t, tt.current+1, view.Banner.Player)
		})
	}
}

func TestRender_StatusCells(t *testing.T) {
	t.Parallel()

	s := testutil.Snapshot(4, 2)
	s.PlayersWhoPassed = []int{0, 2}
	s.PlayerMoney = []int{90, 100, 110, 120}
	s.PlayerHands[3] = s.PlayerHands[3][:1]

	view, err := Render(s, 1, nil)
	require.NoError(t, err)
	require.Len(t, view.Status, 4)

	assert.Equal(t, []string{"P1", "P2 (you)", "P3", "P4"}, []string{
		view.Status[0].Name, view.Status[1].Name, view.Status[2].Name, view.Status[3].Name,
	})
	assert.Equal(t, StatusPass, view.Status[0].Status)
	assert.Equal(t, StatusWaiting, view.Status[1].Status)
	assert.Equal(t, StatusInProgress, view.Status[2].Status, "acting seat wins over pass")
	assert.Equal(t, StatusWaiting, view.Status[3].Status)

	assert.True(t, view.Status[1].Self)
	assert.True(t, view.Status[2].Acting)
	assert.False(t, view.Status[2].ActingSelf)
	assert.Equal(t, 1, view.Status[3].Cards)
	assert.Equal(t, 110, view.Status[2].Money)
}

func TestRender_ExactlyOneInProgress(t *testing.T) {
	t.Parallel()

	for current := range 5 {
		view, err := Render(testutil.Snapshot(5, current), 0, nil)
		require.NoError(t, err)

		inProgress := 0
		for _, row := range view.Status {
			if row.Status == StatusInProgress {
				inProgress++
				assert.Equal(t, current, row.Slot)
			}
		}
		assert.Equal(t, 1, inProgress)
	}
}

func TestRender_ActingSelf(t *testing.T) {
	t.Parallel()

	view, err := Render(testutil.Snapshot(3, 1), 1, nil)
	require.NoError(t, err)
	assert.True(t, view.Status[1].ActingSelf)
	assert.True(t, view.CanPlay)
	assert.False(t, view.CanPass, "leader on an empty board")
}

func TestRender_SkipsUnrenderable(t *testing.T) {
	t.Parallel()

	sel := NewSelection()
	sel.Reset(sampleHand())
	sel.Toggle(0)

	_, err := Render(nil, 0, sel)
	assert.ErrorIs(t, err, apperrors.ErrUnrenderable)
	assert.Equal(t, 1, sel.Len(), "a skipped render leaves the selection alone")

	_, err = Render(testutil.Snapshot(3, 0), Unassigned, sel)
	assert.ErrorIs(t, err, apperrors.ErrIdentityUnassigned)
}

func TestViewState_WithSelection(t *testing.T) {
	t.Parallel()

	sel := NewSelection()
	view, err := Render(testutil.Snapshot(3, 0), 0, sel)
	require.NoError(t, err)

	sel.Toggle(2)
	marked := view.WithSelection(sel)
	assert.Equal(t, 1, marked.SelectedCount())
	assert.True(t, marked.Hand[2].Selected)
	assert.Zero(t, view.SelectedCount(), "original view untouched")
}

func TestViewState_WithSelectionLocalOrder(t *testing.T) {
	t.Parallel()

	sel := NewSelection()
	s := testutil.Snapshot(3, 0)
	view, err := Render(s, 0, sel)
	require.NoError(t, err)

	sel.Move(0, 2)
	got := view.WithSelection(sel)
	assert.Equal(t, s.PlayerHands[0][2], got.Hand[0].Tile)
	assert.Equal(t, s.PlayerHands[0][0], got.Hand[2].Tile)
	assert.Equal(t, s.PlayerHands[0][0].AssetKey(), got.Hand[2].AssetKey)

	again, err := Render(s, 0, sel)
	require.NoError(t, err)
	assert.Equal(t, s.PlayerHands[0], tilesOf(again.WithSelection(sel).Hand), "a new render drops the local order")
}

func tilesOf(hand []HandTile) []tile.Tile {
	out := make([]tile.Tile, 0, len(hand))
	for _, h := range hand {
		out = append(out, h.Tile)
	}
	return out
}
