package client

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/lexio/internal/apperrors"
	"github.com/palemoky/lexio/internal/protocol"
	"github.com/palemoky/lexio/internal/testutil"
)

func TestDeriveRole_AllCombinations(t *testing.T) {
	t.Parallel()

	for _, myTurn := range []bool{false, true} {
		for _, passed := range []bool{false, true} {
			for _, leader := range []bool{false, true} {
				name := fmt.Sprintf("turn=%v passed=%v leader=%v", myTurn, passed, leader)
				t.Run(name, func(t *testing.T) {
					t.Parallel()

					s := testutil.Snapshot(4, 1)
					my := 2
					if myTurn {
						s.CurrentPlayerIndex = my
					}
					if passed {
						s.PlayersWhoPassed = []int{my}
					}
					if !leader {
						s.LastPlayedHandInfo = protocol.NewHandInfo("pair")
					}

					role, err := DeriveRole(s, my)
					require.NoError(t, err)
					assert.Equal(t, Role{IsMyTurn: myTurn, HasPassed: passed, IsLeader: leader}, role)
					assert.Equal(t, myTurn && !passed, role.CanPlay())
					assert.Equal(t, myTurn && !passed && !leader, role.CanPass())
				})
			}
		}
	}
}

func TestDeriveRole_LeaderOnEmptyBoard(t *testing.T) {
	t.Parallel()

	raw := `{
		"player_hands": [[{"suit":"sun","rank":3}],[{"suit":"moon","rank":4}],[{"suit":"star","rank":5}]],
		"player_money": [100, 100, 100],
		"current_player_index": 2,
		"players_who_passed_this_round": [0],
		"last_played_hand_info": [null, null],
		"last_played_tiles": [],
		"game_log": []
	}`
	var s protocol.Snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	role, err := DeriveRole(&s, 2)
	require.NoError(t, err)
	assert.True(t, role.IsMyTurn)
	assert.False(t, role.HasPassed)
	assert.True(t, role.IsLeader)
	assert.True(t, role.CanPlay())
	assert.False(t, role.CanPass())
}

func TestDeriveRole_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		s       *protocol.Snapshot
		my      int
		wantErr error
	}{
		{name: "identity unassigned", s: testutil.Snapshot(3, 0), my: Unassigned, wantErr: apperrors.ErrIdentityUnassigned},
		{name: "nil snapshot", s: nil, my: 0, wantErr: apperrors.ErrUnrenderable},
		{name: "no hands", s: &protocol.Snapshot{}, my: 0, wantErr: apperrors.ErrUnrenderable},
		{name: "identity outside table", s: testutil.Snapshot(3, 0), my: 3, wantErr: apperrors.ErrUnrenderable},
		{name: "current outside table", s: testutil.Snapshot(3, 5), my: 0, wantErr: apperrors.ErrUnrenderable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := DeriveRole(tt.s, tt.my)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
