package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/lexio/internal/tile"
)

const sampleSnapshot = `{
	"player_hands": [[{"suit":"cloud","rank":3},{"suit":"sun","rank":2}], [{"suit":"moon","rank":5}], []],
	"player_money": [27, 30, 24],
	"current_player_index": 1,
	"players_who_passed_this_round": [2],
	"last_played_hand_info": ["pair", [{"suit":"star","rank":9},{"suit":"moon","rank":9}]],
	"last_played_tiles": [{"suit":"star","rank":9},{"suit":"moon","rank":9}],
	"last_player_to_act_index": 0,
	"game_log": ["라운드 1 시작!", "P1: 9 pair을(를) 냈습니다."]
}`

func TestSnapshot_Decode(t *testing.T) {
	t.Parallel()

	var s Snapshot
	require.NoError(t, json.Unmarshal([]byte(sampleSnapshot), &s))

	assert.Equal(t, 3, s.PlayerCount())
	assert.Equal(t, tile.New(tile.Cloud, 3), s.PlayerHands[0][0])
	assert.Equal(t, 1, s.CurrentPlayerIndex)
	assert.True(t, s.Passed(2))
	assert.False(t, s.Passed(0))
	assert.Equal(t, 30, s.Money(1))
	assert.Equal(t, 0, s.Money(7))
	assert.True(t, s.LastPlayedHandInfo.HasLeader())
	assert.Equal(t, "pair", s.LastPlayedHandInfo.ComboName())
	require.NotNil(t, s.LastPlayerToAct)
	assert.Equal(t, 0, *s.LastPlayerToAct)
	assert.Len(t, s.LastPlayedTiles, 2)
}

func TestHandInfo_NoLeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
	}{
		{"null pair", `[null, null]`},
		{"null value", `null`},
		{"empty array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var h HandInfo
			require.NoError(t, json.Unmarshal([]byte(tt.json), &h))
			assert.False(t, h.HasLeader())
			assert.Empty(t, h.ComboName())
		})
	}
}

func TestHandInfo_AbsentField(t *testing.T) {
	t.Parallel()

	var s Snapshot
	require.NoError(t, json.Unmarshal([]byte(`{"player_hands":[[]]}`), &s))
	assert.False(t, s.LastPlayedHandInfo.HasLeader())
}

func TestHandInfo_NumericLead(t *testing.T) {
	t.Parallel()

	var h HandInfo
	require.NoError(t, json.Unmarshal([]byte(`[2, null]`), &h))
	assert.True(t, h.HasLeader())
	assert.Empty(t, h.ComboName())
}

func TestHandInfo_Marshal(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(HandInfo{})
	require.NoError(t, err)
	assert.JSONEq(t, `[null, null]`, string(data))

	data, err = json.Marshal(NewHandInfo("straight"))
	require.NoError(t, err)
	assert.JSONEq(t, `["straight", null]`, string(data))
}

func TestSnapshot_LastLog(t *testing.T) {
	t.Parallel()

	s := Snapshot{}
	_, _, ok := s.LastLog()
	assert.False(t, ok)

	s.GameLog = []string{"a", "b"}
	entry, kind, ok := s.LastLog()
	assert.True(t, ok)
	assert.Equal(t, "b", entry)
	assert.Empty(t, kind)

	s.GameLogKinds = []LogKind{LogKindRoundStart, LogKindPass}
	_, kind, _ = s.LastLog()
	assert.Equal(t, LogKindPass, kind)

	// misaligned kinds are ignored
	s.GameLogKinds = []LogKind{LogKindPlay}
	_, kind, _ = s.LastLog()
	assert.Empty(t, kind)
}

func TestGameOverPayload_MixedBankrupt(t *testing.T) {
	t.Parallel()

	var p GameOverPayload
	require.NoError(t, json.Unmarshal([]byte(`{"rankings":["1등: 플레이어 2 (40원)"],"bankrupt":["1", 3]}`), &p))
	assert.Equal(t, Labels{"1", "3"}, p.Bankrupt)

	require.NoError(t, json.Unmarshal([]byte(`{"rankings":[],"bankrupt":null}`), &p))
	assert.Nil(t, p.Bankrupt)

	assert.Error(t, json.Unmarshal([]byte(`{"bankrupt":[{"x":1}]}`), &p))
}

func TestNewMessage(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(MsgPassTurn, nil)
	require.NoError(t, err)
	assert.Equal(t, MsgPassTurn, msg.Type)
	assert.Empty(t, msg.Payload)

	msg = MustNewMessage(MsgPlayHand, PlayHandPayload{tile.New(tile.Sun, 4)})
	assert.JSONEq(t, `[{"suit":"sun","rank":4}]`, string(msg.Payload))

	_, err = NewMessage(MsgPlayHand, make(chan int))
	assert.Error(t, err)
}

func TestParsePayload(t *testing.T) {
	t.Parallel()

	msg := MustNewMessage(MsgWaitingForPlayers, WaitingForPlayersPayload{Current: 2, Needed: 4})
	p, err := ParsePayload[WaitingForPlayersPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Current)
	assert.Equal(t, 4, p.Needed)

	empty, err := ParsePayload[WaitingForPlayersPayload](&Message{Type: MsgShowLobby})
	require.NoError(t, err)
	assert.Zero(t, empty.Needed)

	_, err = ParsePayload[WaitingForPlayersPayload](&Message{Type: MsgWaitingForPlayers, Payload: []byte(`{`)})
	assert.Error(t, err)
}
