package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/palemoky/lexio/internal/tile"
)

// --- 客户端请求 Payloads ---

// StartGamePayload asks the server to open a table for NumPlayers seats.
type StartGamePayload struct {
	NumPlayers int `json:"num_players"`
}

// PlayHandPayload is sent as a bare array of tiles.
type PlayHandPayload []tile.Tile

// --- 服务端响应 Payloads ---

// PlayerAssignedPayload carries the 0-based slot of this connection.
type PlayerAssignedPayload struct {
	PlayerNum int `json:"player_num"`
}

// WaitingForPlayersPayload reports lobby population.
type WaitingForPlayersPayload struct {
	Current int `json:"current"`
	Needed  int `json:"needed"`
}

// RoundResultPayload is the settlement of a finished round. Winner is 1-based.
type RoundResultPayload struct {
	Winner      int      `json:"winner"`
	Payments    []string `json:"payments"`
	MoneyStatus []int    `json:"money_status"`
}

// GameOverPayload carries the final standings.
type GameOverPayload struct {
	Rankings []string `json:"rankings"`
	Bankrupt Labels   `json:"bankrupt"`
}

// PlayerLeftPayload names the disconnected seat. PlayerNum is 1-based.
type PlayerLeftPayload struct {
	PlayerNum int `json:"player_num"`
}

// ErrorMessagePayload is a server-side rejection of the last action.
type ErrorMessagePayload struct {
	Message string `json:"message"`
}

// Labels decodes a JSON array whose items may be strings or numbers.
type Labels []string

func (l *Labels) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = nil
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Labels, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		var n json.Number
		if err := json.Unmarshal(item, &n); err != nil {
			return fmt.Errorf("label %s is neither string nor number", item)
		}
		out = append(out, n.String())
	}
	*l = out
	return nil
}

// LogKind is the structured tag of a log entry.
type LogKind string

const (
	LogKindPlay       LogKind = "play"
	LogKindPass       LogKind = "pass"
	LogKindRoundStart LogKind = "round_start"
	LogKindInfo       LogKind = "info"
)

// Snapshot is the full authoritative game state pushed on game_started and game_update.
type Snapshot struct {
	PlayerHands        [][]tile.Tile `json:"player_hands"`
	PlayerMoney        []int         `json:"player_money"`
	CurrentPlayerIndex int           `json:"current_player_index"`
	PlayersWhoPassed   []int         `json:"players_who_passed_this_round"`
	LastPlayedHandInfo HandInfo      `json:"last_played_hand_info"`
	LastPlayedTiles    []tile.Tile   `json:"last_played_tiles"`
	LastPlayerToAct    *int          `json:"last_player_to_act_index,omitempty"`
	GameLog            []string      `json:"game_log"`
	GameLogKinds       []LogKind     `json:"game_log_kinds,omitempty"`
}

// PlayerCount returns the number of seats in the snapshot.
func (s *Snapshot) PlayerCount() int {
	return len(s.PlayerHands)
}

// Passed reports whether slot passed this round.
func (s *Snapshot) Passed(slot int) bool {
	for _, p := range s.PlayersWhoPassed {
		if p == slot {
			return true
		}
	}
	return false
}

// Money returns the balance of slot, or 0 when the server omitted it.
func (s *Snapshot) Money(slot int) int {
	if slot < 0 || slot >= len(s.PlayerMoney) {
		return 0
	}
	return s.PlayerMoney[slot]
}

// LastLog returns the newest log entry and its structured kind, if the kinds are aligned.
func (s *Snapshot) LastLog() (entry string, kind LogKind, ok bool) {
	if len(s.GameLog) == 0 {
		return "", "", false
	}
	entry = s.GameLog[len(s.GameLog)-1]
	if len(s.GameLogKinds) == len(s.GameLog) {
		kind = s.GameLogKinds[len(s.GameLogKinds)-1]
	}
	return entry, kind, true
}

var jsonNull = []byte("null")

// HandInfo is the [lead, representative] pair describing the hand on the board.
// A null lead means no one has led the current round yet.
type HandInfo struct {
	Lead json.RawMessage
	Rep  json.RawMessage
}

// NewHandInfo builds a HandInfo with a combination name as its lead.
func NewHandInfo(combo string) HandInfo {
	return HandInfo{Lead: json.RawMessage(strconv.Quote(combo))}
}

// HasLeader reports whether the first element is set.
func (h HandInfo) HasLeader() bool {
	lead := bytes.TrimSpace(h.Lead)
	return len(lead) > 0 && !bytes.Equal(lead, jsonNull)
}

// ComboName returns the lead when it is a string.
func (h HandInfo) ComboName() string {
	if !h.HasLeader() {
		return ""
	}
	var name string
	if err := json.Unmarshal(h.Lead, &name); err != nil {
		return ""
	}
	return name
}

func (h *HandInfo) UnmarshalJSON(data []byte) error {
	*h = HandInfo{}
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return nil
	}
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("last_played_hand_info: %w", err)
	}
	if len(parts) > 0 {
		h.Lead = parts[0]
	}
	if len(parts) > 1 {
		h.Rep = parts[1]
	}
	return nil
}

func (h HandInfo) MarshalJSON() ([]byte, error) {
	lead, rep := []byte(h.Lead), []byte(h.Rep)
	if len(bytes.TrimSpace(lead)) == 0 {
		lead = jsonNull
	}
	if len(bytes.TrimSpace(rep)) == 0 {
		rep = jsonNull
	}
	return json.Marshal([]json.RawMessage{lead, rep})
}
