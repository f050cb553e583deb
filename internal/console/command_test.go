package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/lexio/internal/protocol"
	"github.com/palemoky/lexio/internal/session"
	"github.com/palemoky/lexio/internal/testutil"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want Command
	}{
		{"start 4", Command{Verb: VerbStart, Args: []int{4}}},
		{"  TOGGLE 1 3 ", Command{Verb: VerbToggle, Args: []int{0, 2}}},
		{"t 2", Command{Verb: VerbToggle, Args: []int{1}}},
		{"play", Command{Verb: VerbPlay}},
		{"x", Command{Verb: VerbPass}},
		{"again", Command{Verb: VerbAgain}},
		{"q", Command{Verb: VerbQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	t.Parallel()

	_, err := ParseCommand("   ")
	assert.ErrorIs(t, err, ErrEmptyCommand)

	_, err = ParseCommand("dance")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = ParseCommand("start")
	assert.ErrorIs(t, err, ErrMissingArg)

	_, err = ParseCommand("toggle")
	assert.ErrorIs(t, err, ErrMissingArg)

	_, err = ParseCommand("toggle one")
	assert.Error(t, err)
}

func TestExecute(t *testing.T) {
	t.Parallel()

	sender := &testutil.RecordingSender{}
	c := session.NewController(session.Options{Sender: sender})
	c.OnPlayerAssigned(protocol.PlayerAssignedPayload{PlayerNum: 0})
	c.OnGameStarted(testutil.Snapshot(3, 0))

	out := Execute(c, Command{Verb: VerbToggle, Args: []int{0, 2}})
	assert.True(t, out.Render)
	assert.Equal(t, 2, c.Selection().Len())

	Execute(c, Command{Verb: VerbPlay})
	require.Len(t, sender.Plays, 1)
	assert.Len(t, sender.Plays[0], 2)

	// start is only honoured on the start screen
	Execute(c, Command{Verb: VerbStart, Args: []int{3}})
	assert.Empty(t, sender.Starts)
}

func TestExecute_NoticeBlocksCommands(t *testing.T) {
	t.Parallel()

	sender := &testutil.RecordingSender{}
	c := session.NewController(session.Options{Sender: sender})
	c.OnPlayerAssigned(protocol.PlayerAssignedPayload{PlayerNum: 0})
	c.OnGameStarted(testutil.Snapshot(3, 0))
	c.OnErrorMessage(protocol.ErrorMessagePayload{Message: "Invalid combination"})

	out := Execute(c, Command{Verb: VerbToggle, Args: []int{0}})
	assert.True(t, out.Render, "the notice is shown again")
	assert.True(t, c.Selection().Empty())

	Execute(c, Command{Verb: VerbShow})
	require.NotNil(t, c.CurrentNotice())

	Execute(c, Command{Verb: VerbOK})
	assert.Nil(t, c.CurrentNotice())

	Execute(c, Command{Verb: VerbToggle, Args: []int{0}})
	Execute(c, Command{Verb: VerbPlay})
	assert.Len(t, sender.Plays, 1)
}
