// Package console is the line-mode front end: it parses typed commands and prints the
// session as plain text.
package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/palemoky/lexio/internal/session"
)

// Verb names a console command.
type Verb string

const (
	VerbStart  Verb = "start"
	VerbToggle Verb = "toggle"
	VerbPlay   Verb = "play"
	VerbPass   Verb = "pass"
	VerbAgain  Verb = "again"
	VerbOK     Verb = "ok"
	VerbShow   Verb = "show"
	VerbHelp   Verb = "help"
	VerbQuit   Verb = "quit"
)

// Verbs lists every command, in help order.
var Verbs = []Verb{VerbStart, VerbToggle, VerbPlay, VerbPass, VerbAgain, VerbOK, VerbShow, VerbHelp, VerbQuit}

var aliases = map[string]Verb{
	"s": VerbStart,
	"t": VerbToggle,
	"p": VerbPlay,
	"x": VerbPass,
	"r": VerbAgain,
	"q": VerbQuit,
	"?": VerbHelp,
}

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArg     = errors.New("missing argument")
)

// Command is one parsed console line. Args are already converted to integers; tile
// positions are 0-based.
type Command struct {
	Verb Verb
	Args []int
}

// ParseCommand parses a line such as "toggle 1 3" or "start 4". Tile positions are typed
// 1-based.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	verb := Verb(fields[0])
	if v, ok := aliases[fields[0]]; ok {
		verb = v
	}

	cmd := Command{Verb: verb}
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Command{}, fmt.Errorf("%s: bad number %q", verb, f)
		}
		cmd.Args = append(cmd.Args, n)
	}

	switch verb {
	case VerbStart:
		if len(cmd.Args) != 1 {
			return Command{}, fmt.Errorf("%s: %w: player count", verb, ErrMissingArg)
		}
	case VerbToggle:
		if len(cmd.Args) == 0 {
			return Command{}, fmt.Errorf("%s: %w: tile position", verb, ErrMissingArg)
		}
		for i := range cmd.Args {
			cmd.Args[i]--
		}
	case VerbPlay, VerbPass, VerbAgain, VerbOK, VerbShow, VerbHelp, VerbQuit:
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0])
	}
	return cmd, nil
}

// Execute applies cmd to the session controller. Toggle with several positions merges
// the outcomes. While a notice is pending only ok gets through; anything else prints the
// notice again.
func Execute(c *session.Controller, cmd Command) session.Outcome {
	if c.CurrentNotice() != nil && cmd.Verb != VerbOK {
		return session.Outcome{Render: true}
	}
	switch cmd.Verb {
	case VerbStart:
		return c.StartGame(cmd.Args[0])
	case VerbToggle:
		var out session.Outcome
		for _, pos := range cmd.Args {
			o := c.ToggleTile(pos)
			out.Render = out.Render || o.Render
		}
		return out
	case VerbPlay:
		return c.SubmitPlay()
	case VerbPass:
		return c.SubmitPass()
	case VerbAgain:
		return c.PlayAgain()
	case VerbOK:
		c.DismissNotice()
		return session.Outcome{Render: true}
	case VerbShow:
		return session.Outcome{Render: true}
	}
	return session.Outcome{}
}

// Usage is the help text printed for "help".
func Usage() string {
	return strings.Join([]string{
		"start N       start a table of N players (3-5)",
		"toggle I ...  mark or unmark hand tiles by position (1-based)",
		"play          play the marked tiles",
		"pass          pass this trick",
		"again         play again after the game is over",
		"ok            dismiss the current notice",
		"show          print the table again",
		"quit          leave",
	}, "\n")
}
