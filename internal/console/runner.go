package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/palemoky/lexio/internal/client"
	"github.com/palemoky/lexio/internal/logger"
	"github.com/palemoky/lexio/internal/protocol/codec"
	"github.com/palemoky/lexio/internal/session"
	"github.com/palemoky/lexio/internal/tile"
	"github.com/palemoky/lexio/internal/transport"
)

const receivePoll = 500 * time.Millisecond

// LineReader is the prompt side of a terminal. *readline.Instance satisfies it. Close
// must unblock a pending Readline.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// Options configures a Runner.
type Options struct {
	ServerURL        string
	Codec            codec.Codec
	RoundResultDelay time.Duration
	Cue              *client.CueEngine
}

// Runner drives one session from typed commands. The controller is guarded by mu; both
// the receive loop and the prompt loop take it before touching session state.
type Runner struct {
	opts Options
	out  io.Writer

	mu     sync.Mutex
	ctrl   *session.Controller
	client *transport.Client
	log    *logrus.Entry
}

// NewRunner creates a runner that prints to out.
func NewRunner(opts Options, out io.Writer) *Runner {
	r := &Runner{opts: opts, out: out}
	r.ctrl = session.NewController(session.Options{
		Sender:           runnerSender{r},
		Cue:              opts.Cue,
		RoundResultDelay: opts.RoundResultDelay,
	})
	r.log = logger.WithSession(r.ctrl.SessionID())
	return r
}

// Completer returns tab completion for every command.
func Completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(Verbs))
	for _, v := range Verbs {
		items = append(items, readline.PcItem(string(v)))
	}
	return readline.NewPrefixCompleter(items...)
}

// Run connects and serves until the user quits, ctx is cancelled or the connection is lost
// for good.
func (r *Runner) Run(ctx context.Context, in LineReader) error {
	if err := r.dial(ctx); err != nil {
		return err
	}
	defer r.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	go func() {
		<-gctx.Done()
		_ = in.Close()
	}()
	g.Go(func() error { return r.receiveLoop(gctx) })
	g.Go(func() error {
		defer cancel()
		return r.promptLoop(gctx, in)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (r *Runner) dial(ctx context.Context) error {
	c := transport.NewClient(r.opts.ServerURL, r.opts.Codec)
	c.OnReconnecting = func(attempt, maxTries int) {
		r.println(fmt.Sprintf("Connection lost, reconnecting (%d/%d)...", attempt, maxTries))
	}
	c.OnReconnect = func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.println("Reconnected, starting over.")
		r.ctrl.Reset()
		r.println(Render(r.ctrl))
	}
	if err := c.Connect(ctx); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	r.mu.Lock()
	r.client = c
	text := Render(r.ctrl)
	r.mu.Unlock()
	r.log.WithField("url", r.opts.ServerURL).Info("connected")
	r.println(text)
	return nil
}

func (r *Runner) current() *transport.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.client
}

func (r *Runner) close() {
	if c := r.current(); c != nil {
		c.Close()
	}
}

func (r *Runner) receiveLoop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c := r.current()
		msg, err := c.ReceiveWithTimeout(receivePoll)
		switch {
		case errors.Is(err, transport.ErrTimeout):
			continue
		case errors.Is(err, transport.ErrClosed):
			if r.current() != c {
				continue // replaced by a redial
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("connection to %s lost", r.opts.ServerURL)
		case err != nil:
			return err
		}

		r.mu.Lock()
		out := r.ctrl.HandleMessage(msg)
		r.mu.Unlock()
		if err := r.apply(ctx, out); err != nil {
			return err
		}
	}
}

func (r *Runner) promptLoop(ctx context.Context, in LineReader) error {
	for {
		line, err := in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			r.println(err.Error())
			continue
		}
		switch cmd.Verb {
		case VerbQuit:
			return nil
		case VerbHelp:
			r.println(Usage())
			continue
		}

		r.mu.Lock()
		out := Execute(r.ctrl, cmd)
		r.mu.Unlock()
		if err := r.apply(ctx, out); err != nil {
			return err
		}
	}
}

// apply carries out what an outcome asks of the host.
func (r *Runner) apply(ctx context.Context, out session.Outcome) error {
	if out.Render || out.Notice != nil {
		r.mu.Lock()
		text := Render(r.ctrl)
		r.mu.Unlock()
		r.println(text)
	}
	if out.Timer != nil {
		go r.wait(ctx, *out.Timer)
	}
	if out.Reset {
		r.close()
		if err := r.dial(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) wait(ctx context.Context, t session.TimerRequest) {
	if !t.Wait() {
		return
	}
	r.mu.Lock()
	out := r.ctrl.FireTimer(t.ID)
	r.mu.Unlock()
	if err := r.apply(ctx, out); err != nil {
		r.log.WithError(err).Error("round timer")
	}
}

func (r *Runner) println(s string) {
	if s == "" {
		return
	}
	fmt.Fprintln(r.out, s)
}

// runnerSender forwards to the current client. It is only called from controller methods,
// which run with r.mu held.
type runnerSender struct{ r *Runner }

func (s runnerSender) conn() (*transport.Client, error) {
	if s.r.client == nil {
		return nil, transport.ErrNotConnected
	}
	return s.r.client, nil
}

func (s runnerSender) RequestStartGame(n int) error {
	c, err := s.conn()
	if err != nil {
		return err
	}
	return c.RequestStartGame(n)
}

func (s runnerSender) RequestNewGame() error {
	c, err := s.conn()
	if err != nil {
		return err
	}
	return c.RequestNewGame()
}

func (s runnerSender) PlayHand(tiles []tile.Tile) error {
	c, err := s.conn()
	if err != nil {
		return err
	}
	return c.PlayHand(tiles)
}

func (s runnerSender) PassTurn() error {
	c, err := s.conn()
	if err != nil {
		return err
	}
	return c.PassTurn()
}
