package session

import (
	"github.com/palemoky/lexio/internal/apperrors"
)

// ToggleTile marks or unmarks a hand tile. Only the Playing screen accepts selection.
func (c *Controller) ToggleTile(pos int) Outcome {
	if c.screen != ScreenPlaying || c.view == nil {
		return Outcome{}
	}
	c.sel.Toggle(pos)
	return Outcome{Render: true}
}

// MoveTile shifts the hand tile at pos by delta within the local order. It returns the
// tile's position after the move.
func (c *Controller) MoveTile(pos, delta int) (Outcome, int) {
	if c.screen != ScreenPlaying || c.view == nil {
		return Outcome{}, pos
	}
	to := c.sel.Move(pos, delta)
	if to == pos {
		return Outcome{}, pos
	}
	return Outcome{Render: true}, to
}

// SubmitPlay sends the selection when the Play affordance is enabled.
func (c *Controller) SubmitPlay() Outcome {
	if !c.canAct() || !c.view.CanPlay {
		return Outcome{}
	}
	if err := c.gate.SubmitPlay(c.sel); err != nil {
		return c.failure(err)
	}
	return Outcome{Render: true}
}

// SubmitPass sends pass_turn when the Pass affordance is enabled.
func (c *Controller) SubmitPass() Outcome {
	if !c.canAct() || !c.view.CanPass {
		return Outcome{}
	}
	if err := c.gate.SubmitPass(); err != nil {
		return c.failure(err)
	}
	return Outcome{}
}

// StartGame asks for a table of n players from the start screen.
func (c *Controller) StartGame(n int) Outcome {
	if c.screen != ScreenStart {
		return Outcome{}
	}
	if err := c.gate.StartGame(n); err != nil {
		return c.failure(err)
	}
	c.log.WithField("num_players", n).Info("start requested")
	return Outcome{}
}

// PlayAgain asks for a new game from the game-over screen.
func (c *Controller) PlayAgain() Outcome {
	if c.screen != ScreenGameOver {
		return Outcome{}
	}
	if err := c.gate.PlayAgain(); err != nil {
		return c.failure(err)
	}
	return Outcome{}
}

func (c *Controller) canAct() bool {
	return c.screen == ScreenPlaying && c.view != nil
}

// failure turns an action error into a notice. Transport failures are logged as well.
func (c *Controller) failure(err error) Outcome {
	kind := NoticeValidation
	if !apperrors.IsValidation(err) {
		kind = NoticeTransport
		c.log.WithError(err).Error("action not sent")
	}
	return Outcome{Render: true, Notice: c.pushNotice(kind, err.Error())}
}
