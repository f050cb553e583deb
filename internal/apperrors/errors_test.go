package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidation(ErrNothingSelected))
	assert.True(t, IsValidation(fmt.Errorf("play: %w", ErrInvalidNumPlayers)))
	assert.False(t, IsValidation(&ProtocolNotice{Message: "not your turn"}))
	assert.False(t, IsValidation(nil))
}

func TestUnrenderable(t *testing.T) {
	t.Parallel()

	err := Unrenderable("hands absent")
	assert.True(t, errors.Is(err, ErrUnrenderable))
	assert.Contains(t, err.Error(), "hands absent")
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "player 2 left the game", (&SessionTerminatedError{PlayerNum: 2}).Error())
	assert.Equal(t, "server: invalid combination", (&ProtocolNotice{Message: "invalid combination"}).Error())
}
