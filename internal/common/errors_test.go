package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("reserve slot 4: %w", ErrSlotNotAvailable)

	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.Equal(t, KindNotFound, KindOf(ErrMatchNotFound))
	assert.Equal(t, KindInvalidState, KindOf(ErrCaptainCannotLeave))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestSentinelsMatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("leave match 3: %w", ErrCaptainCannotLeave)

	assert.ErrorIs(t, err, ErrCaptainCannotLeave)
	assert.NotErrorIs(t, err, ErrInvalidTransition)

	appErr, ok := AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, "captain_cannot_leave", appErr.Code)
}
