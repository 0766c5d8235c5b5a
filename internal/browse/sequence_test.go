package browse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencer(t *testing.T) {
	var s Sequencer
	assert.False(t, s.IsCurrent(0))

	first, firstCtx := s.Issue(context.Background())
	assert.True(t, s.IsCurrent(first))

	second, secondCtx := s.Issue(context.Background())
	assert.Greater(t, second, first)
	assert.False(t, s.IsCurrent(first))
	assert.True(t, s.IsCurrent(second))

	assert.ErrorIs(t, firstCtx.Err(), context.Canceled, "superseded request is cancelled")
	assert.NoError(t, secondCtx.Err())

	s.Done(second)
	assert.True(t, s.IsCurrent(second))
	assert.ErrorIs(t, secondCtx.Err(), context.Canceled)
}

func TestSequencer_Cancel(t *testing.T) {
	var s Sequencer
	token, ctx := s.Issue(context.Background())

	s.Cancel()
	assert.False(t, s.IsCurrent(token))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Equal(t, token+1, s.Latest())
}
