package taskrt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_InitiallyLowered(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	flag, ok := ctx.Flag()
	assert.True(t, ok)
	assert.Equal(t, Lowered, flag)
}

func TestContext_RaiseLower(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	require.NoError(t, ctx.Raise())
	flag, ok := ctx.Flag()
	assert.True(t, ok)
	assert.Equal(t, Raised, flag)

	require.NoError(t, ctx.Lower())
	flag, ok = ctx.Flag()
	assert.True(t, ok)
	assert.Equal(t, Lowered, flag)
}

func TestContext_Raise_Idempotent(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	require.NoError(t, ctx.Raise())
	require.NoError(t, ctx.Raise())

	flag, _ := ctx.Flag()
	assert.Equal(t, Raised, flag)
}

func TestContext_Lower_Idempotent(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)

	require.NoError(t, ctx.Lower())
	flag, _ := ctx.Flag()
	assert.Equal(t, Lowered, flag)
}

func TestContext_Flag_NilReceiver(t *testing.T) {
	var ctx *Context
	flag, ok := ctx.Flag()
	assert.False(t, ok)
	assert.Equal(t, ContextFlag(-1), flag)
}

func TestContext_RaiseAfter(t *testing.T) {
	// Scenario D: Context cancel after a delay.
	ctx, err := NewContext()
	require.NoError(t, err)

	ctx.RaiseAfter(10 * time.Millisecond)

	flag, _ := ctx.Flag()
	assert.Equal(t, Lowered, flag)

	time.Sleep(50 * time.Millisecond)
	flag, _ = ctx.Flag()
	assert.Equal(t, Raised, flag)
}

func TestContext_LowerAfter(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, ctx.Raise())

	ctx.LowerAfter(10 * time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	flag, _ := ctx.Flag()
	assert.Equal(t, Lowered, flag)
}

func TestContext_Closed_RaiseLowerReturnErrClosed(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, ctx.Close())

	assert.ErrorIs(t, ctx.Raise(), ErrClosed)
	assert.ErrorIs(t, ctx.Lower(), ErrClosed)
}

func TestContext_Close_Idempotent(t *testing.T) {
	ctx, err := NewContext()
	require.NoError(t, err)
	require.NoError(t, ctx.Close())
	assert.NoError(t, ctx.Close())
}

func TestContextFlag_String(t *testing.T) {
	assert.Equal(t, "lowered", Lowered.String())
	assert.Equal(t, "raised", Raised.String())
}
