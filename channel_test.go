package taskrt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel_SendReceive_Echo(t *testing.T) {
	// Scenario A: Echo. Capacity 1, one send then one receive round-trips
	// the value unchanged.
	ch, err := NewChannel[int](1)
	require.NoError(t, err)

	require.NoError(t, ch.Send(42))
	v, err := ch.Receive()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestChannel_FIFOOrder(t *testing.T) {
	ch, err := NewChannel[int](4)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		require.NoError(t, ch.Send(i))
	}
	for i := 1; i <= 3; i++ {
		v, err := ch.Receive()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestChannel_DropOldestOnOverflow(t *testing.T) {
	// Scenario B: Drop-oldest. Capacity 3, five sends with no intervening
	// receives; only the three newest survive, then the channel reports
	// ErrNothing once drained.
	ch, err := NewChannel[byte](3)
	require.NoError(t, err)

	for _, b := range []byte{0x01, 0x02, 0x03, 0x04, 0x05} {
		require.NoError(t, ch.Send(b))
	}
	assert.Equal(t, 3, ch.Len())

	for _, want := range []byte{0x03, 0x04, 0x05} {
		v, err := ch.TryReceive()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	_, err = ch.TryReceive()
	assert.ErrorIs(t, err, ErrNothing)
}

func TestChannel_TryReceive_EmptyReturnsNothing(t *testing.T) {
	ch, err := NewChannel[int](1)
	require.NoError(t, err)

	_, err = ch.TryReceive()
	assert.ErrorIs(t, err, ErrNothing)
}

func TestChannel_ReceiveTimeout_Elapses(t *testing.T) {
	// Scenario C: Timed receive on an empty channel returns ErrTimeout
	// once the deadline elapses, without ever receiving a value.
	ch, err := NewChannel[int](1)
	require.NoError(t, err)

	start := time.Now()
	_, err = ch.ReceiveTimeout(20 * time.Millisecond)
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, ErrTimeout)
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
}

func TestChannel_ReceiveTimeout_SucceedsBeforeDeadline(t *testing.T) {
	ch, err := NewChannel[int](1)
	require.NoError(t, err)

	go func() {
		time.Sleep(5 * time.Millisecond)
		_ = ch.Send(7)
	}()

	v, err := ch.ReceiveTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestChannel_ReceiveTimeout_NegativePanics(t *testing.T) {
	ch, err := NewChannel[int](1)
	require.NoError(t, err)
	assert.Panics(t, func() { _, _ = ch.ReceiveTimeout(-time.Millisecond) })
}

func TestChannel_Close_WakesBlockedReceiver(t *testing.T) {
	ch, err := NewChannel[int](1)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := ch.Receive()
		done <- err
	}()

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, ch.Close())

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("Receive did not wake up after Close")
	}
}

func TestChannel_Closed_SendAndReceiveReturnErrClosed(t *testing.T) {
	ch, err := NewChannel[int](1)
	require.NoError(t, err)
	require.NoError(t, ch.Close())

	assert.ErrorIs(t, ch.Send(1), ErrClosed)
	_, err = ch.Receive()
	assert.ErrorIs(t, err, ErrClosed)
	_, err = ch.TryReceive()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestChannel_Close_Idempotent(t *testing.T) {
	ch, err := NewChannel[int](1)
	require.NoError(t, err)
	require.NoError(t, ch.Close())
	assert.NoError(t, ch.Close())
}

func TestChannel_CapAndLen(t *testing.T) {
	ch, err := NewChannel[int](5)
	require.NoError(t, err)
	assert.Equal(t, 5, ch.Cap())
	assert.Equal(t, 0, ch.Len())
	require.NoError(t, ch.Send(1))
	assert.Equal(t, 1, ch.Len())
}
