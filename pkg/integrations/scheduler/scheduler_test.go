package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestScheduler_RequiresConfig(t *testing.T) {
	_, err := New()
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(
		WithContext(context.Background()),
		WithLogger(discardLogger),
		WithInterval(time.Second),
	)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestScheduler_TicksMultipleTimes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var count atomic.Int32
	s, err := New(
		WithContext(ctx),
		WithLogger(discardLogger),
		WithInterval(10*time.Millisecond),
		WithHandler(func() error {
			count.Add(1)
			return nil
		}),
	)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	time.Sleep(55 * time.Millisecond)
	assert.GreaterOrEqual(t, count.Load(), int32(3))
}

func TestScheduler_KeepsTickingAfterHandlerError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var count atomic.Int32
	s, err := New(
		WithContext(ctx),
		WithLogger(discardLogger),
		WithInterval(10*time.Millisecond),
		WithHandler(func() error {
			count.Add(1)
			return errors.New("fetch failed")
		}),
	)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	time.Sleep(45 * time.Millisecond)
	assert.GreaterOrEqual(t, count.Load(), int32(2))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var count atomic.Int32
	s, err := New(
		WithContext(ctx),
		WithLogger(discardLogger),
		WithInterval(10*time.Millisecond),
		WithHandler(func() error {
			count.Add(1)
			return nil
		}),
	)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	time.Sleep(25 * time.Millisecond)
	cancel()
	countAtCancel := count.Load()

	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, count.Load(), countAtCancel+1)
}
