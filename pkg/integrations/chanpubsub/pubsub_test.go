package chanpubsub

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestPubSub_IsValid(t *testing.T) {
	ps := New(
		WithContext(context.Background()),
		WithLogger(discardLogger),
		WithChannel(make(chan []byte, 1)),
	)
	require.ErrorIs(t, ps.IsValid(), ErrInvalidConfig)

	ps = New(
		WithContext(context.Background()),
		WithLogger(discardLogger),
		WithTopic("prices"),
		WithChannel(make(chan []byte, 1)),
	)
	require.NoError(t, ps.IsValid())
}

func TestPubSub_PublishReachesHandler(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var got atomic.Value
	ps := New(
		WithContext(ctx),
		WithLogger(discardLogger),
		WithTopic("prices"),
		WithChannel(make(chan []byte, 4)),
		WithHandler(func(data []byte) error {
			got.Store(string(data))
			return nil
		}),
	)
	require.NoError(t, ps.Subscribe())
	require.NoError(t, ps.Publish([]byte(`{"bitcoin":50000}`)))

	require.Eventually(t, func() bool {
		v, ok := got.Load().(string)
		return ok && v == `{"bitcoin":50000}`
	}, time.Second, 5*time.Millisecond)
}

func TestPubSub_SubscribeClosesChannelOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan []byte, 1)
	ps := New(
		WithContext(ctx),
		WithLogger(discardLogger),
		WithTopic("prices"),
		WithChannel(ch),
		WithHandler(func([]byte) error { return nil }),
	)
	require.NoError(t, ps.Subscribe())

	cancel()

	select {
	case _, ok := <-ch:
		require.False(t, ok, "expected channel closed, got a message")
	case <-time.After(time.Second):
		t.Fatal("channel not closed after context cancellation")
	}
}

func TestPubSub_PublishFailsAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ps := New(
		WithContext(ctx),
		WithLogger(discardLogger),
		WithTopic("prices"),
		WithChannel(make(chan []byte)),
	)
	cancel()
	require.Error(t, ps.Publish([]byte("late")))
}

func TestPubSub_SubscribeRequiresHandler(t *testing.T) {
	ps := New(
		WithContext(context.Background()),
		WithLogger(discardLogger),
		WithTopic("prices"),
		WithChannel(make(chan []byte, 1)),
	)
	require.ErrorIs(t, ps.Subscribe(), ErrInvalidConfig)
}
