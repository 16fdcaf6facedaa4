package middleware_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/cmdbus"
	"github.com/rise-and-shine/cmdbus/middleware"
)

func TestTimeoutMW_SlowHandlerTimesOut(t *testing.T) {
	mw := middleware.NewTimeoutMW(50 * time.Millisecond)

	slow := func(ctx context.Context, _ cmdbus.Command) (any, error) {
		time.Sleep(500 * time.Millisecond)
		return "late", nil
	}

	start := time.Now()
	result, err := mw(slow)(t.Context(), &testCmd{})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, cmdbus.IsTimeout(err))
	assert.Nil(t, result)

	// The failure must arrive near the configured timeout, not after the
	// handler's full delay.
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, 300*time.Millisecond)
}

func TestTimeoutMW_FastHandlerPassesThrough(t *testing.T) {
	mw := middleware.NewTimeoutMW(500 * time.Millisecond)

	fast := func(ctx context.Context, _ cmdbus.Command) (any, error) {
		time.Sleep(10 * time.Millisecond)
		return "on time", nil
	}

	result, err := mw(fast)(t.Context(), &testCmd{})

	require.NoError(t, err)
	assert.Equal(t, "on time", result)
}

// Abandoned work keeps running after a timeout: the goroutine is not
// stopped, so side effects of a timed-out handler may still land.
func TestTimeoutMW_AbandonedWorkStillCompletes(t *testing.T) {
	mw := middleware.NewTimeoutMW(20 * time.Millisecond)

	completed := make(chan struct{})
	slow := func(ctx context.Context, _ cmdbus.Command) (any, error) {
		time.Sleep(100 * time.Millisecond)
		close(completed)
		return nil, nil
	}

	_, err := mw(slow)(t.Context(), &testCmd{})
	require.True(t, cmdbus.IsTimeout(err))

	select {
	case <-completed:
		// the orphaned handler ran to completion; its result was discarded
	case <-time.After(time.Second):
		t.Fatal("abandoned handler never completed")
	}
}

func TestTimeoutMW_ParentCancellation(t *testing.T) {
	mw := middleware.NewTimeoutMW(time.Second)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	blocked := func(ctx context.Context, _ cmdbus.Command) (any, error) {
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		return nil, ctx.Err()
	}

	_, err := mw(blocked)(ctx, &testCmd{})

	require.Error(t, err)
	assert.False(t, cmdbus.IsTimeout(err))
}
