package middleware_test

import (
	"sync"
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/cmdbus/middleware"
)

type recordingSink struct {
	mu        sync.Mutex
	requests  map[string]int
	errors    map[string]int
	durations map[string][]time.Duration
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		requests:  make(map[string]int),
		errors:    make(map[string]int),
		durations: make(map[string][]time.Duration),
	}
}

func (s *recordingSink) IncRequests(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[kind]++
}

func (s *recordingSink) IncErrors(kind string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[kind]++
}

func (s *recordingSink) ObserveDuration(kind string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.durations[kind] = append(s.durations[kind], d)
}

func TestMetricsMW_Counters(t *testing.T) {
	const (
		successes = 3
		failures  = 2
	)

	sink := newRecordingSink()
	mw := middleware.NewMetricsMW(sink)

	okChain := mw(constHandler("ok", nil))
	failChain := mw(constHandler(nil, errx.New("boom")))

	for range successes {
		_, err := okChain(t.Context(), &testCmd{})
		require.NoError(t, err)
	}
	for range failures {
		_, err := failChain(t.Context(), &testCmd{})
		require.Error(t, err)
	}

	kind := kindTest.String()
	assert.Equal(t, successes+failures, sink.requests[kind])
	assert.Equal(t, failures, sink.errors[kind])
	assert.Len(t, sink.durations[kind], successes+failures)
}

func TestMetricsMW_ResultPassesThrough(t *testing.T) {
	mw := middleware.NewMetricsMW(newRecordingSink())

	result, err := mw(constHandler(42, nil))(t.Context(), &testCmd{})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
}
