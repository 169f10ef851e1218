package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "toggle-task",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"track": "pcb"},
	})
	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=toggle-task")
	assert.Contains(t, out, "track=pcb")
	assert.Contains(t, out, "level=INFO")

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "load", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestMultiObserver(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, MultiObserver(nil, NoopUseCaseObserver{}))

	single := &recordingObserver{}
	assert.Same(t, single, MultiObserver(nil, single))

	a, b := &recordingObserver{}, &recordingObserver{}
	MultiObserver(a, b).ObserveUseCase(context.Background(), UseCaseEvent{Name: "reset-all"})
	assert.Equal(t, []string{"reset-all"}, a.names())
	assert.Equal(t, []string{"reset-all"}, b.names())
}

func TestPrometheusObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := NewPrometheusObserver(reg)
	require.NoError(t, err)

	ctx := context.Background()
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "load", Success: true, Duration: time.Millisecond})
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "load", Success: true, Duration: time.Millisecond})
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "load", Success: false})

	assert.Equal(t, 2.0, testutil.ToFloat64(obs.calls.WithLabelValues("load", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.calls.WithLabelValues("load", "false")))
	assert.Equal(t, 1, testutil.CollectAndCount(obs.duration))

	_, err = NewPrometheusObserver(reg)
	assert.Error(t, err, "collectors cannot be registered twice")
}
