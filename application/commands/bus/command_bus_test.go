package bus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingCommand struct {
	Name string
}

func (c pingCommand) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type recordingMetrics struct {
	increments []string
	observed   []string
}

func (m *recordingMetrics) Observe(metric, label string, _ time.Duration) {
	m.observed = append(m.observed, metric+":"+label)
}

func (m *recordingMetrics) Increment(metric, label string) {
	m.increments = append(m.increments, metric+":"+label)
}

func TestCommandBus_Send(t *testing.T) {
	commandBus := NewCommandBus()
	var got string
	require.NoError(t, commandBus.Register(pingCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		got = cmd.(pingCommand).Name
		return nil
	})))

	require.NoError(t, commandBus.Send(context.Background(), pingCommand{Name: "Alex"}))
	assert.Equal(t, "Alex", got)
}

func TestCommandBus_SendValidatesFirst(t *testing.T) {
	commandBus := NewCommandBus()
	called := false
	require.NoError(t, commandBus.Register(pingCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		called = true
		return nil
	})))

	err := commandBus.Send(context.Background(), pingCommand{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "command validation failed")
	assert.False(t, called)
}

func TestCommandBus_UnknownCommand(t *testing.T) {
	err := NewCommandBus().Send(context.Background(), pingCommand{Name: "Alex"})
	assert.ErrorIs(t, err, ErrHandlerNotFound)
}

func TestCommandBus_DuplicateRegistration(t *testing.T) {
	commandBus := NewCommandBus()
	noop := CommandHandlerFunc(func(ctx context.Context, cmd Command) error { return nil })

	require.NoError(t, commandBus.Register(pingCommand{}, noop))
	assert.Error(t, commandBus.Register(pingCommand{}, noop))
}

func TestCommandBus_HandlerErrorIsWrapped(t *testing.T) {
	sentinel := errors.New("boom")
	commandBus := NewCommandBus()
	require.NoError(t, commandBus.Register(pingCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		return sentinel
	})))

	err := commandBus.Send(context.Background(), pingCommand{Name: "Alex"})
	assert.ErrorIs(t, err, sentinel)
}

func TestCommandBus_MetricsMiddleware(t *testing.T) {
	metrics := &recordingMetrics{}
	commandBus := NewCommandBus(MetricsMiddleware(metrics))
	fail := true
	require.NoError(t, commandBus.Register(pingCommand{}, CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		if fail {
			return errors.New("boom")
		}
		return nil
	})))

	_ = commandBus.Send(context.Background(), pingCommand{Name: "Alex"})
	fail = false
	require.NoError(t, commandBus.Send(context.Background(), pingCommand{Name: "Alex"}))

	assert.Equal(t, []string{"command_errors:pingCommand", "command_success:pingCommand"}, metrics.increments)
	assert.Len(t, metrics.observed, 2)
}

func TestPipeline_Order(t *testing.T) {
	var trace []string
	tag := func(name string) Middleware {
		return func(next CommandHandler) CommandHandler {
			return CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
				trace = append(trace, name)
				return next.Handle(ctx, cmd)
			})
		}
	}

	handler := NewPipeline(tag("outer"), tag("inner")).Execute(
		CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
			trace = append(trace, "handler")
			return nil
		}),
	)

	require.NoError(t, handler.Handle(context.Background(), pingCommand{Name: "x"}))
	assert.Equal(t, []string{"outer", "inner", "handler"}, trace)
}
