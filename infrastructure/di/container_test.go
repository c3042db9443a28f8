package di

import (
	"context"
	"testing"

	"socialgraph/application/commands"
	"socialgraph/application/queries"
	"socialgraph/infrastructure/config"
	pkgerrors "socialgraph/pkg/errors"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddress: ":0",
		Environment:   "test",
		LogLevel:      "error",
		EnableMetrics: true,
	}
}

func TestInitializeContainer(t *testing.T) {
	container, err := InitializeContainer(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	assert.NotNil(t, container.Logger)
	assert.NotNil(t, container.Store)
	assert.NotNil(t, container.Dispatcher)
	assert.NotNil(t, container.CommandBus)
	assert.NotNil(t, container.QueryBus)
}

func TestInitializeContainer_InvalidLogLevel(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "loud"

	_, err := InitializeContainer(cfg)

	assert.Error(t, err)
}

func TestContainer_BusesShareOneNetwork(t *testing.T) {
	ctx := context.Background()
	container, err := InitializeContainer(testConfig())
	require.NoError(t, err)

	require.NoError(t, container.CommandBus.Send(ctx, commands.AddPersonCommand{Name: "Alex"}))
	require.NoError(t, container.CommandBus.Send(ctx, commands.AddPersonCommand{Name: "Jordan"}))
	require.NoError(t, container.CommandBus.Send(ctx, commands.AddFriendshipCommand{PersonA: "Alex", PersonB: "Jordan"}))

	err = container.CommandBus.Send(ctx, commands.AddPersonCommand{Name: "Alex"})
	assert.True(t, pkgerrors.IsDuplicatePerson(err))

	result, err := container.QueryBus.Ask(ctx, queries.GetPersonQuery{Name: "Alex"})
	require.NoError(t, err)
	person, ok := result.(*queries.GetPersonResult)
	require.True(t, ok)
	assert.Equal(t, []string{"Jordan"}, person.Friends)

	result, err = container.QueryBus.Ask(ctx, queries.DumpNetworkQuery{})
	require.NoError(t, err)
	dump, ok := result.(*queries.DumpNetworkResult)
	require.True(t, ok)
	assert.Equal(t, 2, dump.PersonCount)
	assert.Equal(t, 1, dump.FriendshipCount)

	// Published events reach the metrics subscriber
	assert.Equal(t, float64(2), testutil.ToFloat64(container.Metrics.PeopleAdded))
	assert.Equal(t, float64(1), testutil.ToFloat64(container.Metrics.FriendshipsFormed))
}
