package handlers

import (
	"context"
	"math"
	"testing"

	"socialgraph/application/queries"
	"socialgraph/domain/core/aggregates"
	"socialgraph/infrastructure/persistence/memory"
	pkgerrors "socialgraph/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seededStore(t *testing.T) *memory.NetworkStore {
	t.Helper()
	network := aggregates.NewNetwork()
	for _, name := range []string{"Alex", "Jordan", "Morgan"} {
		_, err := network.AddPerson(name)
		require.NoError(t, err)
	}
	require.NoError(t, network.AddFriendship("Alex", "Jordan"))
	require.NoError(t, network.AddFriendship("Alex", "Morgan"))
	return memory.NewNetworkStore(network)
}

func TestGetPersonHandler_Handle(t *testing.T) {
	handler := NewGetPersonHandler(seededStore(t), zap.NewNop())

	result, err := handler.Handle(context.Background(), queries.GetPersonQuery{Name: "Alex"})

	require.NoError(t, err)
	assert.Equal(t, &queries.GetPersonResult{
		Name:        "Alex",
		Friends:     []string{"Jordan", "Morgan"},
		FriendCount: 2,
	}, result)
}

func TestGetPersonHandler_Handle_NotFound(t *testing.T) {
	handler := NewGetPersonHandler(seededStore(t), zap.NewNop())

	result, err := handler.Handle(context.Background(), queries.GetPersonQuery{Name: "Johnny"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestDumpNetworkHandler_Handle(t *testing.T) {
	tests := []struct {
		name      string
		query     queries.DumpNetworkQuery
		wantNames []string
	}{
		{name: "everyone", query: queries.DumpNetworkQuery{}, wantNames: []string{"Alex", "Jordan", "Morgan"}},
		{name: "limit", query: queries.DumpNetworkQuery{Limit: 2}, wantNames: []string{"Alex", "Jordan"}},
		{name: "offset", query: queries.DumpNetworkQuery{Offset: 1}, wantNames: []string{"Jordan", "Morgan"}},
		{name: "window past end", query: queries.DumpNetworkQuery{Offset: 5, Limit: 2}, wantNames: []string{}},
		{name: "huge limit", query: queries.DumpNetworkQuery{Offset: 1, Limit: math.MaxInt}, wantNames: []string{"Jordan", "Morgan"}},
	}

	handler := NewDumpNetworkHandler(seededStore(t), zap.NewNop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handler.Handle(context.Background(), tt.query)
			require.NoError(t, err)

			names := []string{}
			for _, connection := range result.People {
				names = append(names, connection.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, 3, result.PersonCount)
			assert.Equal(t, 2, result.FriendshipCount)
			assert.NotEmpty(t, result.NetworkID)
			assert.False(t, result.CreatedAt.IsZero())
			assert.False(t, result.UpdatedAt.Before(result.CreatedAt))
		})
	}
}

func TestQueries_ValidateRejectsAsValidation(t *testing.T) {
	for _, query := range []interface{ Validate() error }{
		queries.GetPersonQuery{},
		queries.DumpNetworkQuery{Offset: -1},
		queries.DumpNetworkQuery{Limit: -1},
	} {
		err := query.Validate()
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err), "%T", query)
	}
	assert.NoError(t, queries.DumpNetworkQuery{}.Validate())
}
