package main

import (
	"bytes"
	"context"
	"testing"

	"socialgraph/infrastructure/config"
	"socialgraph/infrastructure/di"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	container, err := di.InitializeContainer(&config.Config{
		ServerAddress: ":0",
		Environment:   "test",
		LogLevel:      "error",
	})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), container, &out))

	assert.Equal(t,
		"Alex is friends with: Jordan, Morgan, Taylor\n"+
			"Jordan is friends with: Alex, Taylor\n"+
			"Morgan is friends with: Alex, Casey, Riley\n"+
			"Taylor is friends with: Jordan, Riley, Alex\n"+
			"Casey is friends with: Morgan, Riley\n"+
			"Riley is friends with: Taylor, Casey, Morgan\n"+
			"All test cases passed!\n",
		out.String())
}

func TestRun_FailsOnReusedNetwork(t *testing.T) {
	container, err := di.InitializeContainer(&config.Config{
		ServerAddress: ":0",
		Environment:   "test",
		LogLevel:      "error",
	})
	require.NoError(t, err)
	require.NoError(t, run(context.Background(), container, &bytes.Buffer{}))

	// A second run hits duplicate people and stops
	assert.Error(t, run(context.Background(), container, &bytes.Buffer{}))
}
