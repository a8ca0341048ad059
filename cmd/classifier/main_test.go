package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_InvalidAddress(t *testing.T) {
	err := run(context.Background(), "not-an-address", 0.5, "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestRun_InvalidLogLevel(t *testing.T) {
	assert.Error(t, run(context.Background(), "127.0.0.1:0", 0.5, "loud"))
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, run(ctx, "127.0.0.1:0", 0.5, "error"))
}
