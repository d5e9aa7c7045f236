package api_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcubed/cubed/internal/api"
	"github.com/mcubed/cubed/internal/testutil"
)

func TestServerShutdownRunsClosers(t *testing.T) {
	cfg := api.DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0
	server := api.NewServer(http.NotFoundHandler(), cfg, testutil.NopLogger())

	var calls []string
	server.OnShutdown(func(context.Context) error {
		calls = append(calls, "store")
		return nil
	})
	closeErr := errors.New("close failed")
	server.OnShutdown(func(context.Context) error {
		calls = append(calls, "other")
		return closeErr
	})

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	err := server.Shutdown(context.Background())
	require.ErrorIs(t, err, closeErr)
	assert.Equal(t, []string{"store", "other"}, calls)
	assert.NoError(t, <-errCh)
}

func TestServerStartFailureRunsClosers(t *testing.T) {
	// Hold the port so the server cannot bind it
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := api.DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = ln.Addr().(*net.TCPAddr).Port
	server := api.NewServer(http.NotFoundHandler(), cfg, testutil.NopLogger())

	closed := false
	server.OnShutdown(func(context.Context) error {
		closed = true
		return nil
	})

	err = server.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error")
	assert.True(t, closed)
}
