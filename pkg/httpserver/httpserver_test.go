package httpserver_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/deviceprint/pkg/httpserver"
)

func TestServerRun(t *testing.T) {
	t.Parallel()

	t.Run("context cancellation shuts down cleanly", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(httpserver.Config{
			Addr:            "127.0.0.1:0",
			ShutdownTimeout: time.Second,
		}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- srv.Run(ctx, http.NewServeMux())
		}()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("server did not shut down after context cancellation")
		}
	})

	t.Run("unbindable address reports start error", func(t *testing.T) {
		t.Parallel()

		srv := httpserver.New(httpserver.Config{
			Addr:            "256.256.256.256:99999",
			ShutdownTimeout: time.Second,
		}, nil)

		err := srv.Run(context.Background(), nil)
		assert.ErrorIs(t, err, httpserver.ErrStart)
	})
}
