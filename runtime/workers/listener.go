package workers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const shutdownGracePeriod = 5 * time.Second

// ListenerWorker serves the websocket endpoint until the context is
// canceled, then shuts the HTTP server down gracefully.
type ListenerWorker struct {
	log    *slog.Logger
	server *http.Server
}

func NewListenerWorker(log *slog.Logger, address string, handler http.Handler) *ListenerWorker {
	return &ListenerWorker{
		log:    log,
		server: &http.Server{Addr: address, Handler: handler},
	}
}

func (w *ListenerWorker) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		w.log.Info("Listening for websocket connections", "address", w.server.Addr)
		errChan <- w.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := w.server.Shutdown(shutdownCtx); err != nil {
			w.log.Warn("Listener shutdown was not clean", "err", err)
		}
		return nil
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
