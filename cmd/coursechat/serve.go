package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	chathttp "github.com/mrunalid-blip/coursechat/http"
)

// shutdownGrace bounds graceful shutdown after a termination signal.
const shutdownGrace = 10 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	handler := chathttp.NewHandler(deps.Asker, deps.Catalog, deps.Contacts, deps.Logger)
	server := chathttp.NewServer(c.Addr, handler, deps.Logger)

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	deps.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
