// Package xhttp implements the http plumbing of the live preview server.
package xhttp

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"oss.terrastruct.com/xcontext"
)

// NewServer returns a server with sane limits for a local preview server.
// Requests are tiny GETs and websocket upgrades, responses are rendered
// HTML pages.
func NewServer(log *log.Logger, h http.Handler) *http.Server {
	return &http.Server{
		MaxHeaderBytes: 1 << 16,
		ReadTimeout:    time.Minute,
		WriteTimeout:   time.Minute,
		IdleTimeout:    time.Hour,
		ErrorLog:       log,
		Handler:        http.MaxBytesHandler(h, 1<<16),
	}
}

// Serve serves s on l until ctx is canceled, then shuts down gracefully
// within shutdownTimeout. Hijacked websocket connections are not waited on;
// the watcher tracks those itself.
func Serve(ctx context.Context, shutdownTimeout time.Duration, s *http.Server, l net.Listener) error {
	s.BaseContext = func(net.Listener) context.Context {
		return ctx
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Serve(l)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		sctx := xcontext.WithoutCancel(ctx)
		sctx, cancel := context.WithTimeout(sctx, shutdownTimeout)
		defer cancel()
		return s.Shutdown(sctx)
	}
}
