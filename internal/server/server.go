package server

import (
	"context"
	"errors"
	"net/http"
)

// Server wraps http.Server so the composition root can run it in a goroutine
// and drain it on shutdown.
type Server struct {
	http *http.Server
}

func New(port string, handler http.Handler) *Server {
	return &Server{
		http: &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		},
	}
}

func (s *Server) Start() error {
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
