package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP listener lifecycle.
type Server struct {
	http *http.Server
}

func New(router *gin.Engine, port string) *Server {
	return &Server{
		http: &http.Server{
			Addr:    ":" + port,
			Handler: router,
		},
	}
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
