package http

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Service provides contributors data and graphs.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/avatargrid/internal/api/http Service
type Service interface {
	Contributors(ctx context.Context) ([]byte, error)
	Graph(ctx context.Context, size, columns string) ([]byte, error)
	InlineGraph(ctx context.Context, size, columns string) ([]byte, error)
}

// NewMux creates router for app's http server.
// timeout bounds inlined graph rendering; avatars not fetched in time are replaced with placeholder.
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)
	loggingMiddleware := NewLoggingMiddleware(l)

	m := http.NewServeMux()
	m.HandleFunc("/api/contributors", loggingMiddleware(
		NewContributorsHandler(service, l),
	))
	m.HandleFunc("/api/graph", loggingMiddleware(
		NewGraphHandler(service, l),
	))
	m.HandleFunc("/api/graph.svg", loggingMiddleware(
		timeoutMiddleware(NewInlineGraphHandler(service, l)),
	))

	return m
}
