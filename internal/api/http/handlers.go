// Package http exposes contributors data and avatar graphs over http.
package http

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/avatargrid/internal/app"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewContributorsHandler creates handlerfunc returning contributor records json.
// Methods other than GET get 404 with empty body.
func NewContributorsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		data, err := service.Contributors(r.Context())
		if err != nil {
			l.Errorf("contributors handler: %v", err)
			writeError(w, "Invalid request", "Unable to read contributors")
			return
		}

		w.Header().Set("Content-type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// NewGraphHandler creates handlerfunc returning svg graph with avatars referenced by url.
func NewGraphHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		q := r.URL.Query()
		svg, err := service.Graph(r.Context(), q.Get("size"), q.Get("columns"))
		if err != nil {
			if !app.IsInvalidRequestError(err) {
				l.Errorf("graph handler: %v", err)
			}
			writeError(w, "Invalid parameters", err.Error())
			return
		}

		h := w.Header()
		h.Set("Content-Type", "image/svg+xml")
		h.Set("Cache-Control", "public, max-age=3600")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(svg)
	}
}

// NewInlineGraphHandler creates handlerfunc returning svg graph with avatars inlined as data uris.
// Errors are logged and reported with generic message.
func NewInlineGraphHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		q := r.URL.Query()
		svg, err := service.InlineGraph(r.Context(), q.Get("size"), q.Get("columns"))
		if err != nil {
			l.Errorf("svg generation error: %v", err)
			writeError(w, "Invalid request", "Unable to generate SVG")
			return
		}

		h := w.Header()
		h.Set("Content-Type", "image/svg+xml")
		h.Set("Cache-Control", "public, max-age=86400")
		h.Set("CDN-Cache-Control", "max-age=86400")
		h.Set("Vercel-CDN-Cache-Control", "max-age=86400")
		h.Set("Content-Security-Policy", "default-src 'none'; img-src 'self' data:;")
		h.Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(svg)
	}
}

func writeError(w http.ResponseWriter, kind string, message string) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(errorResponse{
		Error:   kind,
		Message: message,
	})
}
