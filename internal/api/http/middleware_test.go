package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewTimeoutMiddleware(t *testing.T) {
	t.Parallel()

	m := NewTimeoutMiddleware(time.Millisecond)
	h := func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)

		select {
		case <-r.Context().Done():
		default:
			t.Error("request context not canceled")
		}
	}

	r, _ := http.NewRequest(http.MethodGet, "testurl", nil)
	m(h)(nil, r)
}

func TestNewLoggingMiddleware(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := logrus.New()
	l.Out = buf
	l.Formatter = &logrus.JSONFormatter{}

	m := NewLoggingMiddleware(l)
	h := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}

	r, _ := http.NewRequest(http.MethodPost, "/api/graph", nil)
	w := httptest.NewRecorder()
	m(h)(w, r)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"method":"POST"`)
	assert.Contains(t, buf.String(), `"path":"/api/graph"`)
}
