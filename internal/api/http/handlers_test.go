package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/avatargrid/internal/api/http/mock"
	"github.com/m-zajac/avatargrid/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type handlerTest struct {
	name        string
	setupMock   func(*mock.MockService)
	newRequest  func() *http.Request
	wantStatus  int
	wantBody    string
	wantHeaders map[string]string
}

func runHandlerTests(t *testing.T, newHandler func(Service, logrus.FieldLogger) http.HandlerFunc, tests []handlerTest) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			l := logrus.New()
			handler := newHandler(s, l)
			req := tt.newRequest()
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			for k, v := range tt.wantHeaders {
				assert.Equal(t, v, w.Header().Get(k), "header %s", k)
			}

			body := w.Body.String()
			body = strings.Trim(body, "\n")
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func newRequest(method string, url string) func() *http.Request {
	return func() *http.Request {
		r, _ := http.NewRequest(method, url, nil)
		return r
	}
}

func TestNewContributorsHandler(t *testing.T) {
	t.Parallel()

	runHandlerTests(t, NewContributorsHandler, []handlerTest{
		{
			name: "valid response",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Contributors(gomock.Any()).
					Return([]byte(`[{"login":"tester"}]`), nil)
			},
			newRequest: newRequest(http.MethodGet, "testurl"),
			wantStatus: http.StatusOK,
			wantBody:   `[{"login":"tester"}]`,
			wantHeaders: map[string]string{
				"Content-type": "application/json; charset=utf-8",
			},
		},
		{
			name:       "post method",
			newRequest: newRequest(http.MethodPost, "testurl"),
			wantStatus: http.StatusNotFound,
			wantBody:   ``,
		},
		{
			name: "dataset error",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Contributors(gomock.Any()).
					Return(nil, app.DatasetError("invalid authors data structure"))
			},
			newRequest: newRequest(http.MethodGet, "testurl"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request","message":"Unable to read contributors"}`,
		},
	})
}

func TestNewGraphHandler(t *testing.T) {
	t.Parallel()

	runHandlerTests(t, NewGraphHandler, []handlerTest{
		{
			name: "default params values",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Graph(gomock.Any(), "", "").
					Return([]byte("<svg/>"), nil)
			},
			newRequest: newRequest(http.MethodGet, "testurl"),
			wantStatus: http.StatusOK,
			wantBody:   `<svg/>`,
			wantHeaders: map[string]string{
				"Content-Type":  "image/svg+xml",
				"Cache-Control": "public, max-age=3600",
			},
		},
		{
			name: "params values from url query",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Graph(gomock.Any(), "64", "7").
					Return([]byte("<svg/>"), nil)
			},
			newRequest: newRequest(http.MethodGet, "testurl?size=64&columns=7"),
			wantStatus: http.StatusOK,
			wantBody:   `<svg/>`,
		},
		{
			name: "bad request",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Graph(gomock.Any(), "x", "").
					Return(nil, app.InvalidRequestError(`invalid size value "x"`))
			},
			newRequest: newRequest(http.MethodGet, "testurl?size=x"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid parameters","message":"invalid size value \"x\""}`,
			wantHeaders: map[string]string{
				"Content-type": "application/json; charset=utf-8",
			},
		},
		{
			name: "service error",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					Graph(gomock.Any(), "", "").
					Return(nil, errors.New("error"))
			},
			newRequest: newRequest(http.MethodGet, "testurl"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid parameters","message":"error"}`,
		},
		{
			name:       "put method",
			newRequest: newRequest(http.MethodPut, "testurl"),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   ``,
		},
	})
}

func TestNewInlineGraphHandler(t *testing.T) {
	t.Parallel()

	runHandlerTests(t, NewInlineGraphHandler, []handlerTest{
		{
			name: "valid response",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					InlineGraph(gomock.Any(), "20", "3").
					Return([]byte("<svg/>"), nil)
			},
			newRequest: newRequest(http.MethodGet, "testurl?size=20&columns=3"),
			wantStatus: http.StatusOK,
			wantBody:   `<svg/>`,
			wantHeaders: map[string]string{
				"Content-Type":             "image/svg+xml",
				"Cache-Control":            "public, max-age=86400",
				"CDN-Cache-Control":        "max-age=86400",
				"Vercel-CDN-Cache-Control": "max-age=86400",
				"Content-Security-Policy":  "default-src 'none'; img-src 'self' data:;",
				"X-Content-Type-Options":   "nosniff",
			},
		},
		{
			name: "internal error details are hidden",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					InlineGraph(gomock.Any(), "", "").
					Return(nil, app.DatasetError("invalid authors data structure"))
			},
			newRequest: newRequest(http.MethodGet, "testurl"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request","message":"Unable to generate SVG"}`,
		},
		{
			name:       "delete method",
			newRequest: newRequest(http.MethodDelete, "testurl"),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   ``,
			wantHeaders: map[string]string{
				"Allow": "GET",
			},
		},
	})
}
