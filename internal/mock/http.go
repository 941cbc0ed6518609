// Package mock contains hand written fakes shared by adapter and transport tests.
package mock

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"sync"
)

// HTTPDoer mocks http.Client.
// Statuses, Bodies and Headers are used in round robin manner, one element per Do call.
type HTTPDoer struct {
	Statuses []int
	Bodies   [][]byte
	Headers  []http.Header

	DoFunc func(*http.Request) (*http.Response, error)

	m         sync.Mutex
	requests  []*http.Request
	responses []*http.Response
	i         int
}

// Do fakes executing http request.
func (d *HTTPDoer) Do(r *http.Request) (*http.Response, error) {
	d.m.Lock()
	defer d.m.Unlock()
	defer func() {
		d.i++
	}()

	d.requests = append(d.requests, r)

	if d.DoFunc != nil {
		return d.DoFunc(r)
	}

	status := http.StatusOK
	if len(d.Statuses) > 0 {
		status = d.Statuses[d.i%len(d.Statuses)]
	}
	var data []byte
	if len(d.Bodies) > 0 {
		data = d.Bodies[d.i%len(d.Bodies)]
	}
	body := ioutil.NopCloser(bytes.NewBuffer(data))

	header := http.Header{}
	if len(d.Headers) > 0 {
		header = d.Headers[d.i%len(d.Headers)]
	}

	response := &http.Response{
		StatusCode: status,
		Body:       body,
		Header:     header,
		Request:    r,
	}
	d.responses = append(d.responses, response)

	return response, nil
}

// Requests returns requests received so far.
func (d *HTTPDoer) Requests() []*http.Request {
	d.m.Lock()
	defer d.m.Unlock()

	return append([]*http.Request(nil), d.requests...)
}
