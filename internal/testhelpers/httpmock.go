package testhelpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// Stub is one canned HTTP response, matched by method and path.
type Stub struct {
	Method     string
	Path       string
	StatusCode int
	RespBody   []byte

	calls int
}

// StubTransport is an http.RoundTripper serving canned responses. It lets
// tests drive the real OpenAI client wire path without the network: inject it
// via option.WithHTTPClient plus option.WithBaseURL.
type StubTransport struct {
	mutex sync.Mutex
	stubs []*Stub
}

func NewStubTransport() *StubTransport {
	return &StubTransport{}
}

// StubJSON registers a canned JSON response for method+path.
func (t *StubTransport) StubJSON(method string, path string, statusCode int, v interface{}) *Stub {
	body, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("testhelpers: failed to marshal stub body: %v", err))
	}

	stub := &Stub{Method: method, Path: path, StatusCode: statusCode, RespBody: body}

	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.stubs = append(t.stubs, stub)
	return stub
}

// Calls reports how many requests the stub has served.
func (t *StubTransport) Calls(method string, path string) int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	total := 0
	for _, stub := range t.stubs {
		if stub.Method == method && stub.Path == path {
			total += stub.calls
		}
	}
	return total
}

func (t *StubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if req.Body != nil {
		defer req.Body.Close()
		// drain so the client can reuse the connection bookkeeping
		_, _ = io.Copy(io.Discard, req.Body)
	}

	for _, stub := range t.stubs {
		if stub.Method != req.Method || stub.Path != req.URL.Path {
			continue
		}

		stub.calls++

		header := make(http.Header)
		header.Set("Content-Type", "application/json")

		return &http.Response{
			StatusCode: stub.StatusCode,
			Status:     http.StatusText(stub.StatusCode),
			Header:     header,
			Body:       io.NopCloser(bytes.NewReader(stub.RespBody)),
			Request:    req,
		}, nil
	}

	return nil, fmt.Errorf("testhelpers: no stub for request %s %s", req.Method, req.URL.Path)
}
