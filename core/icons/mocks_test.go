package icons

import (
	"context"
	"io"
	"strings"
	"sync"

	"iconify-proxy-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu      sync.Mutex
	urls    []string
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.urls = append(m.urls, url)
	m.mu.Unlock()

	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return &mockResponse{statusCode: 200, body: "{}"}, nil
}

func (m *mockHTTPClient) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.urls...)
}

// respondWith returns a getFunc that always answers with the given status and body
func respondWith(statusCode int, body string) func(ctx context.Context, url string) (interfaces.Response, error) {
	return func(ctx context.Context, url string) (interfaces.Response, error) {
		return &mockResponse{statusCode: statusCode, body: body}, nil
	}
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	closed     bool
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return &trackingBody{Reader: strings.NewReader(m.body), resp: m}
}

type trackingBody struct {
	io.Reader
	resp *mockResponse
}

func (b *trackingBody) Close() error {
	b.resp.closed = true
	return nil
}

// mockLogger records log entries for assertions
type mockLogger struct {
	mu   sync.Mutex
	logs []logEntry
}

type logEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, logEntry{Level: level, Message: msg, Fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("DEBUG", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("INFO", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("WARN", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("ERROR", msg, fields) }
