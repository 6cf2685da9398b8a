package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	logs []LogEntry
}

type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "DEBUG", Message: msg, Fields: fields})
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "INFO", Message: msg, Fields: fields})
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "WARN", Message: msg, Fields: fields})
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "ERROR", Message: msg, Fields: fields})
}

func TestRequestLoggingMiddleware_LogsRequestMethodAndPath(t *testing.T) {
	logger := &MockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/iconify-proxy/search?query=home", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	// Should have 2 logs: request started and request completed
	require.Len(t, logger.logs, 2)

	startLog := logger.logs[0]
	assert.Equal(t, "INFO", startLog.Level)
	assert.Equal(t, "Request started", startLog.Message)
	assert.Equal(t, "GET", startLog.Fields["method"])
	assert.Equal(t, "/iconify-proxy/search", startLog.Fields["path"])
	assert.Equal(t, "query=home", startLog.Fields["query"])
	assert.NotEmpty(t, startLog.Fields["request_id"])

	completeLog := logger.logs[1]
	assert.Equal(t, "INFO", completeLog.Level)
	assert.Equal(t, "Request completed", completeLog.Message)
	assert.Equal(t, "GET", completeLog.Fields["method"])
	assert.Equal(t, "/iconify-proxy/search", completeLog.Fields["path"])
}

func TestRequestLoggingMiddleware_LogsResponseStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		responseStatus int
		expectedLogs   int
		expectError    bool
	}{
		{"200 OK", http.StatusOK, 2, false},
		{"400 Bad Request", http.StatusBadRequest, 2, false},
		{"500 Internal Server Error", http.StatusInternalServerError, 3, true},
		{"503 Service Unavailable", http.StatusServiceUnavailable, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &MockLogger{}
			middleware := RequestLoggingMiddleware(logger)

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.responseStatus)
			}))

			req := httptest.NewRequest("GET", "/test", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			require.Len(t, logger.logs, tt.expectedLogs)

			completeLog := logger.logs[1]
			assert.Equal(t, tt.responseStatus, completeLog.Fields["status"])

			if tt.expectError {
				errorLog := logger.logs[2]
				assert.Equal(t, "ERROR", errorLog.Level)
				assert.Contains(t, errorLog.Message, "server error")
			}
		})
	}
}

func TestRequestLoggingMiddleware_LogsRequestDuration(t *testing.T) {
	logger := &MockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	completeLog := logger.logs[1]
	assert.NotNil(t, completeLog.Fields["duration"])

	durationMs := completeLog.Fields["duration_ms"].(int64)
	assert.GreaterOrEqual(t, durationMs, int64(50))
}

func TestRequestLoggingMiddleware_IncludesRequestID(t *testing.T) {
	logger := &MockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	var ctxRequestID string
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxRequestID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	requestID1 := logger.logs[0].Fields["request_id"].(string)
	requestID2 := logger.logs[1].Fields["request_id"].(string)

	assert.NotEmpty(t, requestID1)
	assert.Equal(t, requestID1, requestID2)

	// UUID format
	assert.Len(t, requestID1, 36)
	assert.Contains(t, requestID1, "-")

	assert.Equal(t, requestID1, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, requestID1, ctxRequestID)
}

func TestRequestLoggingMiddleware_ReusesIncomingRequestID(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(RequestIDHeader, "host-req-42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "host-req-42", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "host-req-42", logger.logs[0].Fields["request_id"])
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rw := &responseWriter{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
	}

	rw.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
	assert.True(t, rw.written)

	// Subsequent calls should not change status
	rw.WriteHeader(http.StatusBadRequest)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rw := &responseWriter{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
	}

	rw.Write([]byte("<svg/>"))
	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.True(t, rw.written)
}

func TestRequestIDContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))

	ctx := WithRequestID(context.Background(), "abc")
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{"remote addr", nil, "10.0.0.1:5000", "10.0.0.1:5000"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.9"}, "10.0.0.1:5000", "203.0.113.9"},
		{"forwarded chain", map[string]string{"X-Forwarded-For": "198.51.100.7, 10.0.0.2"}, "10.0.0.1:5000", "198.51.100.7"},
		{"forwarded single", map[string]string{"X-Forwarded-For": "198.51.100.7"}, "10.0.0.1:5000", "198.51.100.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, extractIP(req))
		})
	}
}

type stubTransport struct {
	resp *http.Response
	err  error
	req  *http.Request
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.req = req
	return s.resp, s.err
}

func TestLoggingRoundTripper_LogsRequestAndResponse(t *testing.T) {
	logger := &MockLogger{}
	stub := &stubTransport{resp: &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}}
	rt := &LoggingRoundTripper{Transport: stub, Logger: logger}

	req := httptest.NewRequest("GET", "https://api.iconify.design/collections", nil)
	req = req.WithContext(WithRequestID(req.Context(), "req-1"))

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-1", stub.req.Header.Get(RequestIDHeader))
	assert.Empty(t, req.Header.Get(RequestIDHeader), "inbound request must not be mutated")

	require.Len(t, logger.logs, 2)
	assert.Equal(t, "DEBUG", logger.logs[0].Level)
	assert.Equal(t, "Outgoing HTTP request", logger.logs[0].Message)
	assert.Equal(t, "req-1", logger.logs[0].Fields["request_id"])
	assert.Equal(t, "https://api.iconify.design/collections", logger.logs[0].Fields["url"])
	assert.Equal(t, "Outgoing HTTP response", logger.logs[1].Message)
	assert.Equal(t, http.StatusOK, logger.logs[1].Fields["status"])
}

func TestLoggingRoundTripper_LogsFailure(t *testing.T) {
	logger := &MockLogger{}
	stub := &stubTransport{err: errors.New("connection refused")}
	rt := &LoggingRoundTripper{Transport: stub, Logger: logger}

	req := httptest.NewRequest("GET", "https://api.iconify.design/collections", nil)

	resp, err := rt.RoundTrip(req)
	assert.Nil(t, resp)
	assert.EqualError(t, err, "connection refused")

	require.Len(t, logger.logs, 2)
	failure := logger.logs[1]
	assert.Equal(t, "ERROR", failure.Level)
	assert.Equal(t, "connection refused", failure.Fields["error"])
	// A fresh ID is generated when the request carries none
	assert.Len(t, failure.Fields["request_id"], 36)
}

func TestLoggingRoundTripper_DefaultTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	logger := &MockLogger{}
	client := &http.Client{Transport: &LoggingRoundTripper{Logger: logger}}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Len(t, logger.logs, 2)
}
