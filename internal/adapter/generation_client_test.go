package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

func newTestClient(url string) *HTTPGenerationClient {
	return NewHTTPGenerationClient(m.Config{
		WorkspaceRoot:    "/w",
		Framework:        "angular",
		FrameworkVersion: "17.0.2",
		TestFramework:    m.TestFrameworkKarma,
		ScriptTarget:     "typescript",
		APIHost:          url + "/",
		APITimeout:       5 * time.Second,
		GenerateRetries:  2,
		ClientVersion:    "1.2.3",
	})
}

func sampleGenerateRequest() GenerateRequest {
	return GenerateRequest{
		Source: m.SourceFile{
			Path:      "/w/src/app/app.component.ts",
			Content:   []byte("export class AppComponent {}"),
			Companion: &m.File{Path: "/w/src/app/app.component.html", Content: []byte("<h1></h1>")},
		},
		Test: m.TestFile{Path: "/w/src/app/app.component.spec.ts", Created: true},
		Diff: "+export class AppComponent {}",
	}
}

func TestHTTPGenerationClient_GenerateTest(t *testing.T) {
	t.Run("sends project metadata and relative paths", func(t *testing.T) {
		var (
			received  generateTestRequest
			requestID string
			userAgent string
		)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, generatePath, r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			requestID = r.Header.Get("X-Request-Id")
			userAgent = r.Header.Get("User-Agent")

			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = w.Write([]byte(`{"testFiles":{"src/app/app.component.spec.ts":"describe('x', () => {});"}}`))
		}))
		defer server.Close()

		content, err := newTestClient(server.URL).GenerateTest(context.Background(), sampleGenerateRequest())
		require.NoError(t, err)
		assert.Equal(t, "describe('x', () => {});", content)

		assert.Equal(t, "angular", received.Project.Framework)
		assert.Equal(t, "17.0.2", received.Project.FrameworkVersion)
		assert.Equal(t, "karma", received.Project.TestFramework)
		assert.Equal(t, "src/app/app.component.ts", received.Source.Path)
		require.NotNil(t, received.Companion)
		assert.Equal(t, "src/app/app.component.html", received.Companion.Path)
		assert.Nil(t, received.TestFile, "placeholder test content is not sent")
		assert.Equal(t, "+export class AppComponent {}", received.Diff)

		_, err = uuid.Parse(requestID)
		assert.NoError(t, err)
		assert.Equal(t, "deepunit/1.2.3", userAgent)
	})

	t.Run("existing test content is sent", func(t *testing.T) {
		var received generateTestRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = w.Write([]byte(`{"testFiles":{"whatever.spec.ts":"new"}}`))
		}))
		defer server.Close()

		req := sampleGenerateRequest()
		req.Test = m.TestFile{Path: req.Test.Path, Content: []byte("old"), Existed: true}

		content, err := newTestClient(server.URL).GenerateTest(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "new", content, "single entry under another key is accepted")
		require.NotNil(t, received.TestFile)
		assert.Equal(t, "old", received.TestFile.Content)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}

			_, _ = w.Write([]byte(`{"testFiles":{"src/app/app.component.spec.ts":"ok"}}`))
		}))
		defer server.Close()

		content, err := newTestClient(server.URL).GenerateTest(context.Background(), sampleGenerateRequest())
		require.NoError(t, err)
		assert.Equal(t, "ok", content)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("gives up after the retry bound", func(t *testing.T) {
		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).GenerateTest(context.Background(), sampleGenerateRequest())
		require.ErrorIs(t, err, ErrAPI)
		assert.True(t, IsAPIError(err))
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("timeouts are retried", func(t *testing.T) {
		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				time.Sleep(300 * time.Millisecond)
			}

			_, _ = w.Write([]byte(`{"testFiles":{"a.spec.ts":"ok"}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		client.httpClient.Timeout = 100 * time.Millisecond

		content, err := client.GenerateTest(context.Background(), sampleGenerateRequest())
		require.NoError(t, err)
		assert.Equal(t, "ok", content)
		assert.Equal(t, int32(2), calls.Load())
	})

	nonRetryable := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "client error", status: http.StatusBadRequest, body: `{"error":"bad"}`, wantErr: ErrAPI},
		{name: "error payload", status: http.StatusOK, body: `{"error":"model overloaded"}`, wantErr: ErrAPI},
		{name: "malformed response", status: http.StatusOK, body: `<html>`, wantErr: ErrParse},
		{name: "ambiguous files", status: http.StatusOK, body: `{"testFiles":{"a":"1","b":"2"}}`, wantErr: ErrParse},
		{name: "no files", status: http.StatusOK, body: `{"testFiles":{}}`, wantErr: ErrParse},
	}

	for _, tt := range nonRetryable {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).GenerateTest(context.Background(), sampleGenerateRequest())
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsAPIError(err))
			assert.Equal(t, int32(1), calls.Load())
		})
	}

	t.Run("connection refused is not retried", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := newTestClient(url)
		client.backoff = time.Hour

		_, err := client.GenerateTest(context.Background(), sampleGenerateRequest())
		require.ErrorIs(t, err, ErrNetwork)
		assert.True(t, IsAPIError(err))
	})
}

func TestHTTPGenerationClient_FixTest(t *testing.T) {
	req := FixRequest{
		Source:  m.SourceFile{Path: "/w/src/foo.ts", Content: []byte("export const foo = 1;")},
		Test:    m.TestFile{Path: "/w/src/foo.test.ts", Content: []byte("broken")},
		Diff:    "+export const foo = 1;",
		Failure: m.Failure{Message: "expected 1 to be 2", Location: "3:5"},
	}

	t.Run("returns fixed content", func(t *testing.T) {
		var received fixTestRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, fixPath, r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = w.Write([]byte(`{"fixedTest":"fixed"}`))
		}))
		defer server.Close()

		content, err := newTestClient(server.URL).FixTest(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "fixed", content)
		assert.Equal(t, "expected 1 to be 2", received.Failure.Message)
		assert.Equal(t, "3:5", received.Failure.Location)
		assert.Equal(t, "src/foo.test.ts", received.TestFile.Path)
		assert.Equal(t, "broken", received.TestFile.Content)
	})

	t.Run("single attempt", func(t *testing.T) {
		var calls atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FixTest(context.Background(), req)
		require.ErrorIs(t, err, ErrAPI)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("empty fix", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"fixedTest":"  "}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FixTest(context.Background(), req)
		require.ErrorIs(t, err, ErrParse)
	})

	t.Run("error payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"error":"cannot fix"}`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).FixTest(context.Background(), req)
		require.ErrorIs(t, err, ErrAPI)
		assert.Contains(t, err.Error(), "cannot fix")
	})
}
