package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"

	m "deepunit.dev/pkg/deepunit/internal/model"
)

const (
	generatePath = "/generate-test"
	fixPath      = "/fix-test"

	// maxErrorBody bounds how much of a failed response ends up in errors.
	maxErrorBody = 512
)

// GenerateRequest carries everything the service needs to write a test.
type GenerateRequest struct {
	Source m.SourceFile
	Test   m.TestFile
	Diff   string
}

// FixRequest asks the service to repair a test for one failure.
type FixRequest struct {
	Source  m.SourceFile
	Test    m.TestFile
	Diff    string
	Failure m.Failure
}

// GenerationClient talks to the remote test generation service.
type GenerationClient interface {
	// GenerateTest returns generated content for req.Test.Path. Transient
	// failures are retried a bounded number of times.
	GenerateTest(ctx context.Context, req GenerateRequest) (string, error)

	// FixTest returns corrected test content. It makes a single attempt.
	FixTest(ctx context.Context, req FixRequest) (string, error)
}

// HTTPGenerationClient implements GenerationClient over HTTP/JSON.
type HTTPGenerationClient struct {
	baseURL    string
	httpClient *http.Client
	project    projectInfo
	root       string
	retries    int
	backoff    time.Duration
}

// NewHTTPGenerationClient constructs a client for cfg.APIHost.
func NewHTTPGenerationClient(cfg m.Config) *HTTPGenerationClient {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = cfg.APITimeout

	return &HTTPGenerationClient{
		baseURL:    strings.TrimRight(cfg.APIHost, "/"),
		httpClient: httpClient,
		project: projectInfo{
			Framework:        cfg.Framework,
			FrameworkVersion: cfg.FrameworkVersion,
			TestFramework:    cfg.TestFramework,
			ScriptTarget:     cfg.ScriptTarget,
			ClientVersion:    cfg.ClientVersion,
		},
		root:    string(cfg.WorkspaceRoot),
		retries: cfg.GenerateRetries,
		backoff: cfg.RetryBackoff,
	}
}

type projectInfo struct {
	Framework        string `json:"framework"`
	FrameworkVersion string `json:"frameworkVersion,omitempty"`
	TestFramework    string `json:"testFramework"`
	ScriptTarget     string `json:"scriptTarget"`
	ClientVersion    string `json:"clientVersion,omitempty"`
}

type filePayload struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

type failurePayload struct {
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

type generateTestRequest struct {
	Project   projectInfo  `json:"project"`
	Diff      string       `json:"diff"`
	Source    filePayload  `json:"source"`
	Companion *filePayload `json:"companion,omitempty"`
	TestFile  *filePayload `json:"testFile,omitempty"`
}

type generateTestResponse struct {
	TestFiles map[string]string `json:"testFiles"`
	Error     string            `json:"error"`
}

type fixTestRequest struct {
	Project   projectInfo    `json:"project"`
	Diff      string         `json:"diff"`
	Source    filePayload    `json:"source"`
	Companion *filePayload   `json:"companion,omitempty"`
	TestFile  filePayload    `json:"testFile"`
	Failure   failurePayload `json:"failure"`
}

type fixTestResponse struct {
	FixedTest string `json:"fixedTest"`
	Error     string `json:"error"`
}

// GenerateTest implements GenerationClient.
func (c *HTTPGenerationClient) GenerateTest(ctx context.Context, req GenerateRequest) (string, error) {
	testPath := c.relative(req.Test.Path)

	payload := generateTestRequest{
		Project:   c.project,
		Diff:      req.Diff,
		Source:    filePayload{Path: c.relative(req.Source.Path), Content: string(req.Source.Content)},
		Companion: c.companion(req.Source),
	}
	if req.Test.Existed {
		payload.TestFile = &filePayload{Path: testPath, Content: string(req.Test.Content)}
	}

	var (
		resp    generateTestResponse
		lastErr error
	)

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			slog.Warn("Retrying test generation", "path", req.Source.Path, "attempt", attempt+1, "error", lastErr)

			if err := c.wait(ctx); err != nil {
				return "", wrapError("generate_test", testPath, err.Error(), ErrNetwork)
			}
		}

		resp = generateTestResponse{}

		retry, err := c.post(ctx, generatePath, payload, &resp)
		if err == nil {
			lastErr = nil
			break
		}

		lastErr = err
		if !retry {
			return "", err
		}
	}

	if lastErr != nil {
		return "", lastErr
	}

	if resp.Error != "" {
		return "", wrapError("generate_test", testPath, resp.Error, ErrAPI)
	}

	return pickTestFile(resp.TestFiles, testPath, string(req.Test.Path))
}

// pickTestFile selects the content for the requested test path. A single
// entry under another key is accepted as the answer.
func pickTestFile(files map[string]string, candidates ...string) (string, error) {
	for _, key := range candidates {
		if content, ok := files[key]; ok {
			return content, nil
		}
	}

	if len(files) == 1 {
		for _, content := range files {
			return content, nil
		}
	}

	return "", wrapError("generate_test", candidates[0], fmt.Sprintf("response holds %d test files", len(files)), ErrParse)
}

// FixTest implements GenerationClient.
func (c *HTTPGenerationClient) FixTest(ctx context.Context, req FixRequest) (string, error) {
	testPath := c.relative(req.Test.Path)

	payload := fixTestRequest{
		Project:   c.project,
		Diff:      req.Diff,
		Source:    filePayload{Path: c.relative(req.Source.Path), Content: string(req.Source.Content)},
		Companion: c.companion(req.Source),
		TestFile:  filePayload{Path: testPath, Content: string(req.Test.Content)},
		Failure:   failurePayload{Message: req.Failure.Message, Location: req.Failure.Location},
	}

	var resp fixTestResponse
	if _, err := c.post(ctx, fixPath, payload, &resp); err != nil {
		return "", err
	}

	if resp.Error != "" {
		return "", wrapError("fix_test", testPath, resp.Error, ErrAPI)
	}

	if strings.TrimSpace(resp.FixedTest) == "" {
		return "", wrapError("fix_test", testPath, "empty fixedTest", ErrParse)
	}

	return resp.FixedTest, nil
}

// post sends payload as JSON and decodes a successful response into out. The
// boolean reports whether the failure is transient.
func (c *HTTPGenerationClient) post(ctx context.Context, endpoint string, payload, out any) (bool, error) {
	op := strings.TrimPrefix(endpoint, "/")

	body, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return false, wrapError(op, c.baseURL, err.Error(), ErrNetwork)
	}

	requestID := uuid.NewString()

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	if c.project.ClientVersion != "" {
		req.Header.Set("User-Agent", "deepunit/"+c.project.ClientVersion)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return isTransient(err), wrapError(op, c.baseURL, err.Error(), ErrNetwork)
	}

	defer func() { _ = resp.Body.Close() }()

	slog.Debug("Generation service responded", "endpoint", endpoint, "status", resp.StatusCode,
		"requestId", requestID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		retry := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests

		return retry, wrapError(op, c.baseURL, fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))), ErrAPI)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, wrapError(op, c.baseURL, err.Error(), ErrParse)
	}

	return false, nil
}

// isTransient reports whether a transport error is worth retrying. Refused
// connections are not: the service is not there.
func isTransient(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, syscall.ECONNRESET) || errors.Is(err, io.ErrUnexpectedEOF)
}

func (c *HTTPGenerationClient) wait(ctx context.Context) error {
	if c.backoff <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.backoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *HTTPGenerationClient) companion(source m.SourceFile) *filePayload {
	if source.Companion == nil {
		return nil
	}

	return &filePayload{Path: c.relative(source.Companion.Path), Content: string(source.Companion.Content)}
}

// relative renders path relative to the workspace root with forward slashes.
func (c *HTTPGenerationClient) relative(path m.Path) string {
	if c.root != "" {
		if rel, err := filepath.Rel(c.root, string(path)); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}

	return filepath.ToSlash(string(path))
}
