package adminhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource supplies the current bearer credential. An empty token means
// no session; the request goes out without an Authorization header and the
// core API is expected to reject it.
type TokenSource interface {
	Token() string
}

// Client is the shared HTTP transport for every core-API repo.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// RequestError wraps a failed core-API call. Detail carries the
// server-provided message when one was returned, so it can be surfaced to
// the moderator verbatim.
type RequestError struct {
	Op         string
	StatusCode int
	Detail     string
	Err        error
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Detail != "" && e.StatusCode > 0:
		return fmt.Sprintf("%s: status=%d: %s", e.Op, e.StatusCode, e.Detail)
	case e.Err != nil && e.StatusCode > 0:
		return fmt.Sprintf("%s: status=%d: %v", e.Op, e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: status=%d", e.Op, e.StatusCode)
	default:
		return e.Op
	}
}

func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) (*Client, error) {
	trimmedBaseURL := strings.TrimSpace(baseURL)
	if trimmedBaseURL == "" {
		return nil, &RequestError{
			Op:  "create core api client",
			Err: errors.New("core api url is empty"),
		}
	}

	parsed, err := url.Parse(trimmedBaseURL)
	if err != nil {
		return nil, &RequestError{Op: "parse core api url", Err: err}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, &RequestError{
			Op:  "validate core api url",
			Err: fmt.Errorf("invalid core api url: %s", trimmedBaseURL),
		}
	}

	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(trimmedBaseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// IsAuthError reports a 401 from the core API: no or invalid session.
func IsAuthError(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

// IsAccessDenied reports a 403: a valid session whose principal is not a
// moderator. Kept distinct from IsAuthError so the two surface differently.
func IsAccessDenied(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// Detail extracts the server-provided message, or "" when the failure was
// local (network, decode) and only a generic fallback is appropriate.
func Detail(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Detail
	}
	return ""
}

func statusOf(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}

// DoJSON issues one JSON request. A nil responseBody discards the response.
func (c *Client) DoJSON(ctx context.Context, method, path string, query url.Values, requestBody, responseBody interface{}) error {
	if c == nil || c.httpClient == nil {
		return &RequestError{
			Op:  "do json request",
			Err: errors.New("core api client is not initialized"),
		}
	}

	var payload []byte
	if requestBody != nil {
		rawPayload, err := json.Marshal(requestBody)
		if err != nil {
			return &RequestError{Op: "marshal request body", Err: err}
		}
		payload = rawPayload
	}

	statusCode, responseBytes, err := c.do(ctx, method, path, query, payload)
	if err != nil {
		return err
	}
	if responseBody == nil || len(responseBytes) == 0 {
		return nil
	}

	if err := json.Unmarshal(responseBytes, responseBody); err != nil {
		return &RequestError{
			Op:         "decode core api response",
			StatusCode: statusCode,
			Err:        err,
		}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) (int, []byte, error) {
	if strings.TrimSpace(method) == "" {
		method = http.MethodGet
	}

	fullURL := c.baseURL + ensureLeadingSlash(path)
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if len(body) > 0 {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return 0, nil, &RequestError{Op: "create core api request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := strings.TrimSpace(c.tokens.Token()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &RequestError{Op: "execute core api request", Err: err}
	}
	defer resp.Body.Close()

	responseBytes, readErr := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if readErr != nil {
		return resp.StatusCode, nil, &RequestError{
			Op:         "read core api response",
			StatusCode: resp.StatusCode,
			Err:        readErr,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, responseBytes, &RequestError{
			Op:         "unexpected core api status",
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(responseBytes),
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	return resp.StatusCode, responseBytes, nil
}

// extractDetail pulls the message out of the core API's error envelope
// ({"detail": "..."}); unknown shapes fall back to the raw body text.
func extractDetail(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var envelope struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if strings.TrimSpace(envelope.Detail) != "" {
			return strings.TrimSpace(envelope.Detail)
		}
		if strings.TrimSpace(envelope.Message) != "" {
			return strings.TrimSpace(envelope.Message)
		}
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return ""
	}
	return trimmed
}

func ensureLeadingSlash(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "/"
	}
	if strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	return "/" + trimmed
}
