package opponent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"rps_arena/internal/game"
)

const (
	DefaultConnectTimeout = 5 * time.Second
	DefaultReadTimeout    = 10 * time.Second
	DefaultMaxRetries     = 1
)

// RemoteStrategy fetches the opponent move from the opponent API. It retries
// failed attempts up to its retry budget and then surfaces the error; falling
// back to a local move is the Client's job, not this strategy's.
type RemoteStrategy struct {
	url        string
	rules      *game.Registry
	httpClient *http.Client
	maxRetries int
}

// apiResponse is the opponent API envelope. The API reports application
// errors as statusCode 500 inside an HTTP 200 response.
type apiResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// NewRemoteStrategy creates a remote strategy for the given endpoint.
// Non-positive timeouts and retries get the defaults.
func NewRemoteStrategy(url string, rules *game.Registry, connectTimeout, readTimeout time.Duration, maxRetries int) *RemoteStrategy {
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	if readTimeout <= 0 {
		readTimeout = DefaultReadTimeout
	}
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}

	return &RemoteStrategy{
		url:        url,
		rules:      rules,
		maxRetries: maxRetries,
		httpClient: &http.Client{
			Timeout: readTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
			},
		},
	}
}

// Fetch performs up to maxRetries+1 sequential attempts and returns the first
// validated throw. No backoff between attempts.
func (s *RemoteStrategy) Fetch(ctx context.Context) (FetchResult, error) {
	var lastErr error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		name, err := s.fetchOnce(ctx)
		if err == nil {
			return FetchResult{Throw: name, Source: SourceRemote}, nil
		}
		lastErr = err
		remoteFailures.WithLabelValues(failureReason(err)).Inc()
	}
	return FetchResult{}, fmt.Errorf("opponent API failed after %d attempts: %w", s.maxRetries+1, lastErr)
}

func (s *RemoteStrategy) fetchOnce(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &transportError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", &statusError{status: resp.Status, body: string(body)}
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &parseError{err: err}
	}

	if payload.StatusCode == http.StatusInternalServerError {
		return "", &apiError{code: payload.StatusCode}
	}

	if !s.rules.IsValid(payload.Body) {
		return "", &badThrowError{name: payload.Body}
	}

	return payload.Body, nil
}

type transportError struct{ err error }

func (e *transportError) Error() string { return "transport: " + e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

type statusError struct {
	status string
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("API error: %s - %s", e.status, e.body)
}

type parseError struct{ err error }

func (e *parseError) Error() string { return "malformed response body: " + e.err.Error() }
func (e *parseError) Unwrap() error { return e.err }

type apiError struct{ code int }

func (e *apiError) Error() string {
	return fmt.Sprintf("API reported statusCode %d", e.code)
}

type badThrowError struct{ name string }

func (e *badThrowError) Error() string {
	return fmt.Sprintf("API returned unrecognized throw %q", e.name)
}

func failureReason(err error) string {
	switch err.(type) {
	case *transportError:
		return "transport"
	case *statusError:
		return "http_status"
	case *parseError:
		return "parse"
	case *apiError:
		return "api_status"
	case *badThrowError:
		return "bad_throw"
	default:
		return "other"
	}
}
