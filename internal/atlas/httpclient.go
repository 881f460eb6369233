package atlas

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/atlasbank/atlasctl/internal/log"
)

// loggingHTTPClient wraps an HTTP client to add trace logging around every
// admin API round trip.
type loggingHTTPClient struct {
	wrapped *http.Client
	logger  *slog.Logger
}

func newLoggingHTTPClient(logger *slog.Logger) *loggingHTTPClient {
	return &loggingHTTPClient{
		wrapped: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (c *loggingHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if c.logger == nil || !c.logger.Enabled(req.Context(), log.LevelTrace) {
		return c.wrapped.Do(req)
	}

	start := time.Now()
	c.logRequest(req)

	resp, err := c.wrapped.Do(req)

	duration := time.Since(start)
	if err != nil {
		c.logger.LogAttrs(req.Context(), log.LevelTrace, "HTTP request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logResponse(resp, duration)

	return resp, nil
}

func (c *loggingHTTPClient) logRequest(req *http.Request) {
	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("host", req.Host),
	}

	headers := make(map[string]string)
	for k, v := range req.Header {
		key := strings.ToLower(k)
		if key == "authorization" || strings.Contains(key, "token") {
			headers[k] = "[REDACTED]"
		} else {
			headers[k] = strings.Join(v, ", ")
		}
	}
	attrs = append(attrs, slog.Any("headers", headers))

	c.logger.LogAttrs(req.Context(), log.LevelTrace, "HTTP request", attrs...)
}

func (c *loggingHTTPClient) logResponse(resp *http.Response, duration time.Duration) {
	attrs := []slog.Attr{
		slog.Int("status", resp.StatusCode),
		slog.String("status_text", resp.Status),
		slog.Duration("duration", duration),
	}

	if resp.ContentLength > 0 {
		attrs = append(attrs, slog.Int64("content_length", resp.ContentLength))
	}

	if resp.StatusCode >= 400 {
		if body, err := peekResponseBody(resp); err == nil && len(body) > 0 {
			const maxLen = 1000
			if len(body) > maxLen {
				body = fmt.Sprintf("%s... [truncated, total %d bytes]", body[:maxLen], len(body))
			}
			attrs = append(attrs, slog.String("error_body", body))
		}
	}

	c.logger.LogAttrs(resp.Request.Context(), log.LevelTrace, "HTTP response", attrs...)
}

// peekResponseBody reads the response body without consuming it.
func peekResponseBody(resp *http.Response) (string, error) {
	if resp.Body == nil {
		return "", nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	return string(bodyBytes), nil
}
