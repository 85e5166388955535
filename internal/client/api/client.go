package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"dentaldesk-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client speaks the practice API: one HTTP call per logical operation, no
// retries, no caching. Authentication rides on the session cookie held by the
// jar after Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		Log: logger,
	}, nil
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == constvars.StatusNotFound
}

type errorBody struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	c.Log.Info("api request",
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, path),
	)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("api request failed",
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var decoded errorBody
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err == nil {
			apiErr.Message = decoded.Message
		}
		c.Log.Error("api request returned error status",
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
