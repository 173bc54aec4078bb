// Package rpc implements a JSON-RPC 2.0 client for a node's RPC server.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/kpob/nctl/pkg/retry"
)

type (
	// Client issues calls against a single node endpoint.
	Client interface {
		Call(ctx context.Context, method *Method, params any) (*Response, error)
	}

	// HTTPClient is implemented by *http.Client. Injected by unit tests.
	HTTPClient interface {
		Do(req *http.Request) (*http.Response, error)
	}

	Request struct {
		JSONRPC string `json:"jsonrpc"`
		Method  string `json:"method"`
		Params  any    `json:"params,omitempty"`
		ID      uint   `json:"id"`
	}

	Response struct {
		JSONRPC string          `json:"jsonrpc"`
		Result  json.RawMessage `json:"result,omitempty"`
		Error   *RPCError       `json:"error,omitempty"`
		ID      uint            `json:"id"`
	}

	RPCError struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data,omitempty"`
	}

	HTTPError struct {
		Code     int
		Response string
	}

	Option func(c *clientImpl)

	clientImpl struct {
		endpoint    string
		httpClient  HTTPClient
		logger      *zap.Logger
		maxAttempts int
	}
)

const (
	jsonrpcVersion = "2.0"

	defaultTimeout = 10 * time.Second
)

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %v: %v", e.Code, e.Message)
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error %v: %v", e.Code, e.Response)
}

// New creates a client bound to the given JSON-RPC endpoint.
func New(endpoint string, opts ...Option) Client {
	c := &clientImpl{
		endpoint:    endpoint,
		httpClient:  &http.Client{},
		logger:      zap.NewNop(),
		maxAttempts: retry.DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *clientImpl) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientImpl) {
		c.logger = logger
	}
}

// WithMaxAttempts bounds the retries of transient failures.
func WithMaxAttempts(maxAttempts int) Option {
	return func(c *clientImpl) {
		c.maxAttempts = maxAttempts
	}
}

// Call invokes a method and returns its response. Transport errors and
// HTTP 429/5xx are retried with backoff; an error returned by the RPC
// server itself is not.
func (c *clientImpl) Call(ctx context.Context, method *Method, params any) (*Response, error) {
	requestBody, err := json.Marshal(&Request{
		JSONRPC: jsonrpcVersion,
		Method:  method.Name,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to marshal request: %w", err)
	}

	timeout := method.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	startTime := time.Now()
	response, err := retry.Do(ctx, func(ctx context.Context) (*Response, error) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return c.do(ctx, requestBody)
	}, retry.WithMaxAttempts(c.maxAttempts), retry.WithLogger(c.logger))
	if err != nil {
		c.logger.Debug(
			"rpc call failed",
			zap.String("method", method.Name),
			zap.String("endpoint", c.endpoint),
			zap.Duration("duration", time.Since(startTime)),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug(
		"rpc call succeeded",
		zap.String("method", method.Name),
		zap.String("endpoint", c.endpoint),
		zap.Duration("duration", time.Since(startTime)),
	)
	return response, nil
}

func (c *clientImpl) do(ctx context.Context, body []byte) (*Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, xerrors.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	httpResponse, err := c.httpClient.Do(request)
	if err != nil {
		return nil, retry.Retryable(xerrors.Errorf("failed to send request to %v: %w", c.endpoint, err))
	}
	defer httpResponse.Body.Close()

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, retry.Retryable(xerrors.Errorf("failed to read response: %w", err))
	}

	if httpResponse.StatusCode != http.StatusOK {
		httpError := &HTTPError{
			Code:     httpResponse.StatusCode,
			Response: string(responseBody),
		}
		if httpResponse.StatusCode == http.StatusTooManyRequests || httpResponse.StatusCode >= 500 {
			return nil, retry.Retryable(httpError)
		}
		return nil, httpError
	}

	var response Response
	if err := json.Unmarshal(responseBody, &response); err != nil {
		return nil, xerrors.Errorf("failed to parse response %v: %w", string(responseBody), err)
	}

	if response.Error != nil {
		return nil, response.Error
	}

	return &response, nil
}
