// Package net provides the HTTP transport for talking to the Airtime Nigeria
// API: bearer-token authentication, JSON request/response handling, and a
// configurable timeout.
//
// The Client deliberately does not retry and does not interpret HTTP status
// codes. It returns whatever status code and decoded body the server sent,
// leaving success/failure interpretation to the caller and to the envelope's
// success field.
//
// Example usage:
//
//	client := net.NewClient("https://www.airtimenigeria.com/api/v1", token,
//	    net.WithTimeout(20*time.Second),
//	)
//	var resp airtimenigeria.WalletBalanceResponse
//	status, err := client.Do(ctx, http.MethodGet, "/balance", nil, &resp)
package net

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	gonet "net"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/airtimenigeria/sdk-go/errors"
)

// DefaultTimeout applies when no timeout option is given.
const DefaultTimeout = 30 * time.Second

// Client is an HTTP transport bound to a base URL and a bearer token. Both
// are immutable after construction, so a Client is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the request timeout (default: 30s). A request that does
// not complete within the timeout is aborted and fails with TIMEOUT_EXCEEDED.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying *http.Client entirely. The caller
// becomes responsible for the timeout.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for debug-level request tracing. The
// default logger discards everything.
func WithLogger(log logrus.FieldLogger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a transport for the given base URL and bearer token.
func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: silent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do issues a single request against endpoint (resolved relative to the base
// URL) and decodes the JSON response body into out. When body is non-nil it
// is serialized as the JSON request payload; otherwise the request carries no
// body. The returned status code is whatever the server sent; Do never maps
// HTTP status to an error.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out any) (int, error) {
	url := c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, errors.NewCoreError(errors.NETWORK_ERROR, "failed to encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, errors.NewCoreError(errors.NETWORK_ERROR, fmt.Sprintf("failed to create %s request", method), err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	c.log.WithFields(logrus.Fields{"method": method, "url": url}).Debug("issuing request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.log.WithError(err).Debug("request timed out")
			return 0, errors.NewCoreError(
				errors.TIMEOUT_EXCEEDED,
				fmt.Sprintf("request to %s timed out: %v", url, err),
				err,
			)
		}
		c.log.WithError(err).Debug("request failed")
		return 0, errors.NewCoreError(
			errors.NETWORK_ERROR,
			fmt.Sprintf("request to %s failed: %v", url, err),
			err,
		)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return resp.StatusCode, errors.NewCoreError(
				errors.TIMEOUT_EXCEEDED,
				fmt.Sprintf("reading response from %s timed out: %v", url, err),
				err,
			)
		}
		return resp.StatusCode, errors.NewCoreError(
			errors.NETWORK_ERROR,
			fmt.Sprintf("failed to read response from %s: %v", url, err),
			err,
		)
	}

	c.log.WithFields(logrus.Fields{"method": method, "url": url, "status": resp.StatusCode}).Debug("request completed")

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, errors.NewCoreError(
				errors.PARSE_FAILED,
				fmt.Sprintf("failed to decode response JSON: %v", err),
				err,
			)
		}
	}

	return resp.StatusCode, nil
}

// isTimeout reports whether err represents an exceeded deadline, either the
// http.Client timeout or a context deadline.
func isTimeout(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr gonet.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
