// Package sdk provides the high-level client for the Airtime Nigeria API.
// It validates parameters locally, maps them to the API's wire format, and
// returns decoded response envelopes without interpreting their success flag.
//
// Example usage:
//
//	client, err := sdk.New(os.Getenv("AIRTIME_NG_TOKEN"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := client.PurchaseAirtime(ctx, airtimenigeria.AirtimeParams{
//	    NetworkOperator: airtimenigeria.OperatorMTN,
//	    Phone:           "08012345678",
//	    Amount:          500,
//	    MaxAmount:       "500",
//	})
package sdk

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/airtimenigeria/sdk-go/core/net"
	"github.com/airtimenigeria/sdk-go/errors"
)

// DefaultBaseURL is the production Airtime Nigeria API endpoint.
const DefaultBaseURL = "https://www.airtimenigeria.com/api/v1"

// Client is the entry point for the Airtime Nigeria API. It holds the bearer
// token and transport configuration, both immutable after construction, so a
// single Client is safe for concurrent use.
type Client struct {
	transport *net.Client
}

// Option configures a Client.
type Option func(*config)

type config struct {
	baseURL string
	netOpts []net.ClientOption
}

// WithBaseURL overrides the API base URL. Useful for sandbox environments
// and tests.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithTimeout overrides the request timeout (default: 30s).
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.netOpts = append(c.netOpts, net.WithTimeout(d))
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		c.netOpts = append(c.netOpts, net.WithHTTPClient(hc))
	}
}

// WithLogger enables debug-level request tracing through the given logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		c.netOpts = append(c.netOpts, net.WithLogger(log))
	}
}

// New creates an Airtime Nigeria client for the given bearer token. It fails
// with CONFIG_INVALID before any network activity if the token is empty.
func New(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.NewConfigError(errors.CONFIG_INVALID, "API token is required", nil)
	}

	cfg := &config{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		transport: net.NewClient(cfg.baseURL, token, cfg.netOpts...),
	}, nil
}
