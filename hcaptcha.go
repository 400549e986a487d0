// Package hcaptcha verifies hCaptcha response tokens against the siteverify API.
//
// A call sends exactly one form-encoded POST and returns either a Success or a
// Failure. A Failure is the remote service rejecting the token or the secret; it
// is returned as a value, never as an error. Errors are reserved for requests that
// could not complete (ErrRequestFailed) and for bodies that do not look like a
// siteverify answer (ErrInvalidResponse).
//
// The package does not retry, cache, or log. Timeouts and cancellation come from
// the context passed to Verify.
package hcaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Solvro/lib-backend-hcaptcha/internal/verifier"
)

// Endpoint is the siteverify URL used unless WithEndpoint overrides it.
const Endpoint = verifier.HCaptchaEndpoint

// Request is a single verification request.
type Request struct {
	// Secret is the account secret key.
	Secret string
	// Response is the token the hCaptcha widget produced for the user.
	Response string
	// RemoteIP is the user's IP address. Optional.
	RemoteIP string
	// SiteKey is the sitekey the token is expected to have been solved for. Optional.
	SiteKey string
}

// Client sends siteverify requests. The zero value is not usable; use NewClient.
// A Client holds no per-call state and is safe for concurrent use.
type Client struct {
	endpoint string
	verifier verifier.Verifier
}

type clientConfig struct {
	endpoint   string
	httpClient *http.Client
}

type Option func(*clientConfig)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) {
		if c != nil {
			cfg.httpClient = c
		}
	}
}

// WithEndpoint points the client at a different siteverify URL.
func WithEndpoint(endpoint string) Option {
	return func(cfg *clientConfig) {
		if endpoint != "" {
			cfg.endpoint = endpoint
		}
	}
}

func NewClient(opts ...Option) *Client {
	cfg := clientConfig{
		endpoint:   Endpoint,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Client{
		endpoint: cfg.endpoint,
		verifier: verifier.NewHCaptcha(cfg.endpoint, cfg.httpClient),
	}
}

// Endpoint returns the siteverify URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Verify sends req to siteverify and returns the typed result.
func (c *Client) Verify(ctx context.Context, req Request) (Result, error) {
	raw, err := c.verifier.Verify(ctx, verifier.Request{
		Secret:   req.Secret,
		Response: req.Response,
		RemoteIP: req.RemoteIP,
		SiteKey:  req.SiteKey,
	})
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return parseResult(raw)
}

var defaultClient = NewClient()

// Verify calls Verify on a client with the default endpoint and http.DefaultClient.
func Verify(ctx context.Context, req Request) (Result, error) {
	return defaultClient.Verify(ctx, req)
}
