package quotable

import (
	"crypto/tls"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the public Quotable API.
	DefaultBaseURL = "https://api.quotable.io"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "quotekit"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout            time.Duration
	userAgent          string
	insecureSkipVerify bool
	httpClient         *http.Client
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithInsecureSkipVerify disables certificate verification.
// Use with caution and only for development/testing.
func WithInsecureSkipVerify() Option {
	return func(o *clientOptions) {
		o.insecureSkipVerify = true
	}
}

// WithHTTPClient replaces the HTTP client. WithTimeout and
// WithInsecureSkipVerify do not apply to a custom client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

func (o clientOptions) buildHTTPClient() *http.Client {
	if o.httpClient != nil {
		return o.httpClient
	}

	client := &http.Client{Timeout: o.timeout}
	if o.insecureSkipVerify {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		client.Transport = transport
	}
	return client
}
