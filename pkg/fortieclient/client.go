package fortieclient

import (
	"fmt"

	"github.com/fivetwenty-io/fortie/internal/client"
	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// New creates a new Fortnox API client. A normalized copy of config is
// validated before any transport is built; the caller's value is not
// modified.
func New(config *fortie.Config) (fortie.Client, error) {
	if config == nil {
		return nil, fortie.ErrConfigRequired
	}

	normalized := *config
	normalized.Normalize()

	err := normalized.Validate()
	if err != nil {
		return nil, err
	}

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithToken creates a client for the default API root using the given
// credentials.
func NewWithToken(accessToken, clientSecret string) (fortie.Client, error) {
	return New(&fortie.Config{
		AccessToken:  accessToken,
		ClientSecret: clientSecret,
	})
}

// NewWithTransport creates a client that sends every request through
// transport.
func NewWithTransport(baseURL string, transport fortie.Transport) (fortie.Client, error) {
	return New(&fortie.Config{
		BaseURL:   baseURL,
		Transport: transport,
	})
}
