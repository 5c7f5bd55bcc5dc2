package fortie

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DefaultBaseURL is the Fortnox API root including the version prefix.
const DefaultBaseURL = "https://api.fortnox.se/3"

// Config represents client configuration for building a fortie.Client.
//
// # Authentication
//
// Fortnox authenticates every request with two headers, Access-Token and
// Client-Secret. Obtaining the access token is outside the scope of this
// client; supply one that has already been issued.
//
// # Transport
//
// By default requests go through a retrying HTTP transport configured by
// HTTPTimeout and the Retry* fields. Set Transport to send requests
// through your own implementation instead; the retry and timeout fields
// are then ignored.
type Config struct {
	// BaseURL: API root, e.g. "https://api.fortnox.se/3". Defaults to
	// DefaultBaseURL. A trailing slash is trimmed.
	BaseURL string

	// AccessToken: value sent in the Access-Token header.
	AccessToken string
	// ClientSecret: value sent in the Client-Secret header.
	ClientSecret string

	// HTTPTimeout: per-attempt timeout of the default transport.
	HTTPTimeout time.Duration
	// RetryMax: retries for transient failures (>=500, 429, connection
	// errors). Zero keeps the transport default.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug: log every request and response when a Logger is provided.
	Debug bool
	// Logger: optional structured logger.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// SanitizeStrings: strip "@" from string values before a write. Only
	// needed when the transport form-encodes bodies.
	SanitizeStrings bool

	// Transport: injected HTTP capability. When nil the default retrying
	// transport is built from the fields above.
	Transport Transport
}

// Normalize fills in defaults and trims the base URL.
func (c *Config) Normalize() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.RetryMax, validation.Min(0)),
		validation.Field(&c.HTTPTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.RetryWaitMax, validation.When(c.RetryWaitMin > 0 && c.RetryWaitMax > 0, validation.Min(c.RetryWaitMin))),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
