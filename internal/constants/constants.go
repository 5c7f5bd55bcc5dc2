package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout is used for file uploads.
	UploadHTTPTimeout = 2 * time.Minute
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// HTTP headers and content types.
const (
	// HeaderAccessToken carries the Fortnox access token.
	HeaderAccessToken = "Access-Token"

	// HeaderClientSecret carries the Fortnox client secret.
	HeaderClientSecret = "Client-Secret"

	// ContentTypeJSON is the media type of JSON bodies.
	ContentTypeJSON = "application/json"

	// ContentTypeXML is the media type of XML bodies.
	ContentTypeXML = "application/xml"

	// ContentTypeOctetStream is used for raw file uploads.
	ContentTypeOctetStream = "application/octet-stream"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "fortie-go"
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of records per page.
	DefaultPageSize = 100

	// MaxPageSize is the largest page Fortnox serves.
	MaxPageSize = 500
)

// UI and display constants.
const (
	// CheckMarkSymbol is used to indicate current/active items.
	CheckMarkSymbol = "✓"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the indent used for JSON and YAML output.
	JSONIndentSize = 2
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)
