package fortie

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrMissingRequiredAttribute = errors.New("missing required attribute")
	ErrUnsupportedContentType   = errors.New("unsupported content type")
	ErrNotImplemented           = errors.New("not implemented")
	ErrTransport                = errors.New("transport error")
	ErrInvalidSchema            = errors.New("invalid resource schema")
	ErrConfigRequired           = errors.New("config is required")
	ErrInvalidConfig            = errors.New("invalid config")
	ErrIDRequired               = errors.New("resource id is required")
	ErrFilePathRequired         = errors.New("file path is required")
	ErrUnexpectedResponse       = errors.New("unexpected response shape")
)

// MissingRequiredAttributeError is returned when a write omits one or more
// required fields.
type MissingRequiredAttributeError struct {
	Resource string
	Missing  []string
}

// Error implements the error interface.
func (e *MissingRequiredAttributeError) Error() string {
	if e.Resource == "" {
		return fmt.Sprintf("missing required attribute(s): %s", strings.Join(e.Missing, ", "))
	}

	return fmt.Sprintf("%s: missing required attribute(s): %s", e.Resource, strings.Join(e.Missing, ", "))
}

// Unwrap makes errors.Is(err, ErrMissingRequiredAttribute) hold.
func (e *MissingRequiredAttributeError) Unwrap() error {
	return ErrMissingRequiredAttribute
}

// UnsupportedContentTypeError is returned when a response is neither JSON nor XML.
type UnsupportedContentTypeError struct {
	ContentType string
}

// Error implements the error interface.
func (e *UnsupportedContentTypeError) Error() string {
	if e.ContentType == "" {
		return "unsupported content type: response has no Content-Type"
	}

	return "unsupported content type: " + e.ContentType
}

// Unwrap makes errors.Is(err, ErrUnsupportedContentType) hold.
func (e *UnsupportedContentTypeError) Unwrap() error {
	return ErrUnsupportedContentType
}

// APIError is the ErrorInformation block Fortnox sends with failed requests.
type APIError struct {
	Error   int    `json:"error"   yaml:"error"`
	Message string `json:"message" yaml:"message"`
	Code    int    `json:"code"    yaml:"code"`
}

// String formats the API error for display.
func (e *APIError) String() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// TransportError wraps any failure coming out of the transport: a
// connection failure (Err set, StatusCode zero) or a non-2xx response
// (StatusCode and Body set).
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}

	if apiErr := e.APIError(); apiErr != nil {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, apiErr.String())
	}

	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
	}

	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, body)
}

// Unwrap returns the underlying cause, or ErrTransport for status failures.
func (e *TransportError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}

	return ErrTransport
}

// Is makes errors.Is(err, ErrTransport) hold for every TransportError.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// APIError parses the Fortnox ErrorInformation block from a JSON body.
// It returns nil when the body carries none.
func (e *TransportError) APIError() *APIError {
	if len(e.Body) == 0 {
		return nil
	}

	var envelope struct {
		ErrorInformation *APIError `json:"ErrorInformation"`
	}

	err := json.Unmarshal(e.Body, &envelope)
	if err != nil || envelope.ErrorInformation == nil {
		return nil
	}

	return envelope.ErrorInformation
}

// StatusCode returns the HTTP status carried by a TransportError in the
// chain, or zero.
func StatusCode(err error) int {
	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403 from the API.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}
