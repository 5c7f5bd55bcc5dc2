package fortie

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDialFailed = errors.New("dial tcp: connection refused")

func TestMissingRequiredAttributeError(t *testing.T) {
	t.Parallel()

	err := &MissingRequiredAttributeError{Resource: "suppliers", Missing: []string{"Name", "Email"}}
	assert.Equal(t, "suppliers: missing required attribute(s): Name, Email", err.Error())
	assert.ErrorIs(t, fmt.Errorf("creating supplier: %w", err), ErrMissingRequiredAttribute)

	bare := &MissingRequiredAttributeError{Missing: []string{"Name"}}
	assert.Equal(t, "missing required attribute(s): Name", bare.Error())
}

func TestUnsupportedContentTypeError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unsupported content type: text/html", (&UnsupportedContentTypeError{ContentType: "text/html"}).Error())
	assert.Contains(t, (&UnsupportedContentTypeError{}).Error(), "no Content-Type")
	assert.ErrorIs(t, &UnsupportedContentTypeError{}, ErrUnsupportedContentType)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestTransportError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *TransportError
		expected string
		status   int
		apiCode  int
	}{
		{
			name:     "connection failure",
			err:      &TransportError{Method: "GET", URL: "https://api.fortnox.se/3/suppliers/", Err: errDialFailed},
			expected: "GET https://api.fortnox.se/3/suppliers/: dial tcp: connection refused",
		},
		{
			name: "api error body",
			err: &TransportError{
				Method:     "POST",
				URL:        "https://api.fortnox.se/3/suppliers/",
				StatusCode: http.StatusBadRequest,
				Body:       []byte(`{"ErrorInformation":{"error":1,"message":"Ogiltigt namn.","code":2000359}}`),
			},
			expected: "POST https://api.fortnox.se/3/suppliers/: status 400: Ogiltigt namn. (code: 2000359)",
			status:   http.StatusBadRequest,
			apiCode:  2000359,
		},
		{
			name: "plain body",
			err: &TransportError{
				Method:     "GET",
				URL:        "https://api.fortnox.se/3/articles/",
				StatusCode: http.StatusBadGateway,
				Body:       []byte("bad gateway\n"),
			},
			expected: "GET https://api.fortnox.se/3/articles/: status 502: bad gateway",
			status:   http.StatusBadGateway,
		},
		{
			name: "empty body",
			err: &TransportError{
				Method:     "DELETE",
				URL:        "https://api.fortnox.se/3/customers/1/",
				StatusCode: http.StatusNotFound,
			},
			expected: "DELETE https://api.fortnox.se/3/customers/1/: status 404",
			status:   http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, testCase.err.Error())
			assert.ErrorIs(t, testCase.err, ErrTransport)
			assert.Equal(t, testCase.status, StatusCode(fmt.Errorf("wrapped: %w", testCase.err)))

			if testCase.apiCode != 0 {
				require.NotNil(t, testCase.err.APIError())
				assert.Equal(t, testCase.apiCode, testCase.err.APIError().Code)
			} else {
				assert.Nil(t, testCase.err.APIError())
			}
		})
	}
}

func TestTransportError_UnwrapsCause(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("listing suppliers: %w", &TransportError{Method: "GET", Err: errDialFailed})
	assert.ErrorIs(t, err, errDialFailed)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	notFound := &TransportError{StatusCode: http.StatusNotFound}
	unauthorized := &TransportError{StatusCode: http.StatusUnauthorized}
	forbidden := &TransportError{StatusCode: http.StatusForbidden}

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(unauthorized))
	assert.True(t, IsUnauthorized(unauthorized))
	assert.True(t, IsForbidden(forbidden))
	assert.Equal(t, 0, StatusCode(errDialFailed))
	assert.False(t, IsNotFound(nil))
}
