package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// NewTestClient creates a client pointed at baseURL with fast retries.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&fortie.Config{
		BaseURL:      baseURL,
		AccessToken:  "test-access-token",
		ClientSecret: "test-client-secret",
		RetryMax:     1,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: time.Millisecond,
	})
	require.NoError(t, err)

	return client
}

// apiCall is what the fake API expects and how it answers.
type apiCall struct {
	Method       string
	ExpectedPath string
	ExpectedBody string
	StatusCode   int
	Response     interface{}
}

// newAPIServer serves one expected call and fails the test on any other.
func newAPIServer(t *testing.T, call apiCall) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, call.Method, request.Method)
		assert.Equal(t, call.ExpectedPath, request.URL.EscapedPath())
		assert.Equal(t, "test-access-token", request.Header.Get("Access-Token"))
		assert.Equal(t, "test-client-secret", request.Header.Get("Client-Secret"))

		if call.ExpectedBody != "" {
			body, err := io.ReadAll(request.Body)
			assert.NoError(t, err)
			assert.JSONEq(t, call.ExpectedBody, string(body))
		}

		status := call.StatusCode
		if status == 0 {
			status = http.StatusOK
		}

		if call.Response == nil {
			writer.WriteHeader(status)

			return
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_ = json.NewEncoder(writer).Encode(call.Response)
	}))

	t.Cleanup(server.Close)

	return server
}

// errorInformation builds a Fortnox error body.
func errorInformation(code int, message string) map[string]interface{} {
	return map[string]interface{}{
		"ErrorInformation": map[string]interface{}{
			"error":   1,
			"message": message,
			"code":    code,
		},
	}
}
