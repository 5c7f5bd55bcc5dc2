// Package provider holds the request plumbing shared by every resource:
// URL building, attribute filtering, dispatch and response decoding.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/fivetwenty-io/fortie/internal/constants"
	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
	ErrConflictingBody   = errors.New("data and file path are mutually exclusive")
	ErrNoResponse        = errors.New("transport returned neither response nor error")
)

// RequestSpec describes one call. It is built per call and not kept.
type RequestSpec struct {
	Method   string
	SubPaths []string
	Wrapper  string
	Data     fortie.Record
	Params   *fortie.QueryParams
	FilePath string
}

// Provider sends requests for one resource path using a fixed schema.
type Provider struct {
	transport fortie.Transport
	apiRoot   string
	path      string
	name      string
	schema    *fortie.ResourceSchema
	sanitize  bool
}

// Option configures a Provider.
type Option func(*Provider)

// WithSanitizer strips the form sentinel from string values on writes.
func WithSanitizer(enabled bool) Option {
	return func(p *Provider) {
		p.sanitize = enabled
	}
}

// WithName sets the resource name used in error messages.
func WithName(name string) Option {
	return func(p *Provider) {
		p.name = name
	}
}

// New creates a provider for the resource at path under apiRoot. The
// transport is shared and not owned.
func New(transport fortie.Transport, apiRoot, path string, schema *fortie.ResourceSchema, opts ...Option) *Provider {
	p := &Provider{
		transport: transport,
		apiRoot:   apiRoot,
		path:      path,
		name:      path,
		schema:    schema,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Schema returns the provider's resource schema.
func (p *Provider) Schema() *fortie.ResourceSchema {
	return p.schema
}

// URL builds the URL for the given sub-paths and parameters.
func (p *Provider) URL(subPaths []string, params *fortie.QueryParams) string {
	return BuildURL(p.apiRoot, p.path, subPaths, params)
}

// SendRequest issues exactly one request and decodes the response.
//
// GET and DELETE carry no body. POST and PUT send the filtered, wrapped
// Data as JSON when Data is set, or the raw contents of FilePath when it
// is set instead; with neither no body is sent. An empty response body
// decodes to nil.
func (p *Provider) SendRequest(ctx context.Context, spec RequestSpec) (interface{}, error) {
	method := strings.ToUpper(spec.Method)
	if method == "" {
		method = http.MethodGet
	}

	url := p.URL(spec.SubPaths, spec.Params)

	var (
		resp *fortie.Response
		err  error
	)

	switch method {
	case http.MethodGet:
		resp, err = p.transport.Get(ctx, url)
	case http.MethodDelete:
		resp, err = p.transport.Delete(ctx, url)
	case http.MethodPost, http.MethodPut:
		payload, release, buildErr := p.buildPayload(spec)
		if buildErr != nil {
			return nil, buildErr
		}

		defer release()

		if method == http.MethodPut {
			resp, err = p.transport.Put(ctx, url, payload)
		} else {
			resp, err = p.transport.Post(ctx, url, payload)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, spec.Method)
	}

	if err != nil {
		return nil, p.transportError(method, url, resp, err)
	}

	if resp == nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, ErrNoResponse)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &fortie.TransportError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       resp.Body,
		}
	}

	if len(resp.Body) == 0 {
		return nil, nil
	}

	value, err := Decode(resp)
	if err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", p.name, err)
	}

	return value, nil
}

// buildPayload prepares the request body. The returned release func closes
// any file opened for the upload and must be called once the request is done.
func (p *Provider) buildPayload(spec RequestSpec) (*fortie.Payload, func(), error) {
	noop := func() {}

	if spec.Data != nil && spec.FilePath != "" {
		return nil, noop, ErrConflictingBody
	}

	switch {
	case spec.Data != nil:
		opts := []FilterOption{WithResourceName(p.name)}
		if p.sanitize {
			opts = append(opts, WithFormSanitizer())
		}

		body, err := FilterWriteable(p.schema, spec.Wrapper, spec.Data, opts...)
		if err != nil {
			return nil, noop, err
		}

		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, noop, fmt.Errorf("encoding %s body: %w", p.name, err)
		}

		return &fortie.Payload{ContentType: constants.ContentTypeJSON, Body: bytes.NewReader(encoded)}, noop, nil

	case spec.FilePath != "":
		file, err := os.Open(spec.FilePath)
		if err != nil {
			return nil, noop, fmt.Errorf("opening upload file: %w", err)
		}

		release := func() {
			_ = file.Close()
		}

		return &fortie.Payload{ContentType: constants.ContentTypeOctetStream, Body: file}, release, nil
	}

	return nil, noop, nil
}

// transportError normalizes a transport failure into a *fortie.TransportError.
func (p *Provider) transportError(method, url string, resp *fortie.Response, err error) error {
	transportErr := &fortie.TransportError{}
	if errors.As(err, &transportErr) {
		return err
	}

	wrapped := &fortie.TransportError{Method: method, URL: url, Err: err}
	if resp != nil {
		wrapped.StatusCode = resp.StatusCode
		wrapped.Header = resp.Header
		wrapped.Body = resp.Body
	}

	return wrapped
}
