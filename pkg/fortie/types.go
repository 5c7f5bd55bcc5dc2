package fortie

import (
	"context"
	"io"
	"net/http"
)

// Record is one resource instance as sent to or received from the API.
type Record map[string]interface{}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for key, value := range r {
		out[key] = value
	}

	return out
}

// Response is the raw result of one HTTP exchange.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ContentType returns the Content-Type header of the response.
func (r *Response) ContentType() string {
	if r.Header == nil {
		return ""
	}

	return r.Header.Get("Content-Type")
}

// Payload is a request body together with its content type.
type Payload struct {
	ContentType string
	Body        io.Reader
}

// Transport is the HTTP capability providers send requests through.
//
// Implementations return a *Response for every completed exchange. A
// non-2xx status may be reported either as an error or as a plain
// response; providers handle both. Retries, TLS and pooling are the
// transport's business.
type Transport interface {
	Get(ctx context.Context, url string) (*Response, error)
	Post(ctx context.Context, url string, payload *Payload) (*Response, error)
	Put(ctx context.Context, url string, payload *Payload) (*Response, error)
	Delete(ctx context.Context, url string) (*Response, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// MetaInformation is the paging block Fortnox attaches to list responses.
type MetaInformation struct {
	TotalResources int `json:"total_resources" mapstructure:"@TotalResources" yaml:"total_resources"`
	TotalPages     int `json:"total_pages"     mapstructure:"@TotalPages"     yaml:"total_pages"`
	CurrentPage    int `json:"current_page"    mapstructure:"@CurrentPage"    yaml:"current_page"`
}

// ListResponse is the unwrapped result of a list call.
type ListResponse struct {
	Meta    MetaInformation `json:"meta"    yaml:"meta"`
	Records []Record        `json:"records" yaml:"records"`
}

// ResourceClient exposes the CRUD surface of one API resource.
type ResourceClient interface {
	All(ctx context.Context, params *QueryParams) (*ListResponse, error)
	Find(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, data Record) (Record, error)
	Update(ctx context.Context, id string, data Record) (Record, error)
	Delete(ctx context.Context, id string) error
	Schema() *ResourceSchema
}

// InboxClient uploads and fetches documents in the Fortnox inbox.
type InboxClient interface {
	Find(ctx context.Context, id string) (Record, error)
	Upload(ctx context.Context, filePath string) (Record, error)
}

// Client gives access to every resource client.
type Client interface {
	Suppliers() ResourceClient
	Customers() ResourceClient
	Articles() ResourceClient
	Inbox() InboxClient
}
