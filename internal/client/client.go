package client

import (
	"github.com/fivetwenty-io/fortie/internal/constants"
	"github.com/fivetwenty-io/fortie/internal/http"
	"github.com/fivetwenty-io/fortie/internal/provider"
	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// Client implements the fortie.Client interface.
type Client struct {
	transport fortie.Transport
	baseURL   string
	logger    fortie.Logger

	// Resource clients
	suppliers *ResourceClient
	customers *ResourceClient
	articles  *ResourceClient
	inbox     *InboxClient
}

// New creates a new Fortnox API client. The config is expected to be
// normalized and validated already.
func New(config *fortie.Config) (*Client, error) {
	if config == nil {
		return nil, fortie.ErrConfigRequired
	}

	transport := config.Transport
	if transport == nil {
		transport = newTransport(config)
	}

	client := &Client{
		transport: transport,
		baseURL:   config.BaseURL,
		logger:    config.Logger,
	}

	client.initializeResourceClients(provider.WithSanitizer(config.SanitizeStrings))

	return client, nil
}

// newTransport builds the default retrying transport from config.
func newTransport(config *fortie.Config) *http.Client {
	credentials := &http.Credentials{
		AccessToken:  config.AccessToken,
		ClientSecret: config.ClientSecret,
	}

	return http.NewClient(credentials, createHTTPClientOptions(config)...)
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *fortie.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		if retryWaitMax < retryWaitMin {
			retryWaitMax = retryWaitMin
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

func (c *Client) initializeResourceClients(opts ...provider.Option) {
	c.suppliers = NewResourceClient(c.transport, c.baseURL, SupplierResource, opts...)
	c.customers = NewResourceClient(c.transport, c.baseURL, CustomerResource, opts...)
	c.articles = NewResourceClient(c.transport, c.baseURL, ArticleResource, opts...)
	c.inbox = NewInboxClient(c.transport, c.baseURL, opts...)
}

// Suppliers implements fortie.Client.Suppliers.
func (c *Client) Suppliers() fortie.ResourceClient {
	return c.suppliers
}

// Customers implements fortie.Client.Customers.
func (c *Client) Customers() fortie.ResourceClient {
	return c.customers
}

// Articles implements fortie.Client.Articles.
func (c *Client) Articles() fortie.ResourceClient {
	return c.articles
}

// Inbox implements fortie.Client.Inbox.
func (c *Client) Inbox() fortie.InboxClient {
	return c.inbox
}

// Resource returns the client for a resource by its plural name, e.g.
// "suppliers". The inbox is not a CRUD resource and is not returned here.
func (c *Client) Resource(name string) (fortie.ResourceClient, bool) {
	switch name {
	case SupplierResource.Name:
		return c.suppliers, true
	case CustomerResource.Name:
		return c.customers, true
	case ArticleResource.Name:
		return c.articles, true
	}

	return nil, false
}

// Transport returns the transport shared by all resource clients.
func (c *Client) Transport() fortie.Transport {
	return c.transport
}

// Logger returns the configured logger, which may be nil.
func (c *Client) Logger() fortie.Logger {
	return c.logger
}
