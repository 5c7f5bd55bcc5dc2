package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fortie/internal/provider"
	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// InboxClient implements fortie.InboxClient.
type InboxClient struct {
	provider *provider.Provider
}

// NewInboxClient creates a new inbox client.
func NewInboxClient(transport fortie.Transport, apiRoot string, opts ...provider.Option) *InboxClient {
	opts = append([]provider.Option{provider.WithName(InboxResource.Name)}, opts...)

	return &InboxClient{
		provider: provider.New(transport, apiRoot, InboxResource.Path, InboxResource.Schema, opts...),
	}
}

// Find implements fortie.InboxClient.Find.
func (c *InboxClient) Find(ctx context.Context, id string) (fortie.Record, error) {
	if id == "" {
		return nil, fmt.Errorf("getting inbox file: %w", fortie.ErrIDRequired)
	}

	value, err := c.provider.SendRequest(ctx, provider.RequestSpec{
		Method:   http.MethodGet,
		SubPaths: []string{id},
	})
	if err != nil {
		return nil, fmt.Errorf("getting inbox file %s: %w", id, err)
	}

	record, err := unwrapRecord(value, InboxResource.Wrapper)
	if err != nil {
		return nil, fmt.Errorf("parsing inbox file response: %w", err)
	}

	return record, nil
}

// Upload implements fortie.InboxClient.Upload. The file is sent as the raw
// request body.
func (c *InboxClient) Upload(ctx context.Context, filePath string) (fortie.Record, error) {
	if filePath == "" {
		return nil, fmt.Errorf("uploading inbox file: %w", fortie.ErrFilePathRequired)
	}

	value, err := c.provider.SendRequest(ctx, provider.RequestSpec{
		Method:   http.MethodPost,
		FilePath: filePath,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading inbox file %s: %w", filePath, err)
	}

	record, err := unwrapRecord(value, InboxResource.Wrapper)
	if err != nil {
		return nil, fmt.Errorf("parsing inbox upload response: %w", err)
	}

	return record, nil
}
