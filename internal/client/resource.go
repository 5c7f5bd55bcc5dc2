package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fivetwenty-io/fortie/internal/provider"
	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// ResourceClient implements fortie.ResourceClient for any schema-declared
// resource.
type ResourceClient struct {
	provider   *provider.Provider
	definition ResourceDefinition
}

// NewResourceClient creates a client for the given resource definition.
func NewResourceClient(transport fortie.Transport, apiRoot string, definition ResourceDefinition, opts ...provider.Option) *ResourceClient {
	opts = append([]provider.Option{provider.WithName(definition.Name)}, opts...)

	return &ResourceClient{
		provider:   provider.New(transport, apiRoot, definition.Path, definition.Schema, opts...),
		definition: definition,
	}
}

// Schema implements fortie.ResourceClient.Schema.
func (c *ResourceClient) Schema() *fortie.ResourceSchema {
	return c.definition.Schema
}

// All implements fortie.ResourceClient.All. Paging is left to the caller
// through params.
func (c *ResourceClient) All(ctx context.Context, params *fortie.QueryParams) (*fortie.ListResponse, error) {
	value, err := c.provider.SendRequest(ctx, provider.RequestSpec{
		Method: http.MethodGet,
		Params: params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.definition.Name, err)
	}

	list, err := unwrapList(value, c.definition)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", c.definition.Name, err)
	}

	return list, nil
}

// Find implements fortie.ResourceClient.Find.
func (c *ResourceClient) Find(ctx context.Context, id string) (fortie.Record, error) {
	if id == "" {
		return nil, fmt.Errorf("getting %s: %w", c.singular(), fortie.ErrIDRequired)
	}

	value, err := c.provider.SendRequest(ctx, provider.RequestSpec{
		Method:   http.MethodGet,
		SubPaths: []string{id},
	})
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", c.singular(), id, err)
	}

	return c.unwrap(value)
}

// Create implements fortie.ResourceClient.Create.
func (c *ResourceClient) Create(ctx context.Context, data fortie.Record) (fortie.Record, error) {
	value, err := c.provider.SendRequest(ctx, provider.RequestSpec{
		Method:  http.MethodPost,
		Wrapper: c.definition.Wrapper,
		Data:    nonNil(data),
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.singular(), err)
	}

	return c.unwrap(value)
}

// Update implements fortie.ResourceClient.Update.
func (c *ResourceClient) Update(ctx context.Context, id string, data fortie.Record) (fortie.Record, error) {
	if id == "" {
		return nil, fmt.Errorf("updating %s: %w", c.singular(), fortie.ErrIDRequired)
	}

	value, err := c.provider.SendRequest(ctx, provider.RequestSpec{
		Method:   http.MethodPut,
		SubPaths: []string{id},
		Wrapper:  c.definition.Wrapper,
		Data:     nonNil(data),
	})
	if err != nil {
		return nil, fmt.Errorf("updating %s %s: %w", c.singular(), id, err)
	}

	return c.unwrap(value)
}

// Delete implements fortie.ResourceClient.Delete.
func (c *ResourceClient) Delete(ctx context.Context, id string) error {
	if !c.definition.AllowDelete {
		return fmt.Errorf("deleting %s: %w", c.singular(), fortie.ErrNotImplemented)
	}

	if id == "" {
		return fmt.Errorf("deleting %s: %w", c.singular(), fortie.ErrIDRequired)
	}

	_, err := c.provider.SendRequest(ctx, provider.RequestSpec{
		Method:   http.MethodDelete,
		SubPaths: []string{id},
	})
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", c.singular(), id, err)
	}

	return nil
}

func (c *ResourceClient) singular() string {
	return strings.ToLower(c.definition.Wrapper)
}

func (c *ResourceClient) unwrap(value interface{}) (fortie.Record, error) {
	record, err := unwrapRecord(value, c.definition.Wrapper)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.singular(), err)
	}

	return record, nil
}

// nonNil makes an absent record count as an empty write so required
// fields are still checked.
func nonNil(data fortie.Record) fortie.Record {
	if data == nil {
		return fortie.Record{}
	}

	return data
}

// unwrapRecord returns the record under wrapper, or the whole mapping when
// the response carries no wrapper. An empty response yields nil.
func unwrapRecord(value interface{}, wrapper string) (fortie.Record, error) {
	if value == nil {
		return nil, nil
	}

	raw, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %T", fortie.ErrUnexpectedResponse, value)
	}

	if inner, ok := raw[wrapper].(map[string]interface{}); ok {
		return fortie.Record(inner), nil
	}

	return fortie.Record(raw), nil
}

// hasPagingAttributes reports whether an XML list element carries the
// paging block as its own attributes.
func hasPagingAttributes(element map[string]interface{}) bool {
	for _, key := range []string{"-TotalResources", "-TotalPages", "-CurrentPage"} {
		if _, ok := element[key]; ok {
			return true
		}
	}

	return false
}

// unwrapList reads the records under the list key and the paging block.
// XML responses nest the records one level deeper, under the wrapper key,
// and collapse a single record into an object.
func unwrapList(value interface{}, definition ResourceDefinition) (*fortie.ListResponse, error) {
	list := &fortie.ListResponse{Records: []fortie.Record{}}

	if value == nil {
		return list, nil
	}

	raw, ok := value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %T", fortie.ErrUnexpectedResponse, value)
	}

	list.Meta = fortie.DecodeMeta(raw["MetaInformation"])

	items, ok := raw[definition.ListKey]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", fortie.ErrUnexpectedResponse, definition.ListKey)
	}

	if nested, ok := items.(map[string]interface{}); ok {
		if meta, found := nested["MetaInformation"]; found {
			list.Meta = fortie.DecodeMeta(meta)
		} else if hasPagingAttributes(nested) {
			list.Meta = fortie.DecodeMeta(nested)
		}

		items = nested[definition.Wrapper]
	}

	switch typed := items.(type) {
	case nil:
	case []interface{}:
		for _, item := range typed {
			record, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%w: list item is %T", fortie.ErrUnexpectedResponse, item)
			}

			list.Records = append(list.Records, fortie.Record(record))
		}
	case map[string]interface{}:
		list.Records = append(list.Records, fortie.Record(typed))
	default:
		return nil, fmt.Errorf("%w: %q is %T", fortie.ErrUnexpectedResponse, definition.ListKey, items)
	}

	return list, nil
}
