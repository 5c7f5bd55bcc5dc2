package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/fortie/internal/provider"
	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestResourceClient_All(t *testing.T) {
	t.Parallel()

	t.Run("unwraps records and paging", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, apiCall{
			Method:       "GET",
			ExpectedPath: "/3/suppliers/",
			Response: map[string]interface{}{
				"MetaInformation": map[string]interface{}{
					"@TotalResources": 2,
					"@TotalPages":     1,
					"@CurrentPage":    1,
				},
				"Suppliers": []map[string]interface{}{
					{"Name": "Acme", "SupplierNumber": "1"},
					{"Name": "Beta", "SupplierNumber": "2"},
				},
			},
		})

		list, err := NewTestClient(t, server.URL+"/3").Suppliers().All(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, fortie.MetaInformation{TotalResources: 2, TotalPages: 1, CurrentPage: 1}, list.Meta)
		require.Len(t, list.Records, 2)
		assert.Equal(t, "Acme", list.Records[0]["Name"])
		assert.Equal(t, "2", list.Records[1]["SupplierNumber"])
	})

	t.Run("passes query parameters through", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, apiCall{
			Method:       "GET",
			ExpectedPath: "/3/customers/",
			Response:     map[string]interface{}{"Customers": []interface{}{}},
		})

		params := fortie.NewQueryParams().WithPage(2).WithLimit(50).WithFilter("active")

		list, err := NewTestClient(t, server.URL+"/3").Customers().All(context.Background(), params)
		require.NoError(t, err)
		assert.Empty(t, list.Records)
	})

	t.Run("missing list key", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, apiCall{
			Method:       "GET",
			ExpectedPath: "/3/articles/",
			Response:     map[string]interface{}{"Something": []interface{}{}},
		})

		_, err := NewTestClient(t, server.URL+"/3").Articles().All(context.Background(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, fortie.ErrUnexpectedResponse)
	})

	t.Run("unauthorized", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, apiCall{
			Method:       "GET",
			ExpectedPath: "/3/suppliers/",
			StatusCode:   http.StatusUnauthorized,
			Response:     errorInformation(2000311, "Kan inte logga in, access-token eller client-secret saknas."),
		})

		_, err := NewTestClient(t, server.URL+"/3").Suppliers().All(context.Background(), nil)
		require.Error(t, err)
		assert.True(t, fortie.IsUnauthorized(err))
		assert.Contains(t, err.Error(), "listing suppliers")
		assert.Contains(t, err.Error(), "code: 2000311")
	})
}

func TestResourceClient_Find(t *testing.T) {
	t.Parallel()

	t.Run("unwraps the singular wrapper", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, apiCall{
			Method:       "GET",
			ExpectedPath: "/3/suppliers/42/",
			Response:     map[string]interface{}{"Supplier": map[string]interface{}{"Name": "Acme", "SupplierNumber": "42"}},
		})

		record, err := NewTestClient(t, server.URL+"/3").Suppliers().Find(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, fortie.Record{"Name": "Acme", "SupplierNumber": "42"}, record)
	})

	t.Run("id is escaped", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, apiCall{
			Method:       "GET",
			ExpectedPath: "/3/articles/A%2F1/",
			Response:     map[string]interface{}{"Article": map[string]interface{}{"ArticleNumber": "A/1"}},
		})

		record, err := NewTestClient(t, server.URL+"/3").Articles().Find(context.Background(), "A/1")
		require.NoError(t, err)
		assert.Equal(t, "A/1", record["ArticleNumber"])
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, apiCall{
			Method:       "GET",
			ExpectedPath: "/3/customers/999/",
			StatusCode:   http.StatusNotFound,
			Response:     errorInformation(2000433, "Kunde inte hitta kund."),
		})

		_, err := NewTestClient(t, server.URL+"/3").Customers().Find(context.Background(), "999")
		require.Error(t, err)
		assert.True(t, fortie.IsNotFound(err))
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, "http://127.0.0.1:1/3")

		_, err := client.Suppliers().Find(context.Background(), "")
		assert.ErrorIs(t, err, fortie.ErrIDRequired)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestResourceClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("posts the wrapped writeable fields", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, apiCall{
			Method:       "POST",
			ExpectedPath: "/3/suppliers/",
			ExpectedBody: `{"Supplier":{"Name":"Acme"}}`,
			StatusCode:   http.StatusCreated,
			Response:     map[string]interface{}{"Supplier": map[string]interface{}{"Name": "Acme", "SupplierNumber": "1"}},
		})

		record, err := NewTestClient(t, server.URL+"/3").Suppliers().Create(context.Background(), fortie.Record{"Name": "Acme"})
		require.NoError(t, err)
		assert.Equal(t, fortie.Record{"Name": "Acme", "SupplierNumber": "1"}, record)
	})

	t.Run("read-only fields are dropped", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, apiCall{
			Method:       "POST",
			ExpectedPath: "/3/customers/",
			ExpectedBody: `{"Customer":{"Name":"Acme AB","City":"Växjö"}}`,
			StatusCode:   http.StatusCreated,
			Response:     map[string]interface{}{"Customer": map[string]interface{}{"Name": "Acme AB"}},
		})

		_, err := NewTestClient(t, server.URL+"/3").Customers().Create(context.Background(), fortie.Record{
			"Name":    "Acme AB",
			"City":    "Växjö",
			"Url":     "https://api.fortnox.se/3/customers/1",
			"Country": "Sverige",
		})
		require.NoError(t, err)
	})

	t.Run("missing required field sends nothing", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, "http://127.0.0.1:1/3")

		_, err := client.Articles().Create(context.Background(), fortie.Record{"ArticleNumber": "A1"})
		require.Error(t, err)

		missingErr := &fortie.MissingRequiredAttributeError{}
		require.True(t, errors.As(err, &missingErr))
		assert.Equal(t, []string{"Description"}, missingErr.Missing)
		assert.Equal(t, "articles", missingErr.Resource)
	})

	t.Run("nil data is treated as empty", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, "http://127.0.0.1:1/3")

		_, err := client.Suppliers().Create(context.Background(), nil)
		assert.ErrorIs(t, err, fortie.ErrMissingRequiredAttribute)
	})

	t.Run("validation error from the API", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, apiCall{
			Method:       "POST",
			ExpectedPath: "/3/suppliers/",
			StatusCode:   http.StatusBadRequest,
			Response:     errorInformation(2000359, "Ogiltig e-postadress."),
		})

		_, err := NewTestClient(t, server.URL+"/3").Suppliers().Create(context.Background(), fortie.Record{
			"Name":  "Acme",
			"Email": "not-an-email",
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, fortie.StatusCode(err))
		assert.Contains(t, err.Error(), "Ogiltig e-postadress.")
	})
}

func TestResourceClient_Update(t *testing.T) {
	t.Parallel()

	t.Run("puts to the record path", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, apiCall{
			Method:       "PUT",
			ExpectedPath: "/3/suppliers/42/",
			ExpectedBody: `{"Supplier":{"Name":"Acme","City":"Lund"}}`,
			Response:     map[string]interface{}{"Supplier": map[string]interface{}{"Name": "Acme", "City": "Lund"}},
		})

		record, err := NewTestClient(t, server.URL+"/3").Suppliers().Update(context.Background(), "42",
			fortie.Record{"Name": "Acme", "City": "Lund", "SupplierNumberX": "ignored"})
		require.NoError(t, err)
		assert.Equal(t, "Lund", record["City"])
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, "http://127.0.0.1:1/3")

		_, err := client.Customers().Update(context.Background(), "", fortie.Record{"Name": "Acme"})
		assert.ErrorIs(t, err, fortie.ErrIDRequired)
	})
}

func TestResourceClient_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes customers", func(t *testing.T) {
		t.Parallel()

		server := newAPIServer(t, apiCall{
			Method:       "DELETE",
			ExpectedPath: "/3/customers/7/",
			StatusCode:   http.StatusNoContent,
		})

		err := NewTestClient(t, server.URL+"/3").Customers().Delete(context.Background(), "7")
		require.NoError(t, err)
	})

	t.Run("suppliers cannot be deleted", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, "http://127.0.0.1:1/3")

		err := client.Suppliers().Delete(context.Background(), "42")
		require.Error(t, err)
		assert.ErrorIs(t, err, fortie.ErrNotImplemented)
	})
}

func TestUnwrapList_XMLShape(t *testing.T) {
	t.Parallel()

	value := map[string]interface{}{
		"Suppliers": map[string]interface{}{
			"MetaInformation": map[string]interface{}{
				"-TotalResources": "1",
				"-TotalPages":     "1",
				"-CurrentPage":    "1",
			},
			"Supplier": map[string]interface{}{"Name": "Acme"},
		},
	}

	list, err := unwrapList(value, SupplierResource)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Meta.TotalResources)
	assert.Equal(t, []fortie.Record{{"Name": "Acme"}}, list.Records)
}

func TestResourceClient_All_XML(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/suppliers/", r.URL.Path)

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Suppliers TotalResources="2" TotalPages="1" CurrentPage="1">
  <Supplier><SupplierNumber>1</SupplierNumber><Name>Acme</Name></Supplier>
  <Supplier><SupplierNumber>2</SupplierNumber><Name>Beta</Name></Supplier>
</Suppliers>`))
	}))
	defer server.Close()

	list, err := NewTestClient(t, server.URL+"/3").Suppliers().All(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, fortie.MetaInformation{TotalResources: 2, TotalPages: 1, CurrentPage: 1}, list.Meta)
	require.Len(t, list.Records, 2)
	assert.Equal(t, "Acme", list.Records[0]["Name"])
	assert.Equal(t, "2", list.Records[1]["SupplierNumber"])
}

func TestUnwrapList_DecodedXML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		meta    fortie.MetaInformation
		records []fortie.Record
	}{
		{
			name: "paging attributes on the list element",
			body: `<Suppliers TotalResources="3" TotalPages="2" CurrentPage="2">` +
				`<Supplier><Name>Acme</Name></Supplier></Suppliers>`,
			meta:    fortie.MetaInformation{TotalResources: 3, TotalPages: 2, CurrentPage: 2},
			records: []fortie.Record{{"Name": "Acme"}},
		},
		{
			name: "nested paging element",
			body: `<Suppliers><MetaInformation TotalResources="1" TotalPages="1" CurrentPage="1"/>` +
				`<Supplier><Name>Acme</Name></Supplier></Suppliers>`,
			meta:    fortie.MetaInformation{TotalResources: 1, TotalPages: 1, CurrentPage: 1},
			records: []fortie.Record{{"Name": "Acme"}},
		},
		{
			name:    "no paging",
			body:    `<Suppliers><Supplier><Name>Acme</Name></Supplier></Suppliers>`,
			records: []fortie.Record{{"Name": "Acme"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, err := provider.Decode(&fortie.Response{
				StatusCode: http.StatusOK,
				Header:     http.Header{"Content-Type": []string{"application/xml"}},
				Body:       []byte(tt.body),
			})
			require.NoError(t, err)

			list, err := unwrapList(value, SupplierResource)
			require.NoError(t, err)
			assert.Equal(t, tt.meta, list.Meta)
			assert.Equal(t, tt.records, list.Records)
		})
	}
}

func TestResourceDefinitions_SchemasAreValid(t *testing.T) {
	t.Parallel()

	for name, definition := range Definitions() {
		assert.Equal(t, name, definition.Name)
		require.NotNil(t, definition.Schema, name)

		for _, field := range definition.Schema.Required() {
			assert.True(t, definition.Schema.IsWriteable(field), "%s: %s", name, field)
		}
	}

	assert.False(t, SupplierResource.AllowDelete)
	assert.True(t, SupplierResource.Schema.IsWriteable("Name"))
	assert.Equal(t, []string{"Name"}, SupplierResource.Schema.Required())
}
