package provider

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

func TestFilterWriteable(t *testing.T) {
	t.Parallel()

	t.Run("drops fields that are not writeable", func(t *testing.T) {
		t.Parallel()

		schema := fortie.MustResourceSchema([]string{"Name", "Id"}, []string{"Name"}, nil)

		body, err := FilterWriteable(schema, "Supplier", fortie.Record{"Name": "Acme", "Id": 5})
		require.NoError(t, err)
		assert.Equal(t, map[string]fortie.Record{"Supplier": {"Name": "Acme"}}, body)
	})

	t.Run("drops unknown fields", func(t *testing.T) {
		t.Parallel()

		schema := fortie.MustResourceSchema([]string{"Name"}, []string{"Name"}, nil)

		body, err := FilterWriteable(schema, "Supplier", fortie.Record{"Name": "Acme", "Bogus": true})
		require.NoError(t, err)
		assert.Equal(t, fortie.Record{"Name": "Acme"}, body["Supplier"])
	})

	t.Run("fails when a required field is absent", func(t *testing.T) {
		t.Parallel()

		schema := fortie.MustResourceSchema([]string{"Name", "Email"}, []string{"Name", "Email"}, []string{"Name"})

		_, err := FilterWriteable(schema, "Supplier", fortie.Record{}, WithResourceName("suppliers"))
		require.Error(t, err)
		assert.ErrorIs(t, err, fortie.ErrMissingRequiredAttribute)

		missingErr := &fortie.MissingRequiredAttributeError{}
		require.True(t, errors.As(err, &missingErr))
		assert.Equal(t, []string{"Name"}, missingErr.Missing)
		assert.Equal(t, "suppliers: missing required attribute(s): Name", err.Error())
	})

	t.Run("names every missing field", func(t *testing.T) {
		t.Parallel()

		schema := fortie.MustResourceSchema(
			[]string{"Name", "Email", "City"},
			[]string{"Name", "Email", "City"},
			[]string{"Name", "Email"},
		)

		_, err := FilterWriteable(schema, "Customer", fortie.Record{"City": "Växjö"})

		missingErr := &fortie.MissingRequiredAttributeError{}
		require.True(t, errors.As(err, &missingErr))
		assert.Equal(t, []string{"Name", "Email"}, missingErr.Missing)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		t.Parallel()

		schema := fortie.MustResourceSchema([]string{"Name", "Id"}, []string{"Name"}, nil)
		input := fortie.Record{"Name": "@Acme", "Id": 5}

		_, err := FilterWriteable(schema, "Supplier", input, WithFormSanitizer())
		require.NoError(t, err)
		assert.Equal(t, fortie.Record{"Name": "@Acme", "Id": 5}, input)
	})

	t.Run("sanitizer strips the form sentinel from strings only", func(t *testing.T) {
		t.Parallel()

		schema := fortie.MustResourceSchema([]string{"Name", "Email", "Active"}, []string{"Name", "Email", "Active"}, nil)

		body, err := FilterWriteable(schema, "Supplier",
			fortie.Record{"Name": "@Acme", "Email": "info@acme.se", "Active": true},
			WithFormSanitizer())
		require.NoError(t, err)
		assert.Equal(t, fortie.Record{"Name": "Acme", "Email": "infoacme.se", "Active": true}, body["Supplier"])
	})

	t.Run("without sanitizer values pass through", func(t *testing.T) {
		t.Parallel()

		schema := fortie.MustResourceSchema([]string{"Email"}, []string{"Email"}, nil)

		body, err := FilterWriteable(schema, "Supplier", fortie.Record{"Email": "info@acme.se"})
		require.NoError(t, err)
		assert.Equal(t, "info@acme.se", body["Supplier"]["Email"])
	})

	t.Run("nested values are kept as-is", func(t *testing.T) {
		t.Parallel()

		schema := fortie.MustResourceSchema([]string{"DefaultDeliveryTypes"}, []string{"DefaultDeliveryTypes"}, nil)
		nested := map[string]interface{}{"Invoice": "EMAIL"}

		body, err := FilterWriteable(schema, "Customer", fortie.Record{"DefaultDeliveryTypes": nested})
		require.NoError(t, err)
		assert.Equal(t, nested, body["Customer"]["DefaultDeliveryTypes"])
	})
}

func TestFilterWriteable_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	schema := fortie.MustResourceSchema(
		[]string{"Name", "Id", "Email", "City", "Url"},
		[]string{"Name", "Email", "City"},
		[]string{"Name"},
	)

	candidateKeys := []string{"Name", "Id", "Email", "City", "Url", "Bogus", "name"}

	properties.Property("output only holds writeable fields", prop.ForAll(
		func(keys []string, values []string) bool {
			input := fortie.Record{"Name": "Acme"}
			for i := 0; i < len(keys) && i < len(values); i++ {
				input[keys[i]] = values[i]
			}

			body, err := FilterWriteable(schema, "Supplier", input)
			if err != nil {
				return false
			}

			for key := range body["Supplier"] {
				if !schema.IsWriteable(key) {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.IntRange(0, len(candidateKeys)-1).Map(func(i int) string { return candidateKeys[i] })),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("every writeable input field is kept", prop.ForAll(
		func(email, city string) bool {
			input := fortie.Record{"Name": "Acme", "Email": email, "City": city, "Id": 1}

			body, err := FilterWriteable(schema, "Supplier", input)
			if err != nil {
				return false
			}

			out := body["Supplier"]

			return len(out) == 3 && out["Email"] == email && out["City"] == city
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("missing required field always fails", prop.ForAll(
		func(email string) bool {
			_, err := FilterWriteable(schema, "Supplier", fortie.Record{"Email": email})

			return errors.Is(err, fortie.ErrMissingRequiredAttribute)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
