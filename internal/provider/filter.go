package provider

import (
	"strings"

	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// formSentinel marks file references in form-encoded bodies.
const formSentinel = "@"

// FilterOption tunes FilterWriteable.
type FilterOption func(*filterOptions)

type filterOptions struct {
	resource string
	sanitize bool
}

// WithResourceName names the resource in MissingRequiredAttributeError.
func WithResourceName(name string) FilterOption {
	return func(o *filterOptions) {
		o.resource = name
	}
}

// WithFormSanitizer strips the form-encoding sentinel from string values.
func WithFormSanitizer() FilterOption {
	return func(o *filterOptions) {
		o.sanitize = true
	}
}

// FilterWriteable keeps the fields of data that are both attributes and
// writeable, checks that every required field survived, and wraps the
// result under wrapperKey. data is never modified.
func FilterWriteable(schema *fortie.ResourceSchema, wrapperKey string, data fortie.Record, opts ...FilterOption) (map[string]fortie.Record, error) {
	options := filterOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	writeable := make(fortie.Record, len(data))

	for key, value := range data {
		if !schema.IsAttribute(key) || !schema.IsWriteable(key) {
			continue
		}

		if text, ok := value.(string); ok && options.sanitize {
			value = strings.ReplaceAll(text, formSentinel, "")
		}

		writeable[key] = value
	}

	var missing []string

	for _, field := range schema.Required() {
		if _, ok := writeable[field]; !ok {
			missing = append(missing, field)
		}
	}

	if len(missing) > 0 {
		return nil, &fortie.MissingRequiredAttributeError{Resource: options.resource, Missing: missing}
	}

	return map[string]fortie.Record{wrapperKey: writeable}, nil
}
