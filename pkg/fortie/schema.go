package fortie

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// ResourceSchema describes which fields of a resource are readable,
// which may be sent on write, and which must be present for a write.
//
// The sets satisfy required ⊆ writeable ⊆ attributes; NewResourceSchema
// refuses to build a schema that does not.
type ResourceSchema struct {
	attributes map[string]struct{}
	writeable  map[string]struct{}
	required   []string
}

// NewResourceSchema builds an immutable schema from the three field lists.
// Every violation of the subset relationship is reported in a single error.
func NewResourceSchema(attributes, writeable, required []string) (*ResourceSchema, error) {
	schema := &ResourceSchema{
		attributes: toSet(attributes),
		writeable:  toSet(writeable),
		required:   dedupe(required),
	}

	var result *multierror.Error

	for _, field := range sortedKeys(schema.writeable) {
		if _, ok := schema.attributes[field]; !ok {
			result = multierror.Append(result, fmt.Errorf("%w: writeable field %q is not an attribute", ErrInvalidSchema, field))
		}
	}

	for _, field := range schema.required {
		if _, ok := schema.writeable[field]; !ok {
			result = multierror.Append(result, fmt.Errorf("%w: required field %q is not writeable", ErrInvalidSchema, field))
		}
	}

	err := result.ErrorOrNil()
	if err != nil {
		return nil, err
	}

	return schema, nil
}

// MustResourceSchema is like NewResourceSchema but panics on an invalid
// schema. It is meant for package-level resource declarations.
func MustResourceSchema(attributes, writeable, required []string) *ResourceSchema {
	schema, err := NewResourceSchema(attributes, writeable, required)
	if err != nil {
		panic(err)
	}

	return schema
}

// IsAttribute reports whether field is a known attribute.
func (s *ResourceSchema) IsAttribute(field string) bool {
	_, ok := s.attributes[field]

	return ok
}

// IsWriteable reports whether field may be sent on create or update.
func (s *ResourceSchema) IsWriteable(field string) bool {
	_, ok := s.writeable[field]

	return ok
}

// Attributes returns the attribute names in sorted order.
func (s *ResourceSchema) Attributes() []string {
	return sortedKeys(s.attributes)
}

// Writeable returns the writeable field names in sorted order.
func (s *ResourceSchema) Writeable() []string {
	return sortedKeys(s.writeable)
}

// Required returns the required field names in declaration order.
func (s *ResourceSchema) Required() []string {
	out := make([]string, len(s.required))
	copy(out, s.required)

	return out
}

func toSet(fields []string) map[string]struct{} {
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}

	return set
}

func dedupe(fields []string) []string {
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))

	for _, field := range fields {
		if _, ok := seen[field]; ok {
			continue
		}

		seen[field] = struct{}{}
		out = append(out, field)
	}

	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
