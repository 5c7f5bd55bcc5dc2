package provider

import (
	"net/url"
	"strings"

	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// BuildURL returns "<apiRoot>/<basePath>/" followed by each sub-path
// segment and a trailing slash, then the query parameters in insertion
// order. Segments, keys and values are percent-encoded.
func BuildURL(apiRoot, basePath string, subPaths []string, params *fortie.QueryParams) string {
	var builder strings.Builder

	builder.WriteString(strings.TrimSuffix(apiRoot, "/"))
	builder.WriteString("/")
	builder.WriteString(basePath)
	builder.WriteString("/")

	for _, segment := range subPaths {
		builder.WriteString(url.PathEscape(segment))
		builder.WriteString("/")
	}

	separator := "?"

	params.Each(func(key, value string) {
		builder.WriteString(separator)
		builder.WriteString(url.QueryEscape(key))
		builder.WriteString("=")
		builder.WriteString(url.QueryEscape(value))

		separator = "&"
	})

	return builder.String()
}
