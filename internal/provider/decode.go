package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clbanning/mxj/v2"

	"github.com/fivetwenty-io/fortie/internal/constants"
	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// Decode turns a response body into a generic value: maps, slices and
// scalars for JSON, and the equivalent element tree for XML. Any other
// content type fails with *fortie.UnsupportedContentTypeError.
func Decode(resp *fortie.Response) (interface{}, error) {
	contentType := resp.ContentType()

	switch {
	case strings.Contains(contentType, constants.ContentTypeJSON):
		if len(resp.Body) == 0 {
			return nil, nil
		}

		var value interface{}

		err := json.Unmarshal(resp.Body, &value)
		if err != nil {
			return nil, fmt.Errorf("parsing JSON response: %w", err)
		}

		return value, nil

	case strings.Contains(contentType, constants.ContentTypeXML):
		if len(resp.Body) == 0 {
			return nil, nil
		}

		tree, err := mxj.NewMapXml(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("parsing XML response: %w", err)
		}

		return map[string]interface{}(tree), nil

	default:
		return nil, &fortie.UnsupportedContentTypeError{ContentType: contentType}
	}
}
