package fortie

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Decode copies the record into out, which must be a pointer to a struct
// or map. Field names match case-insensitively; numbers held as strings
// or floats are converted to the target type.
func (r Record) Decode(out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("creating record decoder: %w", err)
	}

	err = decoder.Decode(map[string]interface{}(r))
	if err != nil {
		return fmt.Errorf("decoding record: %w", err)
	}

	return nil
}

// DecodeMeta reads a MetaInformation block from a decoded response value.
// Missing or malformed blocks yield a zero MetaInformation.
func DecodeMeta(value interface{}) MetaInformation {
	var meta MetaInformation

	raw, ok := value.(map[string]interface{})
	if !ok {
		return meta
	}

	// XML attributes arrive as "-Name" rather than "@Name".
	normalized := make(Record, len(raw))
	for key, field := range raw {
		if strings.HasPrefix(key, "-") {
			key = "@" + strings.TrimPrefix(key, "-")
		}

		normalized[key] = field
	}

	_ = normalized.Decode(&meta)

	return meta
}
