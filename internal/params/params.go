// Package params decodes loosely typed puzzle parameters into typed structs.
package params

import (
	"fmt"
	"strings"

	"github.com/aretw0/puzzlebox/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Decode fills out (a pointer to a struct with mapstructure tags) from raw.
// Values may be strings as they arrive from the command line: numbers are converted
// and comma separated strings become slices. A slice or map given in raw replaces the
// default in out rather than being merged into it. Unknown keys are rejected.
func Decode(raw map[string]any, out any) error {
	if len(raw) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		ZeroFields:       true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidParams, err)
	}
	return nil
}

// FromFlags converts "key=value" flag values into a params map.
// The value is kept verbatim, commas included; a repeated key keeps the last value.
func FromFlags(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	raw := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q is not key=value", domain.ErrInvalidParams, pair)
		}
		raw[k] = v
	}
	return raw, nil
}
