package store

import (
	"encoding/json"
	"fmt"

	"studio-inventory-backend/internal/model"
)

// marshalDocument serializes a studio into its persisted JSON form. The
// payload is passed through a recursive scrub that drops null and
// empty-string fields, descending into nested records and arrays: the
// document store must never see an unset field. A value that cannot be
// serialized fails the whole write.
func marshalDocument(studio model.Studio) ([]byte, error) {
	raw, err := json.Marshal(studio)
	if err != nil {
		return nil, fmt.Errorf("unserializable studio document: %w", err)
	}

	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return json.Marshal(scrub(tree))
}

func unmarshalDocument(data []byte) (model.Studio, error) {
	var st model.Studio
	if err := json.Unmarshal(data, &st); err != nil {
		return model.Studio{}, err
	}
	return st, nil
}

// scrub removes nulls and empty strings from maps, recursing through
// nested maps and arrays. Array elements are scrubbed in place, never
// removed, so unit positions survive.
func scrub(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			switch inner := val.(type) {
			case nil:
				delete(t, k)
			case string:
				if inner == "" {
					delete(t, k)
				}
			default:
				t[k] = scrub(val)
			}
		}
		return t
	case []any:
		for i := range t {
			t[i] = scrub(t[i])
		}
		return t
	default:
		return v
	}
}
