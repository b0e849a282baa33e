package seo

import (
	"encoding/json"
)

// Serialize renders v as indented JSON for embedding in a script block.
// Map keys are sorted, so equal inputs always produce equal text.
func Serialize(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

// Parse decodes serialized structured data back into generic values.
func Parse(text string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Validate reports whether candidate is an object carrying both "@context" and "@type".
// Structs are inspected through their JSON encoding.
func Validate(candidate any) bool {
	var obj map[string]any
	switch v := candidate.(type) {
	case nil:
		return false
	case map[string]any:
		obj = v
	case map[string]string:
		return v["@context"] != "" && v["@type"] != ""
	case string, []byte, []any:
		return false
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return false
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return false
		}
	}
	return truthy(obj["@context"]) && truthy(obj["@type"])
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}
