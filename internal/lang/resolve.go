// Package lang resolves localization keys against a nested dictionary and
// formats localized display text.
package lang

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Dictionary is a nested localization table as decoded from a language JSON
// file. Values are either string leaves, numbers, or further nested maps.
type Dictionary map[string]any

// Resolve walks dict one dotted segment of key at a time. It fails when an
// intermediate value is not a keyed mapping or a segment is absent. A string
// leaf is returned verbatim; a numeric leaf is returned in canonical decimal
// form. Any other terminal value (mapping, list, boolean, null) is treated as
// not found. Missing keys are an ordinary result, never an error.
func Resolve(dict Dictionary, key string) (string, bool) {
	var cur any = map[string]any(dict)
	for _, seg := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		if cur, ok = m[seg]; !ok {
			return "", false
		}
	}

	switch v := cur.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}
