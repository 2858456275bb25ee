package normalize

import "strconv"

// String picks the first candidate key holding a non-empty string and
// returns its value, falling back to def when every candidate is missing or
// empty. Numeric identifiers are formatted, since some backends emit them
// where others emit strings.
func String(record map[string]any, def string, keys ...string) string {
	if record == nil {
		return def
	}
	for _, k := range keys {
		v, ok := record[k]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			if s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64)
		case int:
			return strconv.Itoa(s)
		case bool:
			return strconv.FormatBool(s)
		}
	}
	return def
}

// Map picks the first candidate key holding an embedded object. Arrays do
// not count; populated references arrive as plain objects.
func Map(record map[string]any, keys ...string) map[string]any {
	if record == nil {
		return nil
	}
	for _, k := range keys {
		if m, ok := record[k].(map[string]any); ok {
			return m
		}
	}
	return nil
}

// Bool picks the first candidate key holding a boolean, falling back to def.
func Bool(record map[string]any, def bool, keys ...string) bool {
	if record == nil {
		return def
	}
	for _, k := range keys {
		if b, ok := record[k].(bool); ok {
			return b
		}
	}
	return def
}
