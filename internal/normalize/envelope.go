package normalize

// UnwrapArray extracts the record list from a response body that may be a
// bare array or an object wrapping one under "data" or a collection-named
// key. A shape the caller did not expect yields an empty slice, never an
// error.
func UnwrapArray(payload any, keys ...string) []map[string]any {
	switch v := payload.(type) {
	case []any:
		return toRecords(v)
	case map[string]any:
		for _, k := range append([]string{"data"}, keys...) {
			if arr, ok := v[k].([]any); ok {
				return toRecords(arr)
			}
		}
	}
	return nil
}

// UnwrapObject extracts a single record from a response body that may nest
// it under "data" or an entity-named key, or be the record itself.
func UnwrapObject(payload any, keys ...string) map[string]any {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	for _, k := range append([]string{"data"}, keys...) {
		if inner, ok := m[k].(map[string]any); ok {
			return inner
		}
	}
	return m
}

func toRecords(arr []any) []map[string]any {
	records := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records
}
