package loader

import (
	"fmt"
	"strings"
)

const (
	// KeySeparator joins nested object keys into one composite key.
	KeySeparator = ":"

	// LineSeparator joins array elements into one multi-line value.
	LineSeparator = "\n"
)

// Flatten converts decoded structured data into a Map. Nested objects become
// composite keys joined with KeySeparator, arrays of scalars become one value
// joined with LineSeparator, null leaves are skipped and other scalars are
// formatted with %v.
//
//	{"A": {"B": "v"}}     -> "A:B" = "v"
//	{"Lines": ["l1","l2"]} -> "Lines" = "l1\nl2"
func Flatten(data map[string]any) (*Map, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformed)
	}

	entries := make(map[string]string, len(data))
	if err := flattenInto(entries, "", data); err != nil {
		return nil, err
	}
	return &Map{entries: entries}, nil
}

func flattenInto(dst map[string]string, prefix string, data map[string]any) error {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + KeySeparator + key
		}
		if err := flattenValue(dst, fullKey, value); err != nil {
			return err
		}
	}
	return nil
}

func flattenValue(dst map[string]string, key string, value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		dst[key] = v
	case map[string]any:
		return flattenInto(dst, key, v)
	case map[any]any:
		// yaml documents with non-string keys
		converted := make(map[string]any, len(v))
		for k, val := range v {
			converted[fmt.Sprint(k)] = val
		}
		return flattenInto(dst, key, converted)
	case []any:
		lines := make([]string, 0, len(v))
		for i, item := range v {
			switch item := item.(type) {
			case nil:
				lines = append(lines, "")
			case string:
				lines = append(lines, item)
			case map[string]any, map[any]any, []any:
				return fmt.Errorf("%w: %s[%d] must be a scalar", ErrMalformed, key, i)
			default:
				lines = append(lines, fmt.Sprint(item))
			}
		}
		dst[key] = strings.Join(lines, LineSeparator)
	case []string:
		dst[key] = strings.Join(v, LineSeparator)
	case []map[string]any:
		return fmt.Errorf("%w: %s must not be an array of objects", ErrMalformed, key)
	default:
		dst[key] = fmt.Sprint(v)
	}
	return nil
}
