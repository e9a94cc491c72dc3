package model

import "time"

// NormalizeTimestamp coerces the representations a stored document may
// carry for a timestamp field into a time.Time. Documents written by this
// process hold time.Time values; documents read back from the store arrive
// as RFC3339 strings (jsonb round-trip); documents imported from the old
// hosting carry the store wire form, a map with second/nanosecond parts; a
// few very old ones carry a unix epoch number. Anything else falls through
// to the unparseable branch and defaults to now.
func NormalizeTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case map[string]any:
		if sec, ok := timestampSeconds(t); ok {
			return time.Unix(sec, timestampNanos(t)).UTC()
		}
	case float64:
		return time.Unix(int64(t), 0).UTC()
	case int64:
		return time.Unix(t, 0).UTC()
	case int:
		return time.Unix(int64(t), 0).UTC()
	}
	// unparseable
	return time.Now().UTC()
}

func timestampSeconds(m map[string]any) (int64, bool) {
	for _, key := range []string{"seconds", "_seconds"} {
		if n, ok := toInt64(m[key]); ok {
			return n, true
		}
	}
	return 0, false
}

func timestampNanos(m map[string]any) int64 {
	for _, key := range []string{"nanos", "nanoseconds", "_nanoseconds"} {
		if n, ok := toInt64(m[key]); ok {
			return n
		}
	}
	return 0
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}
