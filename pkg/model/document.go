package model

// Helpers for pulling typed fields out of untyped documents. Each returns
// the documented default when the field is missing; the container-typed
// ones additionally report when the field is present but the wrong kind,
// which Validate surfaces as a rule violation.

func docString(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

func docInt(raw map[string]any, key string, def int) int {
	switch n := raw[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		// JSON numbers decode as float64
		return int(n)
	}
	return def
}

func docRounds(raw map[string]any, key string) ([]InterviewRound, bool) {
	switch v := raw[key].(type) {
	case nil:
		return []InterviewRound{}, false
	case []InterviewRound:
		return v, false
	case []any:
		rounds := make([]InterviewRound, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				rounds = append(rounds, InterviewRound{
					Name:    docString(m, "name"),
					Details: docString(m, "details"),
				})
			}
		}
		return rounds, false
	}
	return []InterviewRound{}, true
}

func docStrings(raw map[string]any, key string) ([]string, bool) {
	switch v := raw[key].(type) {
	case nil:
		return []string{}, false
	case []string:
		return v, false
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, false
	}
	return []string{}, true
}

func docScores(raw map[string]any, key string) (map[string]string, bool) {
	switch v := raw[key].(type) {
	case nil:
		return map[string]string{}, false
	case map[string]string:
		return v, false
	case map[string]any:
		out := make(map[string]string, len(v))
		for exam, score := range v {
			if s, ok := score.(string); ok {
				out[exam] = s
			}
		}
		return out, false
	}
	return map[string]string{}, true
}
