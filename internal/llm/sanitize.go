package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SanitizeAgainstKeys applies a lenient cleanup to model output before
// re-validating:
//   - drops null values and empty strings
//   - removes keys outside the allowed set (additionalProperties friendliness)
//   - trims surrounding whitespace on string values
//
// allowedKeys == nil means the schema is open and only null/empty cleanup runs.
// Returns the cleaned JSON and the list of dropped keys.
func SanitizeAgainstKeys(raw []byte, allowedKeys []string) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var allowed map[string]struct{}
	if allowedKeys != nil {
		allowed = make(map[string]struct{}, len(allowedKeys))
		for _, k := range allowedKeys {
			allowed[k] = struct{}{}
		}
	}

	dropped := make([]string, 0, 4)
	for k, v := range m {
		if allowed != nil {
			if _, ok := allowed[k]; !ok {
				delete(m, k)
				dropped = append(dropped, k+"(unknown)")
				continue
			}
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, dropped, nil
}
