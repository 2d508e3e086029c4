package meeting

import (
	"encoding/json"
	"regexp"
	"strings"
)

var delimiterPattern = regexp.MustCompile(`[,\s;]+`)

// StringList accepts either a JSON array of strings or a single string
// delimited by commas, semicolons, or whitespace.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}

	parts := delimiterPattern.Split(single, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*l = out
	return nil
}
