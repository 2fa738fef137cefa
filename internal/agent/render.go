package agent

import (
	"encoding/json"
	"fmt"
)

// Turn is one completed query/answer exchange, rendered to the user as
// JSON.
type Turn struct {
	Query  string  `json:"query"`
	Answer Message `json:"answer"`
}

// RenderJSON serializes v as indented JSON, falling back to plain text if
// serialization fails. Messages render as {type, content} via their
// MarshalJSON.
func RenderJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
