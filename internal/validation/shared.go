package validation

import (
	"fmt"
	"strings"
)

// Error is a per-field validation failure, rendered as "field: message"
// pairs. Handlers return the Fields map to the client for display next to
// the offending input.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
