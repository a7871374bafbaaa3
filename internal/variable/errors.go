package variable

import (
	"fmt"
	"strings"
)

// TypeConflictError carries every exclusivity violation found in one
// definition, reported together.
type TypeConflictError struct {
	Definition string
	Conflicts  []string
}

func (e *TypeConflictError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: conflicting variant markers:", e.Definition)
	for _, c := range e.Conflicts {
		sb.WriteString("\n  - ")
		sb.WriteString(c)
	}
	return sb.String()
}
