package variable

import "fmt"

// markerRule ties a variant kind to the presence of its marker.
type markerRule[K comparable, R any] struct {
	kind    K
	marker  string
	present func(r *R) bool
}

// precedence is an ordered marker checklist, highest priority first.
type precedence[K comparable, R any] struct {
	rules    []markerRule[K, R]
	fallback K
}

// classify returns the kind of the first rule whose marker is present.
func (p precedence[K, R]) classify(r *R) K {
	for _, rule := range p.rules {
		if rule.present(r) {
			return rule.kind
		}
	}
	return p.fallback
}

// conflicts returns one message for every pair of present markers, in
// precedence order.
func (p precedence[K, R]) conflicts(r *R) []string {
	var present []string
	for _, rule := range p.rules {
		if rule.present(r) {
			present = append(present, rule.marker)
		}
	}

	var out []string
	for i := 0; i < len(present); i++ {
		for j := i + 1; j < len(present); j++ {
			out = append(out, fmt.Sprintf("<%s> and <%s> are mutually exclusive", present[i], present[j]))
		}
	}
	return out
}
