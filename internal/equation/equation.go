// Package equation extracts the names an equation reads and the functions it
// calls. Equations are parsed with the HCL expression grammar, which covers
// the arithmetic, comparison, conditional and call forms most definitions
// use. Names are collected, never resolved.
package equation

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// ErrUnsupportedSyntax is returned for equations outside the expression
// grammar, such as IF/THEN/ELSE keyword forms.
var ErrUnsupportedSyntax = errors.New("equation is not in expression syntax")

// Analysis is the sorted, de-duplicated result of analysing equations.
type Analysis struct {
	// References are the root names read, e.g. "population".
	References []string
	// Traversals are the full access paths, e.g. "population[1]".
	Traversals []string
	// Functions are the called function names.
	Functions []string
}

// Empty reports whether nothing was found.
func (a Analysis) Empty() bool {
	return len(a.References) == 0 && len(a.Functions) == 0
}

// TraversalKey renders a traversal in canonical source form.
func TraversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// Analyze parses each equation and merges what they read and call. Blank
// equations contribute nothing.
func Analyze(equations ...string) (Analysis, error) {
	roots := make(map[string]struct{})
	traversals := make(map[string]struct{})
	functions := make(map[string]struct{})

	for _, text := range equations {
		if isBlank(text) {
			continue
		}
		expr, diags := hclsyntax.ParseExpression([]byte(text), "equation", hcl.Pos{Line: 1, Column: 1})
		if diags.HasErrors() {
			return Analysis{}, fmt.Errorf("%w: %q: %s", ErrUnsupportedSyntax, text, diags.Error())
		}

		for _, t := range hclsyntax.Variables(expr) {
			roots[t.RootName()] = struct{}{}
			traversals[TraversalKey(t)] = struct{}{}
		}

		hclsyntax.VisitAll(expr, func(n hclsyntax.Node) hcl.Diagnostics {
			if call, ok := n.(*hclsyntax.FunctionCallExpr); ok {
				functions[call.Name] = struct{}{}
			}
			return nil
		})
	}

	return Analysis{
		References: sortedKeys(roots),
		Traversals: sortedKeys(traversals),
		Functions:  sortedKeys(functions),
	}, nil
}

func sortedKeys(m map[string]struct{}) []string {
	if len(m) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(m))
}

func isBlank(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}
