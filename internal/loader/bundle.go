package loader

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/sdvars/internal/diag"
	"github.com/specialistvlad/sdvars/internal/equation"
	"github.com/specialistvlad/sdvars/internal/graphical"
	"github.com/specialistvlad/sdvars/internal/model"
	"github.com/specialistvlad/sdvars/internal/structure"
	"github.com/specialistvlad/sdvars/internal/variable"
)

// ErrNotFound is returned when a bundle has no definition by a given name.
var ErrNotFound = errors.New("definition not found")

// Entry is a decoded definition with the file it came from.
type Entry[T any] struct {
	Source string
	Value  T
}

// Failure is a definition, or a whole file, that could not be decoded.
type Failure struct {
	Source  string
	Element string
	// Index is the element's position under <variables>; -1 for file-level
	// failures.
	Index int
	Err   error
}

func (f Failure) Error() string {
	if f.Index < 0 {
		return fmt.Sprintf("%s: %v", f.Source, f.Err)
	}
	return fmt.Sprintf("%s: <%s> #%d: %v", f.Source, f.Element, f.Index, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// Bundle is the decoded content of one or more files.
type Bundle struct {
	Stocks    []Entry[model.Stock]
	Flows     []Entry[model.Flow]
	Functions []Entry[*graphical.Table]
	Failures  []Failure
}

func (b *Bundle) fail(source, element string, index int, err error) {
	b.Failures = append(b.Failures, Failure{Source: source, Element: element, Index: index, Err: err})
}

func (b *Bundle) merge(other *Bundle) {
	if other == nil {
		return
	}
	b.Stocks = append(b.Stocks, other.Stocks...)
	b.Flows = append(b.Flows, other.Flows...)
	b.Functions = append(b.Functions, other.Functions...)
	b.Failures = append(b.Failures, other.Failures...)
}

// Len is the number of decoded definitions, failures excluded.
func (b *Bundle) Len() int {
	return len(b.Stocks) + len(b.Flows) + len(b.Functions)
}

// Validate runs the semantic checks of every definition and reports decode
// failures and names used by more than one stock or flow.
func (b *Bundle) Validate() diag.Result {
	var diags hcl.Diagnostics

	for _, f := range b.Failures {
		diags = append(diags, diag.Errorf("Undecodable definition", "%s", f.Error()))
	}

	owners := make(map[string]string)
	claim := func(label, name, source string) {
		if name == "" {
			return
		}
		if prev, dup := owners[name]; dup {
			diags = append(diags, diag.Errorf("Duplicate name", "%s in %s reuses a name already defined by %s", label, source, prev))
			return
		}
		owners[name] = label
	}

	for _, e := range b.Stocks {
		label := model.Label(variable.StockElement, e.Value.Name)
		diags = append(diags, diag.Within(label, e.Value.Validate())...)
		claim(label, e.Value.Name, e.Source)
	}
	for _, e := range b.Flows {
		label := model.Label(variable.FlowElement, e.Value.Name)
		diags = append(diags, diag.Within(label, e.Value.Validate())...)
		claim(label, e.Value.Name, e.Source)
	}
	for _, e := range b.Functions {
		label := model.Label(graphical.ElementName, e.Value.Name)
		diags = append(diags, diag.Within(label, e.Value.Validate())...)
	}

	return diag.Result{Subject: "definitions", Diagnostics: diags}
}

// Function finds a graphical function by name: a standalone <gf> first, then
// the function attached to a flow of that name.
func (b *Bundle) Function(name string) (*graphical.Table, error) {
	for _, e := range b.Functions {
		if e.Value.Name == name {
			return e.Value, nil
		}
	}
	for _, e := range b.Flows {
		if e.Value.Name == name && e.Value.Function != nil {
			return e.Value.Function, nil
		}
	}
	return nil, fmt.Errorf("graphical function %q: %w", name, ErrNotFound)
}

// Dependencies lists the names read by the equations of the stock or flow
// called name. Names are not checked against the bundle.
func (b *Bundle) Dependencies(name string) ([]string, error) {
	var eqns []string
	found := false
	for _, e := range b.Stocks {
		if e.Value.Name == name {
			eqns, found = []string{e.Value.Initial}, true
			if c, ok := e.Value.Variant.(model.Conveyor); ok {
				eqns = append(eqns, c.Length)
			}
			break
		}
	}
	if !found {
		for _, e := range b.Flows {
			if e.Value.Name == name {
				found = true
				for _, p := range []*string{e.Value.Equation, e.Value.Multiplier} {
					if p != nil {
						eqns = append(eqns, *p)
					}
				}
				break
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("variable %q: %w", name, ErrNotFound)
	}

	a, err := equation.Analyze(eqns...)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", name, err)
	}
	return a.References, nil
}

// Encode writes every decoded definition under one <variables> element:
// stocks, then flows, then graphical functions.
func (b *Bundle) Encode() (*structure.Node, error) {
	w := structure.NewBuilder()
	w.Open(VariablesElement)
	for _, e := range b.Stocks {
		variable.MarshalStock(w, e.Value)
	}
	for _, e := range b.Flows {
		variable.MarshalFlow(w, e.Value)
	}
	for _, e := range b.Functions {
		graphical.Encode(w, e.Value)
	}
	w.Close()
	return w.Result()
}
