package app

import (
	"errors"

	"github.com/specialistvlad/sdvars/internal/equation"
	"github.com/specialistvlad/sdvars/internal/loader"
	"github.com/specialistvlad/sdvars/internal/variable"
)

// report logs one line per decoded definition and failure.
func (a *App) report(bundle *loader.Bundle) {
	for _, e := range bundle.Stocks {
		s := e.Value
		a.logger.Info("Stock decoded.",
			"name", s.Name, "kind", variable.ClassifyStock(variable.EncodeStock(s)).String(),
			"source", e.Source, "inflows", len(s.Inflows), "outflows", len(s.Outflows))
		a.logDependencies(bundle, s.Name)
	}
	for _, e := range bundle.Flows {
		f := e.Value
		a.logger.Info("Flow decoded.",
			"name", f.Name, "kind", variable.ClassifyFlow(variable.EncodeFlow(f)).String(),
			"source", e.Source, "graphical", f.Function != nil)
		a.logDependencies(bundle, f.Name)
	}
	for _, e := range bundle.Functions {
		t := e.Value
		attrs := []any{"name", t.Name, "policy", t.Policy.String(), "points", t.Len(), "source", e.Source}
		if mean, ok := t.Mean(); ok {
			attrs = append(attrs, "mean", mean)
		}
		a.logger.Info("Graphical function decoded.", attrs...)
	}
	for _, f := range bundle.Failures {
		a.logger.Error("Definition rejected.", "source", f.Source, "element", f.Element, "index", f.Index, "error", f.Err)
	}
}

func (a *App) logDependencies(bundle *loader.Bundle, name string) {
	deps, err := bundle.Dependencies(name)
	switch {
	case errors.Is(err, equation.ErrUnsupportedSyntax):
		a.logger.Debug("Equation not analysed.", "name", name, "error", err)
	case err != nil:
		a.logger.Debug("Dependencies unavailable.", "name", name, "error", err)
	default:
		a.logger.Debug("Equation reads.", "name", name, "names", deps)
	}
}
