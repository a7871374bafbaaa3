package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/sdvars/internal/ctxlog"
	"github.com/specialistvlad/sdvars/internal/diag"
	"github.com/specialistvlad/sdvars/internal/hclnode"
	"github.com/specialistvlad/sdvars/internal/loader"
	"github.com/specialistvlad/sdvars/internal/xmlnode"
)

// Run loads the configured path, reports every definition, evaluates the
// requested graphical functions and emits the re-encoded definitions. It
// returns a *diag.InvalidError when any definition is invalid, after the
// report and output have been written.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "path", a.config.Path)

	bundle, err := a.loader.Load(ctx, a.config.Path)
	if err != nil {
		return fmt.Errorf("failed to load definitions: %w", err)
	}
	a.logger.Info("Definitions loaded.",
		"stocks", len(bundle.Stocks), "flows", len(bundle.Flows),
		"functions", len(bundle.Functions), "failures", len(bundle.Failures))

	a.report(bundle)
	result := bundle.Validate()
	a.logResult(result)

	if err := a.evaluate(bundle); err != nil {
		return err
	}
	if err := a.emit(bundle); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.", "status", result.Status())
	return result.Err()
}

func (a *App) logResult(result diag.Result) {
	for _, w := range result.Warnings() {
		a.logger.Warn(w)
	}
	for _, e := range result.Errors() {
		a.logger.Error(e)
	}
	a.logger.Info("Validation finished.", "status", result.Status().String())
}

func (a *App) evaluate(bundle *loader.Bundle) error {
	for _, ev := range a.config.Evaluations {
		table, err := bundle.Function(ev.Name)
		if err != nil {
			return err
		}
		y, err := table.Lookup(ev.X)
		if err != nil {
			return fmt.Errorf("graphical function %q: %w", ev.Name, err)
		}
		a.logger.Debug("Graphical function evaluated.", "name", ev.Name, "x", ev.X, "y", y, "policy", table.Policy.String())
		fmt.Fprintf(a.outW, "%s(%g) = %g\n", ev.Name, ev.X, y)
	}
	return nil
}

func (a *App) emit(bundle *loader.Bundle) error {
	if a.config.Emit == EmitNone {
		return nil
	}
	tree, err := bundle.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode definitions: %w", err)
	}

	var data []byte
	switch a.config.Emit {
	case EmitXML:
		data, err = xmlnode.Render(tree)
	case EmitHCL:
		data, err = hclnode.Render(tree)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", a.config.Emit, err)
	}
	_, err = a.outW.Write(data)
	return err
}
