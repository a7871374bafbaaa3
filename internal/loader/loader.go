package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/sdvars/internal/ctxlog"
	"github.com/specialistvlad/sdvars/internal/fsutil"
	"github.com/specialistvlad/sdvars/internal/graphical"
	"github.com/specialistvlad/sdvars/internal/hclnode"
	"github.com/specialistvlad/sdvars/internal/model"
	"github.com/specialistvlad/sdvars/internal/structure"
	"github.com/specialistvlad/sdvars/internal/variable"
	"github.com/specialistvlad/sdvars/internal/xmlnode"
	"golang.org/x/sync/errgroup"
)

// VariablesElement is the container whose children are decoded.
const VariablesElement = "variables"

// Extensions lists the file extensions the loader reads.
var Extensions = []string{".xml", ".xmile", ".stmx", ".hcl"}

// Loader reads definition files from disk.
type Loader struct {
	workers int
}

// NewLoader creates a loader parsing at most workers files at once. A
// non-positive value means no limit.
func NewLoader(workers int) *Loader {
	return &Loader{workers: workers}
}

// Load decodes every definition file under paths. Each path may be a file or
// a directory. Errors reaching a path are fatal; errors inside a file are
// recorded in Bundle.Failures.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Bundle, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loader started.", "path_count", len(paths), "workers", l.workers)

	files, err := discover(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered definition files.", "count", len(files))

	parts := make([]*Bundle, len(files))
	g, gctx := errgroup.WithContext(ctx)
	if l.workers > 0 {
		g.SetLimit(l.workers)
	}
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parts[i] = loadFile(gctx, file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bundle := &Bundle{}
	for _, part := range parts {
		bundle.merge(part)
	}
	for _, f := range bundle.Failures {
		logger.Warn("Definition failed to decode.", "source", f.Source, "element", f.Element, "index", f.Index, "error", f.Err)
	}
	logger.Debug("Loading complete.",
		"stocks", len(bundle.Stocks), "flows", len(bundle.Flows),
		"functions", len(bundle.Functions), "failures", len(bundle.Failures))
	return bundle, nil
}

// Load is a convenience wrapper around an unbounded Loader.
func Load(ctx context.Context, paths ...string) (*Bundle, error) {
	return NewLoader(0).Load(ctx, paths...)
}

// discover expands paths into a de-duplicated list of definition files.
func discover(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() && !fsutil.HasExtension(path, Extensions...) {
			return nil, fmt.Errorf("unsupported file %s: expected one of %s", path, strings.Join(Extensions, ", "))
		}

		files, err := fsutil.FindFiles(path, Extensions...)
		if err != nil {
			return nil, fmt.Errorf("error walking path %s: %w", path, err)
		}
		for _, f := range files {
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			all = append(all, f)
		}
	}
	return all, nil
}

// Parse reads a document with the parser its extension selects.
func Parse(path string, data []byte) (*structure.Node, error) {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return hclnode.Parse(path, data)
	}
	return xmlnode.Parse(path, data)
}

// loadFile never fails as a whole: problems become failures in the result.
func loadFile(ctx context.Context, path string) *Bundle {
	logger := ctxlog.FromContext(ctx).With("source", path)
	part := &Bundle{}

	data, err := os.ReadFile(path)
	if err != nil {
		part.fail(path, "", -1, err)
		return part
	}
	root, err := Parse(path, data)
	if err != nil {
		part.fail(path, "", -1, err)
		return part
	}

	container := structure.Find(root, VariablesElement)
	if container == nil {
		logger.Debug("No variables element, skipping file.")
		return part
	}

	part.decode(path, container)
	logger.Debug("File decoded.", "stocks", len(part.Stocks), "flows", len(part.Flows), "functions", len(part.Functions), "failures", len(part.Failures))
	return part
}

// decode reads every recognised child of a <variables> element. Unknown
// children, such as auxiliaries or modules, are skipped.
func (b *Bundle) decode(source string, container structure.Element) {
	for i, el := range container.Children() {
		switch el.Name() {
		case variable.StockElement:
			s, err := variable.DecodeStock(el)
			if err != nil {
				b.fail(source, el.Name(), i, err)
				continue
			}
			b.Stocks = append(b.Stocks, Entry[model.Stock]{Source: source, Value: s})
		case variable.FlowElement:
			f, err := variable.DecodeFlow(el)
			if err != nil {
				b.fail(source, el.Name(), i, err)
				continue
			}
			b.Flows = append(b.Flows, Entry[model.Flow]{Source: source, Value: f})
		case graphical.ElementName:
			t, err := graphical.Decode(el)
			if err != nil {
				b.fail(source, el.Name(), i, err)
				continue
			}
			b.Functions = append(b.Functions, Entry[*graphical.Table]{Source: source, Value: t})
		}
	}
}
