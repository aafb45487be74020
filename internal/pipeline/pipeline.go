package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-git/go-billy/v5"
	"golang.org/x/sync/errgroup"

	"regdefgen/internal/diagnostic"
	"regdefgen/internal/gen"
	"regdefgen/internal/model"
	"regdefgen/internal/schema"
)

// Pipeline compiles register definition documents: load, decode, build,
// emit, write. Each document is processed independently; a Pipeline holds
// no per-document state and may compile several documents concurrently.
type Pipeline struct {
	logger    *slog.Logger
	strict    bool
	generator *gen.Generator
	writer    *gen.Writer

	dump   io.Writer
	dumpMu sync.Mutex
}

// Result describes one successfully compiled document.
type Result struct {
	Source   string
	Output   string
	Bytes    int
	Warnings []diagnostic.Diagnostic
}

// New creates a Pipeline writing its output into fs.
func New(fs billy.Filesystem, opts ...Option) *Pipeline {
	p := &Pipeline{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		generator: gen.NewGenerator(gen.DefaultGeneratorConfig()),
		writer:    gen.NewWriter(fs),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// CompileFile loads the document at path and compiles it.
func (p *Pipeline) CompileFile(ctx context.Context, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.logger.Info("compiling document", "path", path)

	doc, err := schema.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	res, err := p.Compile(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", path, err)
	}

	p.logger.Info("wrote output", "path", path, "output", res.Output, "bytes", res.Bytes)

	return res, nil
}

// Compile runs every stage after loading. Nothing is written unless all
// stages before the writer succeed.
func (p *Pipeline) Compile(ctx context.Context, doc *schema.Document) (*Result, error) {
	file, diags, err := schema.Decode(doc)
	p.logWarnings(doc.Name, diags)

	if err != nil {
		return nil, err
	}

	unit, err := model.Build(file)
	if err != nil {
		return nil, fmt.Errorf("building model: %w", err)
	}

	p.logger.Debug("built model", "document", doc.Name, "namespaces", len(unit.Namespaces))

	findings := model.Check(unit)
	if p.strict {
		findings.Promote()

		if findings.HasErrors() {
			return nil, &schema.SchemaError{Name: doc.Name, Diagnostics: findings}
		}
	}

	p.logWarnings(doc.Name, findings)
	p.dumpModel(unit)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := p.generator.Generate(unit)
	if err != nil {
		return nil, fmt.Errorf("generating: %w", err)
	}

	if err := p.writer.Write(out); err != nil {
		return nil, err
	}

	warnings := append(append([]diagnostic.Diagnostic{}, diags.Warnings...), findings.Warnings...)

	return &Result{
		Source:   doc.Name,
		Output:   out.Path,
		Bytes:    len(out.Content),
		Warnings: warnings,
	}, nil
}

// CompileAll compiles every path, up to jobs at a time. By default the
// first failure stops the run. With keepGoing every document is attempted
// and all failures are returned joined.
func (p *Pipeline) CompileAll(ctx context.Context, paths []string, jobs int, keepGoing bool) error {
	if jobs < 1 {
		jobs = 1
	}

	var (
		mu     sync.Mutex
		failed []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, path := range paths {
		if !keepGoing && gctx.Err() != nil {
			break
		}

		path := path

		g.Go(func() error {
			_, err := p.CompileFile(gctx, path)
			if err == nil {
				return nil
			}

			if !keepGoing {
				return err
			}

			p.logger.Error("document failed", "path", path, "error", err)

			mu.Lock()
			failed = append(failed, err)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return errors.Join(failed...)
}

func (p *Pipeline) logWarnings(name string, diags *diagnostic.Diagnostics) {
	if diags == nil {
		return
	}

	for _, w := range diags.Warnings {
		p.logger.Warn(w.Message, "document", name, "code", w.Code, "path", w.Path, "line", w.Line)
	}
}

func (p *Pipeline) dumpModel(unit *model.Unit) {
	if p.dump == nil {
		return
	}

	p.dumpMu.Lock()
	defer p.dumpMu.Unlock()

	spew.Fdump(p.dump, unit)
}
