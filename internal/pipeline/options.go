package pipeline

import (
	"io"
	"log/slog"

	"regdefgen/internal/gen"
)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for progress and warnings.
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithStrict turns the tolerated model findings (overlaps, out-of-range
// fields, duplicates) into errors.
func WithStrict(strict bool) Option {
	return func(p *Pipeline) {
		p.strict = strict
	}
}

// WithGeneratorConfig replaces the default generator configuration.
func WithGeneratorConfig(config gen.GeneratorConfig) Option {
	return func(p *Pipeline) {
		p.generator = gen.NewGenerator(config)
	}
}

// WithModelDump writes a go-spew dump of every built model to w.
func WithModelDump(w io.Writer) Option {
	return func(p *Pipeline) {
		p.dump = w
	}
}
