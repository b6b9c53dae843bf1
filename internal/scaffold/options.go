package scaffold

import (
	"log/slog"

	"github.com/leapstack-labs/leapscaffold/internal/template"
)

// Option configures Copy and Scaffold.Create.
type Option func(*options)

type options struct {
	logger *slog.Logger
	indent bool
	vars   template.Vars
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger that receives one debug record per visited node.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithIndent indents progress lines by tree depth.
func WithIndent(indent bool) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithVars adds substitution variables. Variables passed to Copy directly,
// and the package token set by Create, take precedence over these.
func WithVars(vars template.Vars) Option {
	return func(o *options) {
		o.vars = o.vars.Merge(vars)
	}
}
