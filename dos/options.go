// SPDX-License-Identifier: MIT

package dos

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/isingdos/progress"
)

// FeasibleSide is the largest side that enumerates in practical time and
// memory. Larger sides log a capacity warning before starting.
const FeasibleSide = 5

// DefaultProgressStep is the number of configurations between two progress
// reports.
const DefaultProgressStep uint64 = 1 << 14

const panicProgressStepInvalid = "dos: WithProgressStep: step must be positive"

// Option configures Enumerate and BuildClasses.
type Option func(*options)

type options struct {
	report progress.Reporter
	step   uint64
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		report: progress.Nop,
		step:   DefaultProgressStep,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithProgress installs a reporter called during the enumeration pass.
// A nil reporter restores the default no-op.
func WithProgress(r progress.Reporter) Option {
	return func(o *options) {
		if r == nil {
			r = progress.Nop
		}
		o.report = r
	}
}

// WithProgressStep sets how many configurations pass between reports.
// Panics if step is zero.
func WithProgressStep(step uint64) Option {
	if step == 0 {
		panic(panicProgressStepInvalid)
	}

	return func(o *options) { o.step = step }
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
