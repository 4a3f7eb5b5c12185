package model

import "github.com/katalvlaran/cosmodist/cosmology"

const panicNilEvaluator = "model: WithEvaluator: evaluator must be non-nil"

// Option configures a Model at construction.
type Option func(*options)

type options struct {
	ev cosmology.Evaluator
}

// WithEvaluator replaces the default LambdaCDM evaluator.
// Panics on nil (programmer error).
func WithEvaluator(ev cosmology.Evaluator) Option {
	if ev == nil {
		panic(panicNilEvaluator)
	}

	return func(o *options) { o.ev = ev }
}

func gatherOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ev == nil {
		o.ev = cosmology.NewLambdaCDM()
	}

	return o
}
