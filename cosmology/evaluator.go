package cosmology

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/integrate/quad"
)

// Evaluator maps redshifts to line-of-sight comoving distances for a given
// parameter set. Implementations must return a slice of the same length and
// order as zs and must be safe for concurrent use if models are built
// concurrently.
type Evaluator interface {
	ComovingDistance(p Params, zs []float64) ([]float64, error)
}

// DefaultNodes is the number of Gauss–Legendre nodes used per integration
// segment. Segments between table rows are ~5e-5 wide, so a handful of nodes
// is already exact to machine precision for the smooth 1/E(z).
const DefaultNodes = 5

const panicNodesInvalid = "cosmology: WithNodes: n must be >= 1"

// Option configures a LambdaCDM evaluator.
type Option func(*LambdaCDM)

// WithNodes sets the Gauss–Legendre order used per segment.
// Panics if n < 1 (programmer error).
func WithNodes(n int) Option {
	if n < 1 {
		panic(panicNodesInvalid)
	}

	return func(l *LambdaCDM) { l.nodes = n }
}

// LambdaCDM evaluates comoving distance for a (possibly curved) Lambda-CDM
// model without radiation. It is immutable after construction and therefore
// reentrant.
type LambdaCDM struct {
	nodes int
	x, w  []float64 // nodes and weights on [-1, 1]
}

var _ Evaluator = (*LambdaCDM)(nil)

// NewLambdaCDM returns an evaluator with DefaultNodes unless overridden.
func NewLambdaCDM(opts ...Option) *LambdaCDM {
	l := &LambdaCDM{nodes: DefaultNodes}
	for _, opt := range opts {
		opt(l)
	}
	l.x = make([]float64, l.nodes)
	l.w = make([]float64, l.nodes)
	quad.Legendre{}.FixedLocations(l.x, l.w, -1, 1)

	return l
}

// Nodes reports the per-segment quadrature order.
func (l *LambdaCDM) Nodes() int { return l.nodes }

// ComovingDistance returns D_C(z) = c/H0 · ∫₀ᶻ dz'/E(z') for every z in zs.
//
// Implementation:
//   - Stage 1: validate p and every z (finite, z > -1).
//   - Stage 2: visit redshifts in ascending order and accumulate the integral
//     segment by segment, so each segment is integrated once regardless of k.
//   - Stage 3: scatter the results back to the caller's order.
//
// Errors:
//   - ErrInvalidParams, ErrRedshiftDomain from validation.
//   - ErrUnphysical when E(z)² <= 0 at any quadrature node.
func (l *LambdaCDM) ComovingDistance(p Params, zs []float64) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	for i, z := range zs {
		if math.IsNaN(z) || math.IsInf(z, 0) || z <= -1 {
			return nil, fmt.Errorf("%w: zs[%d]=%g", ErrRedshiftDomain, i, z)
		}
	}

	order := make([]int, len(zs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case zs[a] < zs[b]:
			return -1
		case zs[a] > zs[b]:
			return 1
		}
		return 0
	})

	dh := p.HubbleDistance()
	out := make([]float64, len(zs))
	var (
		acc, prev float64
		seg       float64
		ok        bool
	)
	for _, idx := range order {
		z := zs[idx]
		if z != prev {
			seg, ok = l.segment(p, prev, z)
			if !ok {
				return nil, fmt.Errorf("%w: %v between z=%g and z=%g", ErrUnphysical, p, prev, z)
			}
			acc += seg
			prev = z
		}
		out[idx] = dh * acc
	}

	return out, nil
}

// segment integrates 1/E over [a, b] (signed when b < a). ok is false if
// E² is not positive at any node.
func (l *LambdaCDM) segment(p Params, a, b float64) (float64, bool) {
	half, mid := 0.5*(b-a), 0.5*(a+b)
	var sum float64
	for i, xi := range l.x {
		e2 := p.E2(mid + half*xi)
		if !(e2 > 0) {
			return 0, false
		}
		sum += l.w[i] / math.Sqrt(e2)
	}

	return sum * half, true
}
