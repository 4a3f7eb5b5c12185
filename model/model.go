package model

import (
	"sync"

	"github.com/katalvlaran/cosmodist/cosmology"
	"github.com/katalvlaran/cosmodist/lookup"
	"github.com/katalvlaran/cosmodist/table"
)

// state is everything derived from one parameter set. It is never mutated
// after build, so readers may use it without holding the lock.
type state struct {
	params cosmology.Params
	table  *table.Table
	lookup *lookup.Interpolator
}

// Model converts between redshift and comoving distance for one cosmology.
type Model struct {
	mu sync.RWMutex
	ev cosmology.Evaluator
	st *state
}

// New builds the distance table and both interpolants for p.
//
// Errors:
//   - table.ErrEvaluator wrapping the evaluator's failure (e.g.
//     cosmology.ErrInvalidParams, cosmology.ErrUnphysical).
//   - lookup.ErrNotMonotonic if the evaluator produced a non-monotonic table.
func New(p cosmology.Params, opts ...Option) (*Model, error) {
	o := gatherOptions(opts)
	st, err := build(p, o.ev)
	if err != nil {
		return nil, err
	}

	return &Model{ev: o.ev, st: st}, nil
}

// NewDefault builds a Model with cosmology.DefaultParams.
func NewDefault(opts ...Option) (*Model, error) {
	return New(cosmology.DefaultParams(), opts...)
}

// FromTable wraps an already built table, e.g. one restored from storage,
// without calling the evaluator. Later SetModel calls use the configured
// evaluator as usual.
func FromTable(p cosmology.Params, t *table.Table, opts ...Option) (*Model, error) {
	o := gatherOptions(opts)
	ip, err := lookup.New(t)
	if err != nil {
		return nil, err
	}

	return &Model{ev: o.ev, st: &state{params: p, table: t, lookup: ip}}, nil
}

// SetModel re-parameterizes m with a full rebuild (table and interpolants).
// Nothing from the previous table is reused. On error m keeps its previous
// state.
func (m *Model) SetModel(p cosmology.Params) error {
	st, err := build(p, m.ev)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.st = st
	m.mu.Unlock()

	return nil
}

func build(p cosmology.Params, ev cosmology.Evaluator) (*state, error) {
	t, err := table.Build(p, ev)
	if err != nil {
		return nil, err
	}
	ip, err := lookup.New(t)
	if err != nil {
		return nil, err
	}

	return &state{params: p, table: t, lookup: ip}, nil
}

func (m *Model) snapshot() *state {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.st
}

// Params returns the current parameter set.
func (m *Model) Params() cosmology.Params { return m.snapshot().params }

// Table returns the current distance table.
func (m *Model) Table() *table.Table { return m.snapshot().table }

// ZToR converts one redshift; see lookup.Interpolator.ZToRBatch for the
// bound policy.
func (m *Model) ZToR(z float64) (float64, error) {
	return m.snapshot().lookup.ZToR(z)
}

// ZToRBatch converts redshifts to comoving distances, same length and order.
func (m *Model) ZToRBatch(zs []float64) ([]float64, error) {
	return m.snapshot().lookup.ZToRBatch(zs)
}

// RToZ converts one comoving distance.
func (m *Model) RToZ(r float64) (float64, error) {
	return m.snapshot().lookup.RToZ(r)
}

// RToZBatch converts comoving distances to redshifts, same length and order.
func (m *Model) RToZBatch(rs []float64) ([]float64, error) {
	return m.snapshot().lookup.RToZBatch(rs)
}

// DeltaSToDeltaZ returns RToZ(ZToR(zMin)+deltaS) - zMin: the redshift
// interval covered by a comoving separation deltaS starting at zMin.
// Both conversions run against the same table even if SetModel races.
func (m *Model) DeltaSToDeltaZ(deltaS, zMin float64) (float64, error) {
	ip := m.snapshot().lookup
	r0, err := ip.ZToR(zMin)
	if err != nil {
		return 0, err
	}
	z, err := ip.RToZ(r0 + deltaS)
	if err != nil {
		return 0, err
	}

	return z - zMin, nil
}

// DeltaSToDeltaZBatch is DeltaSToDeltaZ broadcast over several separations
// sharing one zMin.
func (m *Model) DeltaSToDeltaZBatch(deltaS []float64, zMin float64) ([]float64, error) {
	ip := m.snapshot().lookup
	r0, err := ip.ZToR(zMin)
	if err != nil {
		return nil, err
	}
	rs := make([]float64, len(deltaS))
	for i, ds := range deltaS {
		rs[i] = r0 + ds
	}
	zs, err := ip.RToZBatch(rs)
	if err != nil {
		return nil, err
	}
	for i := range zs {
		zs[i] -= zMin
	}

	return zs, nil
}
