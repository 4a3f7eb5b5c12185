package lookup_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/cosmodist/cosmology"
	"github.com/katalvlaran/cosmodist/lookup"
	"github.com/katalvlaran/cosmodist/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolRoundTrip = 1e-4

var planckOnce = sync.OnceValues(func() (*lookup.Interpolator, error) {
	tb, err := table.Build(cosmology.DefaultParams(), cosmology.NewLambdaCDM())
	if err != nil {
		return nil, err
	}

	return lookup.New(tb)
})

// planck returns a shared interpolator over the Planck-like table.
func planck(t testing.TB) *lookup.Interpolator {
	t.Helper()
	ip, err := planckOnce()
	require.NoError(t, err)

	return ip
}

type evalFunc func(p cosmology.Params, zs []float64) ([]float64, error)

func (f evalFunc) ComovingDistance(p cosmology.Params, zs []float64) ([]float64, error) {
	return f(p, zs)
}

func TestInterpolator_RoundTrip(t *testing.T) {
	ip := planck(t)
	for _, z := range []float64{1e-4, 0.01, 0.1, 0.43, 0.5, 0.7, 1.0, 1.7, 2.5, 2.9999} {
		r, err := ip.ZToR(z)
		require.NoError(t, err)
		back, err := ip.RToZ(r)
		require.NoError(t, err)
		assert.InDelta(t, z, back, tolRoundTrip, "z=%g", z)
	}
}

func TestInterpolator_MatchesIntegral(t *testing.T) {
	ip := planck(t)
	zs := []float64{0.05, 0.5, 1.0, 2.2}
	want, err := cosmology.NewLambdaCDM().ComovingDistance(cosmology.DefaultParams(), zs)
	require.NoError(t, err)

	got, err := ip.ZToRBatch(zs)
	require.NoError(t, err)
	for i := range zs {
		assert.InDelta(t, want[i], got[i], 1e-6, "z=%g", zs[i])
	}
	assert.InDelta(t, 1318.8455, got[1], 1e-3)
	assert.InDelta(t, 2303.1528, got[2], 1e-3)
}

func TestInterpolator_Monotonic(t *testing.T) {
	ip := planck(t)
	zs := make([]float64, 301)
	for i := range zs {
		zs[i] = 0.01 * float64(i)
	}
	rs, err := ip.ZToRBatch(zs)
	require.NoError(t, err)
	for i := 1; i < len(rs); i++ {
		assert.Less(t, rs[i-1], rs[i], "z=%g", zs[i])
	}

	back, err := ip.RToZBatch(rs)
	require.NoError(t, err)
	for i := 1; i < len(back); i++ {
		assert.Less(t, back[i-1], back[i])
	}
}

func TestInterpolator_ShapePreserved(t *testing.T) {
	ip := planck(t)
	zs := []float64{2, 0.5, 1}

	rs, err := ip.ZToRBatch(zs)
	require.NoError(t, err)
	require.Len(t, rs, 3)

	for i, z := range zs {
		r, err := ip.ZToR(z)
		require.NoError(t, err)
		assert.Equal(t, r, rs[i], "batch and scalar must agree, same order")
	}
}

func TestInterpolator_Endpoints(t *testing.T) {
	ip := planck(t)

	r0, err := ip.ZToR(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r0)

	rMax, err := ip.ZToR(3)
	require.NoError(t, err)
	_, hi := ip.RBounds()
	assert.Equal(t, hi, rMax)

	zMax, err := ip.RToZ(hi)
	require.NoError(t, err)
	assert.Equal(t, 3.0, zMax)

	lo, zhi := ip.ZBounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 3.0, zhi)
}

// TestInterpolator_BatchBoundPolicy pins the batch-level rejection rule:
// only a batch entirely on one side of the domain is rejected.
func TestInterpolator_BatchBoundPolicy(t *testing.T) {
	ip := planck(t)

	_, err := ip.ZToRBatch([]float64{-1, -2, -3})
	assert.ErrorIs(t, err, lookup.ErrOutOfDomain, "all below 0")

	_, err = ip.ZToRBatch([]float64{3.5, 4})
	assert.ErrorIs(t, err, lookup.ErrOutOfDomain, "all above 3")

	_, err = ip.ZToRBatch(nil)
	assert.ErrorIs(t, err, lookup.ErrOutOfDomain, "empty batch")

	_, err = ip.ZToR(-0.1)
	assert.ErrorIs(t, err, lookup.ErrOutOfDomain, "scalar below")

	rs, err := ip.ZToRBatch([]float64{-1, 1, 2})
	require.NoError(t, err, "mixed batch passes")
	require.Len(t, rs, 3)
	assert.Less(t, rs[0], 0.0, "out-of-range element is extrapolated")
	assert.InDelta(t, -cosmology.DefaultParams().HubbleDistance(), rs[0], 1.0, "slope at z=0 is c/H0")

	// Below and above at once: neither reduction holds.
	rs, err = ip.ZToRBatch([]float64{-1, 4})
	require.NoError(t, err)
	assert.Len(t, rs, 2)

	_, hi := ip.RBounds()
	_, err = ip.RToZBatch([]float64{hi + 1, hi + 2})
	assert.ErrorIs(t, err, lookup.ErrOutOfDomain, "all above r_max")

	zs, err := ip.RToZBatch([]float64{-10, 100})
	require.NoError(t, err)
	assert.Less(t, zs[0], 0.0)
	assert.Greater(t, zs[1], 0.0)
}

func TestInterpolator_NaN(t *testing.T) {
	ip := planck(t)

	r, err := ip.ZToR(math.NaN())
	require.NoError(t, err, "NaN is neither below nor above")
	assert.True(t, math.IsNaN(r))

	rs, err := ip.ZToRBatch([]float64{math.NaN(), -1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(rs[0]))
}

func TestInterpolator_LinearTableIsExact(t *testing.T) {
	// de Sitter: r = c/H0 · z, the cubic must reproduce a straight line.
	p := cosmology.Params{Hubble0: 100, OmegaM0: 0, OmegaDE0: 1}
	tb, err := table.Build(p, cosmology.NewLambdaCDM())
	require.NoError(t, err)
	ip, err := lookup.New(tb)
	require.NoError(t, err)

	r, err := ip.ZToR(1.23456)
	require.NoError(t, err)
	assert.InDelta(t, p.HubbleDistance()*1.23456, r, 1e-8)
}

func TestNew_Errors(t *testing.T) {
	_, err := lookup.New(nil)
	assert.ErrorIs(t, err, lookup.ErrNilTable)

	// Build trusts the evaluator, so a decreasing r column reaches New.
	bad := evalFunc(func(_ cosmology.Params, zs []float64) ([]float64, error) {
		out := make([]float64, len(zs))
		for i, z := range zs {
			out[i] = -z
		}
		return out, nil
	})
	tb, err := table.Build(cosmology.DefaultParams(), bad)
	require.NoError(t, err)
	_, err = lookup.New(tb)
	assert.ErrorIs(t, err, lookup.ErrNotMonotonic)
}

func TestNew_SmallTable(t *testing.T) {
	tb, err := table.FromColumns([]float64{0, 1, 2, 3}, []float64{0, 1, 4, 9})
	require.NoError(t, err)
	ip, err := lookup.New(tb)
	require.NoError(t, err)

	for _, z := range []float64{0, 1, 2, 3} {
		r, err := ip.ZToR(z)
		require.NoError(t, err)
		assert.InDelta(t, z*z, r, 1e-12, "knots are reproduced exactly")
	}
	lo, hi := ip.RBounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 9.0, hi)
}
