package cosmology

import (
	"fmt"
	"math"
)

// SpeedOfLight is c in km/s.
const SpeedOfLight = 299792.458

// Planck-like defaults (Planck 2015 XIII with H0 = 100h km/s/Mpc).
const (
	DefaultHubble0  = 100.0
	DefaultOmegaM0  = 0.307
	DefaultOmegaDE0 = 0.693
)

// Params is the immutable cosmological parameter triple.
//
// Hubble0 is H0 in km/s/Mpc; the pipeline convention is Hubble0 = 100 so that
// distances come out in Mpc/h. OmegaM0 + OmegaDE0 need not equal 1.
type Params struct {
	Hubble0  float64
	OmegaM0  float64
	OmegaDE0 float64
}

// DefaultParams returns the Planck-like parameter set.
func DefaultParams() Params {
	return Params{Hubble0: DefaultHubble0, OmegaM0: DefaultOmegaM0, OmegaDE0: DefaultOmegaDE0}
}

// Params returns p itself so a bare parameter slice can be ranked by the
// same selectors as built models.
func (p Params) Params() Params { return p }

// OmegaK0 returns the implied curvature density 1 - OmegaM0 - OmegaDE0.
func (p Params) OmegaK0() float64 {
	return 1 - p.OmegaM0 - p.OmegaDE0
}

// HubbleDistance returns c/H0 in Mpc (Mpc/h when Hubble0 = 100).
func (p Params) HubbleDistance() float64 {
	return SpeedOfLight / p.Hubble0
}

// E2 returns the squared dimensionless Hubble rate E(z)² = H(z)²/H0².
func (p Params) E2(z float64) float64 {
	a := 1 + z
	return p.OmegaM0*a*a*a + p.OmegaK0()*a*a + p.OmegaDE0
}

// Validate checks the parameter domain the evaluator can work with.
//
// Errors:
//   - ErrInvalidParams when any value is NaN/±Inf, Hubble0 <= 0 or OmegaM0 < 0.
func (p Params) Validate() error {
	for _, v := range [...]float64{p.Hubble0, p.OmegaM0, p.OmegaDE0} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidParams, p)
		}
	}
	if p.Hubble0 <= 0 {
		return fmt.Errorf("%w: hubble0 must be > 0, got %g", ErrInvalidParams, p.Hubble0)
	}
	if p.OmegaM0 < 0 {
		return fmt.Errorf("%w: omega_m0 must be >= 0, got %g", ErrInvalidParams, p.OmegaM0)
	}

	return nil
}

// String renders the triple in the order used by config files.
func (p Params) String() string {
	return fmt.Sprintf("{hubble0=%g omega_m0=%g omega_de0=%g}", p.Hubble0, p.OmegaM0, p.OmegaDE0)
}
