// Package cosmology defines the Lambda-CDM parameter triple and the
// comoving-distance evaluator the distance tables are built from.
//
// 🚀 What is inside?
//
//	Params    : immutable {Hubble0, OmegaM0, OmegaDE0} triple; curvature
//	             is implied as OmegaK0 = 1 - OmegaM0 - OmegaDE0.
//	Evaluator : capability that maps a vector of redshifts to line-of-sight
//	             comoving distances, same length and order.
//	LambdaCDM : the default Evaluator: fixed-node Gauss–Legendre integration
//	             of c/H0 · ∫ dz'/E(z') accumulated over sorted redshifts.
//
// Units:
//
//	H0 is taken as Hubble0 km/s/Mpc. With the conventional Hubble0 = 100 the
//	returned distances are in Mpc/h, which is what the correlation pipeline
//	expects.
//
//	E(z)² = OmegaM0·(1+z)³ + OmegaK0·(1+z)² + OmegaDE0
//
// ⚙️ Usage:
//
//	ev := cosmology.NewLambdaCDM()
//	r, err := ev.ComovingDistance(cosmology.DefaultParams(), []float64{0.5, 1.0})
//
// Complexity: O(k·log k + k·nodes) for k redshifts.
package cosmology
