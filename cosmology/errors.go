package cosmology

import "errors"

var (
	// ErrInvalidParams is returned when a parameter is NaN/±Inf, Hubble0 is
	// not strictly positive, or OmegaM0 is negative.
	ErrInvalidParams = errors.New("cosmology: invalid cosmological parameters")

	// ErrUnphysical indicates that E(z)² is not positive somewhere on the
	// requested redshift range, i.e. the model has no expanding solution there.
	ErrUnphysical = errors.New("cosmology: E(z)^2 <= 0 on requested redshift range")

	// ErrRedshiftDomain indicates a redshift that is non-finite or z <= -1.
	ErrRedshiftDomain = errors.New("cosmology: redshift outside evaluator domain")
)
