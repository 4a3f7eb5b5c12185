package model

import "errors"

var (
	// ErrEmptySelection is returned by the extremal selectors when the input
	// holds no model with a comparable OmegaM0 (empty slice, or all NaN).
	ErrEmptySelection = errors.New("model: no candidate for extremal selection")

	// ErrUnknownExtremum indicates an Extremum value other than Min or Max.
	ErrUnknownExtremum = errors.New("model: unknown extremum")
)
