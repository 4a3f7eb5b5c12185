package config

import "errors"

var (
	// ErrNotFound is returned by LoadFromEnv when no config file exists.
	ErrNotFound = errors.New("config: no config file found")

	// ErrUnsupportedFormat indicates an extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported config format")

	// ErrBadList indicates a cosmology value that is not a number, a list of
	// numbers or a comma-separated string of numbers.
	ErrBadList = errors.New("config: invalid number list")

	// ErrLengthMismatch indicates cosmology lists of different lengths.
	ErrLengthMismatch = errors.New("config: hubble0, omega_m0 and omega_de0 lists differ in length")

	// ErrInvalidLimit indicates inconsistent [limit] values.
	ErrInvalidLimit = errors.New("config: invalid limit")
)
