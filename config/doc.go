// Package config loads the cosmology sweep and redshift limits a pipeline
// run uses, from TOML (BurntSushi/toml) or YAML (gopkg.in/yaml.v3).
//
// Example cosmodist.toml:
//
//	[cosmology]
//	hubble0   = [100, 100]
//	omega_m0  = "0.27, 0.31"     # comma lists are accepted too
//	omega_de0 = [0.73, 0.69]
//
//	[limit]
//	z_min = 0.43
//	z_max = 0.7
//	s_max = 200
//
// Every key is optional; a missing key keeps its value from Default. The
// environment variables COSMODIST_HUBBLE0, COSMODIST_OMEGA_M0 and
// COSMODIST_OMEGA_DE0 override the file and use the same list syntax.
//
// A loaded Config is a plain value: pass it down explicitly, there is no
// package-level state.
package config
