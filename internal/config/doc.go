// Package config defines the format-agnostic seed-file model and the Loader
// interface used to read it. Concrete implementations, such as for HCL, are
// provided in separate packages.
package config
