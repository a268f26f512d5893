// Package filesystem provides the types.FS implementations: a passthrough
// to the os package for real runs, and an afero-backed one so tests can
// run against an in-memory filesystem.
package filesystem
