// Package testutil provides the shared test scaffolding: isolated
// environments with the relevant env vars pointed at temp dirs and
// helpers for building pack fixtures.
package testutil
