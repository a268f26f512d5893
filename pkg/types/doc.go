// Package types holds the shared types used across dotsetup: packs,
// deployment operations, and the filesystem interface the rest of the
// codebase is written against.
package types
