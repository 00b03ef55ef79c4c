// Package kernel contains shared domain primitives used by every aggregate.
//
// The package provides the UUID value object, a thin wrapper around
// github.com/google/uuid that enforces construction through factory
// functions. A zero-value UUID never passes Validate, which lets
// aggregates detect identifiers that bypassed a constructor.
package kernel
