// Package kernel provides the core domain primitives shared by every
// aggregate in the restaurant backend. Currently this is the UUID value
// object, which wraps github.com/google/uuid with validation and
// comparison behavior so identifiers are always constructed explicitly.
package kernel
