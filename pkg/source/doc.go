// Package source exposes the public contracts for the row-loading stage.
// Implementations live under internal/source to keep the CSV details out of
// callers' way; construct one with NewLoader from the root package or
// loader.New directly.
package source
