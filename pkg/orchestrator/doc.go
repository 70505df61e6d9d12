// Package orchestrator wires the load → filter → render → assemble → deliver
// pipeline behind a single Generate call. Every stage is injectable so tests
// and alternative front ends can swap loaders or template engines.
package orchestrator
