// Package jobs loads generation job manifests and turns them into
// orchestrator jobs.
//
// A manifest is a YAML document listing jobs; each job names a template,
// the sinks to deliver to and one group of rows per template placeholder.
// The manifest and templates used by the mod are embedded (see EmbeddedFS),
// so the command needs no flags or environment to run. Paths in a manifest
// are resolved against a project root supplied at build time.
package jobs
