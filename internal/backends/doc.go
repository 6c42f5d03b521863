// Package backends models the per-backend databases of generated artifacts
// (geometry sources and drawings) keyed by class id, and builds them from
// .base sidecar files beneath a repository root.
package backends
