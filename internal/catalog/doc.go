// Package catalog models the canonical repository of part collections audited
// by the partlint CLI and loads it from .blt collection files on disk.
//
// It exposes Repository, Collection, and Class types consumed by the check
// engine together with LoadRepository for reading a repository root.
package catalog
