package audit

import (
	"context"

	"github.com/partlint/partlint/internal/backends"
	"github.com/partlint/partlint/internal/catalog"
)

// CatalogLoader loads a part catalog from a repository root.
type CatalogLoader interface {
	Load(rootPath string) (*catalog.Repository, error)
}

// DatabaseBuilder constructs the backend databases for a loaded repository.
type DatabaseBuilder interface {
	Build(repository *catalog.Repository) (backends.DatabaseSet, error)
}

// AuditRunner executes audit passes against a part repository.
type AuditRunner interface {
	Run(executionContext context.Context, options CommandOptions) error
}

// FilesystemCatalogLoader loads catalogs from collection files on disk.
type FilesystemCatalogLoader struct{}

// Load reads every collection file beneath the repository root.
func (FilesystemCatalogLoader) Load(rootPath string) (*catalog.Repository, error) {
	return catalog.LoadRepository(rootPath)
}

// SidecarDatabaseBuilder builds databases from the base files of the standard backends.
type SidecarDatabaseBuilder struct{}

// Build scans the geometry and drawing backend directories of the repository.
func (SidecarDatabaseBuilder) Build(repository *catalog.Repository) (backends.DatabaseSet, error) {
	return backends.BuildDefaultSet(repository)
}
