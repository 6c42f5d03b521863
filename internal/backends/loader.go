package backends

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/partlint/partlint/internal/catalog"
)

const (
	svgArtifactExtensionConstant = ".svg"
	pngArtifactExtensionConstant = ".png"

	sidecarReadErrorTemplateConstant  = "unable to read base file %s: %w"
	sidecarParseErrorTemplateConstant = "unable to parse base file %s: %w"
	sidecarFilenameTemplateConstant   = "base file %s declares an entry without a filename"
	backendDirectoryTemplateConstant  = "unable to read backend directory %s: %w"
)

type baseEntryDocument struct {
	Filename string          `yaml:"filename"`
	Authors  []string        `yaml:"authors"`
	License  catalog.License `yaml:"license"`
	ClassIDs []string        `yaml:"classids"`
}

// BuildDatabase scans <root>/<backendName>/<collection id>/*.base for every
// collection in the repository and registers each declared entry under all of
// its class ids. Collection directories that do not exist are skipped. For the
// drawings backend the declared filename is an extension-less stem and the
// builder resolves the .svg and .png artifacts present on disk.
func BuildDatabase(repository *catalog.Repository, backendName string) (*Database, error) {
	database := NewDatabase(backendName)

	for _, repositoryCollection := range repository.Collections {
		collectionDirectory := filepath.Join(repository.RootPath, backendName, repositoryCollection.ID)
		directoryEntries, directoryError := os.ReadDir(collectionDirectory)
		if directoryError != nil {
			if errors.Is(directoryError, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf(backendDirectoryTemplateConstant, collectionDirectory, directoryError)
		}

		for _, directoryEntry := range directoryEntries {
			if directoryEntry.IsDir() {
				continue
			}
			if filepath.Ext(directoryEntry.Name()) != SidecarExtension {
				continue
			}

			sidecarPath := filepath.Join(collectionDirectory, directoryEntry.Name())
			declaredEntries, parseError := parseSidecarFile(sidecarPath)
			if parseError != nil {
				return nil, parseError
			}

			for _, declaredEntry := range declaredEntries {
				baseEntry := &BaseEntry{
					Filename: declaredEntry.Filename,
					Authors:  declaredEntry.Authors,
					License:  declaredEntry.License,
					ClassIDs: declaredEntry.ClassIDs,
				}
				if backendName == BackendDrawings {
					resolveDrawingArtifacts(baseEntry, collectionDirectory)
				}
				for _, classIdentifier := range declaredEntry.ClassIDs {
					database.Register(classIdentifier, baseEntry)
				}
			}
		}
	}

	return database, nil
}

// BuildDefaultSet builds the databases for the geometry backends and the
// drawings backend required by the check engine.
func BuildDefaultSet(repository *catalog.Repository) (DatabaseSet, error) {
	databaseSet := make(DatabaseSet, 3)
	for _, backendName := range []string{BackendFreeCAD, BackendOpenSCAD, BackendDrawings} {
		builtDatabase, buildError := BuildDatabase(repository, backendName)
		if buildError != nil {
			return nil, buildError
		}
		databaseSet[backendName] = builtDatabase
	}
	return databaseSet, nil
}

func parseSidecarFile(sidecarPath string) ([]baseEntryDocument, error) {
	contentBytes, readError := os.ReadFile(sidecarPath)
	if readError != nil {
		return nil, fmt.Errorf(sidecarReadErrorTemplateConstant, filepath.Base(sidecarPath), readError)
	}

	var declaredEntries []baseEntryDocument
	if unmarshalError := yaml.Unmarshal(contentBytes, &declaredEntries); unmarshalError != nil {
		return nil, fmt.Errorf(sidecarParseErrorTemplateConstant, filepath.Base(sidecarPath), unmarshalError)
	}

	for entryIndex := range declaredEntries {
		declaredEntries[entryIndex].Filename = strings.TrimSpace(declaredEntries[entryIndex].Filename)
		if len(declaredEntries[entryIndex].Filename) == 0 {
			return nil, fmt.Errorf(sidecarFilenameTemplateConstant, filepath.Base(sidecarPath))
		}
	}

	return declaredEntries, nil
}

func resolveDrawingArtifacts(baseEntry *BaseEntry, collectionDirectory string) {
	svgCandidate := filepath.Join(collectionDirectory, baseEntry.Filename+svgArtifactExtensionConstant)
	if _, statError := os.Stat(svgCandidate); statError == nil {
		baseEntry.SVGPath = svgCandidate
	}

	pngCandidate := filepath.Join(collectionDirectory, baseEntry.Filename+pngArtifactExtensionConstant)
	if _, statError := os.Stat(pngCandidate); statError == nil {
		baseEntry.PNGPath = pngCandidate
	}
}
