package checks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/partlint/partlint/internal/backends"
	"github.com/partlint/partlint/internal/catalog"
)

const (
	unknownFileTitleConstant             = "Stray files"
	unknownFileDescriptionConstant       = "Some files are present in the repository, but not mentioned anywhere."
	unknownFileFilenameHeaderConstant    = "Filename"
	unknownFilePathHeaderConstant        = "Path"
	unknownFileDirectoryTemplateConstant = "unable to list directory %s: %w"
)

type unknownFileCheck struct{}

// NewUnknownFileCheck returns the check flagging files under the backend
// collection directories that no database entry accounts for. Sidecar files
// are always exempt. Geometry backends match the declared entry filename;
// the drawings backend matches the basenames of the resolved SVG and PNG
// artifacts instead.
func NewUnknownFileCheck() Check {
	return unknownFileCheck{}
}

func (unknownFileCheck) Name() string {
	return CheckNameUnknownFile
}

func (unknownFileCheck) Title() string {
	return unknownFileTitleConstant
}

func (unknownFileCheck) Description() string {
	return unknownFileDescriptionConstant
}

func (unknownFileCheck) Headers() []string {
	return []string{unknownFileFilenameHeaderConstant, unknownFilePathHeaderConstant}
}

func (unknownFileCheck) Evaluate(repository *catalog.Repository, databases backends.DatabaseSet) ([]Row, error) {
	var violationRows []Row

	for _, backendName := range databases.SortedNames() {
		if backendName == backends.BackendDrawings {
			continue
		}
		backendRows, collectError := collectStrayFiles(repository, databases[backendName], backendName, declaredEntryFilenames)
		if collectError != nil {
			return nil, collectError
		}
		violationRows = append(violationRows, backendRows...)
	}

	drawingRows, collectError := collectStrayFiles(repository, databases[backends.BackendDrawings], backends.BackendDrawings, drawingArtifactFilenames)
	if collectError != nil {
		return nil, collectError
	}
	violationRows = append(violationRows, drawingRows...)

	return violationRows, nil
}

func collectStrayFiles(repository *catalog.Repository, database *backends.Database, backendName string, accountedFilenames func(*backends.BaseEntry) []string) ([]Row, error) {
	var violationRows []Row

	for _, repositoryCollection := range repository.Collections {
		collectionDirectory := filepath.Join(repository.RootPath, backendName, repositoryCollection.ID)
		directoryEntries, directoryError := os.ReadDir(collectionDirectory)
		if directoryError != nil {
			if errors.Is(directoryError, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf(unknownFileDirectoryTemplateConstant, collectionDirectory, directoryError)
		}

		knownFilenames := make(map[string]struct{})
		for _, collectionClass := range repositoryCollection.ClassesByID() {
			classEntry, entryFound := database.Entry(collectionClass.ID)
			if !entryFound {
				continue
			}
			for _, accountedFilename := range accountedFilenames(classEntry) {
				knownFilenames[accountedFilename] = struct{}{}
			}
		}

		for _, directoryEntry := range directoryEntries {
			if directoryEntry.IsDir() {
				continue
			}
			fileName := directoryEntry.Name()
			if filepath.Ext(fileName) == backends.SidecarExtension {
				continue
			}
			if _, fileKnown := knownFilenames[fileName]; fileKnown {
				continue
			}
			violationRows = append(violationRows, Row{fileName, collectionDirectory})
		}
	}

	return violationRows, nil
}

func declaredEntryFilenames(backendEntry *backends.BaseEntry) []string {
	return []string{backendEntry.Filename}
}

func drawingArtifactFilenames(drawingEntry *backends.BaseEntry) []string {
	var artifactFilenames []string
	if len(drawingEntry.SVGPath) > 0 {
		artifactFilenames = append(artifactFilenames, filepath.Base(drawingEntry.SVGPath))
	}
	if len(drawingEntry.PNGPath) > 0 {
		artifactFilenames = append(artifactFilenames, filepath.Base(drawingEntry.PNGPath))
	}
	return artifactFilenames
}
