package checks

import (
	"github.com/partlint/partlint/internal/backends"
	"github.com/partlint/partlint/internal/catalog"
)

const (
	unknownClassTitleConstant          = "Unknown classes"
	unknownClassDescriptionConstant    = "Some classes are mentioned in base files, but never defined in blt files."
	unknownClassClassIDHeaderConstant  = "Class id"
	unknownClassDatabaseHeaderConstant = "Database"
)

type unknownClassCheck struct{}

// NewUnknownClassCheck returns the check flagging database keys whose class id
// never appears in the catalog, across every backend.
func NewUnknownClassCheck() Check {
	return unknownClassCheck{}
}

func (unknownClassCheck) Name() string {
	return CheckNameUnknownClass
}

func (unknownClassCheck) Title() string {
	return unknownClassTitleConstant
}

func (unknownClassCheck) Description() string {
	return unknownClassDescriptionConstant
}

func (unknownClassCheck) Headers() []string {
	return []string{unknownClassClassIDHeaderConstant, unknownClassDatabaseHeaderConstant}
}

func (unknownClassCheck) Evaluate(repository *catalog.Repository, databases backends.DatabaseSet) ([]Row, error) {
	knownClassIdentifiers := repository.ClassIDSet()

	var violationRows []Row
	for _, backendName := range databases.SortedNames() {
		for _, classIdentifier := range databases[backendName].SortedClassIDs() {
			if _, classKnown := knownClassIdentifiers[classIdentifier]; classKnown {
				continue
			}
			violationRows = append(violationRows, Row{classIdentifier, backendName})
		}
	}
	return violationRows, nil
}
