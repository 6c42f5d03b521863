package checks

import (
	"github.com/partlint/partlint/internal/backends"
	"github.com/partlint/partlint/internal/catalog"
)

const (
	missingDrawingTitleConstant            = "Missing drawings"
	missingDrawingDescriptionConstant      = "Some classes do not have associated drawings."
	missingDrawingClassIDHeaderConstant    = "Class id"
	missingDrawingCollectionHeaderConstant = "Collection"
	missingDrawingStandardsHeaderConstant  = "Standards"
)

type missingDrawingCheck struct{}

// NewMissingDrawingCheck returns the check flagging classes without an entry
// in the drawings database. Rows carry only the collection id and the
// standard; the class id header stays declared but its column is never
// filled, and report consumers rely on that shape.
func NewMissingDrawingCheck() Check {
	return missingDrawingCheck{}
}

func (missingDrawingCheck) Name() string {
	return CheckNameMissingDrawing
}

func (missingDrawingCheck) Title() string {
	return missingDrawingTitleConstant
}

func (missingDrawingCheck) Description() string {
	return missingDrawingDescriptionConstant
}

func (missingDrawingCheck) Headers() []string {
	return []string{
		missingDrawingClassIDHeaderConstant,
		missingDrawingCollectionHeaderConstant,
		missingDrawingStandardsHeaderConstant,
	}
}

func (missingDrawingCheck) Evaluate(repository *catalog.Repository, databases backends.DatabaseSet) ([]Row, error) {
	drawingsDatabase := databases[backends.BackendDrawings]

	var violationRows []Row
	for _, repositoryCollection := range repository.Collections {
		for _, collectionClass := range repositoryCollection.ClassesByID() {
			if drawingsDatabase.HasClass(collectionClass.ID) {
				continue
			}
			violationRows = append(violationRows, Row{
				repositoryCollection.ID,
				collectionClass.Standard,
			})
		}
	}
	return violationRows, nil
}
