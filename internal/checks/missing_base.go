package checks

import (
	"strconv"

	"github.com/partlint/partlint/internal/backends"
	"github.com/partlint/partlint/internal/catalog"
)

const (
	missingBaseTitleConstant            = "Missing base geometries"
	missingBaseDescriptionConstant      = "Some classes can not be used in one or more CAD packages, because no geometry is available."
	missingBaseClassIDHeaderConstant    = "Class id"
	missingBaseCollectionHeaderConstant = "Collection"
	missingBaseStandardsHeaderConstant  = "Standards"
	missingBaseFreeCADHeaderConstant    = "FreeCAD"
	missingBaseOpenSCADHeaderConstant   = "OpenSCAD"
)

type missingBaseCheck struct{}

// NewMissingBaseCheck returns the check flagging classes for which no geometry
// backend carries an entry. A class present in at least one geometry backend
// is never flagged.
func NewMissingBaseCheck() Check {
	return missingBaseCheck{}
}

func (missingBaseCheck) Name() string {
	return CheckNameMissingBase
}

func (missingBaseCheck) Title() string {
	return missingBaseTitleConstant
}

func (missingBaseCheck) Description() string {
	return missingBaseDescriptionConstant
}

func (missingBaseCheck) Headers() []string {
	return []string{
		missingBaseClassIDHeaderConstant,
		missingBaseCollectionHeaderConstant,
		missingBaseStandardsHeaderConstant,
		missingBaseFreeCADHeaderConstant,
		missingBaseOpenSCADHeaderConstant,
	}
}

func (missingBaseCheck) Evaluate(repository *catalog.Repository, databases backends.DatabaseSet) ([]Row, error) {
	var violationRows []Row
	for _, repositoryCollection := range repository.Collections {
		for _, collectionClass := range repositoryCollection.ClassesByID() {
			hasFreeCADGeometry := databases[backends.BackendFreeCAD].HasClass(collectionClass.ID)
			hasOpenSCADGeometry := databases[backends.BackendOpenSCAD].HasClass(collectionClass.ID)
			if hasFreeCADGeometry || hasOpenSCADGeometry {
				continue
			}
			violationRows = append(violationRows, Row{
				collectionClass.ID,
				repositoryCollection.ID,
				collectionClass.Standard,
				strconv.FormatBool(hasFreeCADGeometry),
				strconv.FormatBool(hasOpenSCADGeometry),
			})
		}
	}
	return violationRows, nil
}
