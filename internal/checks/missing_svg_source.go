package checks

import (
	"github.com/partlint/partlint/internal/backends"
	"github.com/partlint/partlint/internal/catalog"
)

const (
	missingSVGSourceTitleConstant          = "Missing svg drawings"
	missingSVGSourceDescriptionConstant    = "Some drawings have no svg version."
	missingSVGSourceFilenameHeaderConstant = "Filename"
	missingSVGSourceClassIDHeaderConstant  = "Class ID"
)

type missingSVGSourceCheck struct{}

// NewMissingSVGSourceCheck returns the check flagging drawings entries without
// a resolved SVG artifact.
func NewMissingSVGSourceCheck() Check {
	return missingSVGSourceCheck{}
}

func (missingSVGSourceCheck) Name() string {
	return CheckNameMissingSVGSource
}

func (missingSVGSourceCheck) Title() string {
	return missingSVGSourceTitleConstant
}

func (missingSVGSourceCheck) Description() string {
	return missingSVGSourceDescriptionConstant
}

func (missingSVGSourceCheck) Headers() []string {
	return []string{missingSVGSourceFilenameHeaderConstant, missingSVGSourceClassIDHeaderConstant}
}

func (missingSVGSourceCheck) Evaluate(repository *catalog.Repository, databases backends.DatabaseSet) ([]Row, error) {
	drawingsDatabase := databases[backends.BackendDrawings]

	var violationRows []Row
	for _, classIdentifier := range drawingsDatabase.SortedClassIDs() {
		drawingEntry, _ := drawingsDatabase.Entry(classIdentifier)
		if len(drawingEntry.SVGPath) > 0 {
			continue
		}
		violationRows = append(violationRows, Row{drawingEntry.Filename, classIdentifier})
	}
	return violationRows, nil
}
