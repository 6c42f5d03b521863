package checks

import (
	"github.com/partlint/partlint/internal/backends"
	"github.com/partlint/partlint/internal/catalog"
)

const (
	missingCommonParametersTitleConstant            = "Missing common parameters"
	missingCommonParametersDescriptionConstant      = "Some classes have no common parameters defined."
	missingCommonParametersClassIDHeaderConstant    = "Class ID"
	missingCommonParametersCollectionHeaderConstant = "Collection"
	missingCommonParametersStandardsHeaderConstant  = "Standards"
)

type missingCommonParametersCheck struct{}

// NewMissingCommonParametersCheck returns the check flagging classes whose
// common parameter group is empty.
func NewMissingCommonParametersCheck() Check {
	return missingCommonParametersCheck{}
}

func (missingCommonParametersCheck) Name() string {
	return CheckNameMissingCommonParameters
}

func (missingCommonParametersCheck) Title() string {
	return missingCommonParametersTitleConstant
}

func (missingCommonParametersCheck) Description() string {
	return missingCommonParametersDescriptionConstant
}

func (missingCommonParametersCheck) Headers() []string {
	return []string{
		missingCommonParametersClassIDHeaderConstant,
		missingCommonParametersCollectionHeaderConstant,
		missingCommonParametersStandardsHeaderConstant,
	}
}

func (missingCommonParametersCheck) Evaluate(repository *catalog.Repository, databases backends.DatabaseSet) ([]Row, error) {
	var violationRows []Row
	for _, repositoryCollection := range repository.Collections {
		for _, collectionClass := range repositoryCollection.ClassesByID() {
			if len(collectionClass.Parameters.Common) > 0 {
				continue
			}
			violationRows = append(violationRows, Row{
				collectionClass.ID,
				repositoryCollection.ID,
				collectionClass.Standard,
			})
		}
	}
	return violationRows, nil
}
