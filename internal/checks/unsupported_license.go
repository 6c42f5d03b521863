package checks

import (
	"strings"

	"github.com/partlint/partlint/internal/backends"
	"github.com/partlint/partlint/internal/catalog"
	"github.com/partlint/partlint/internal/license"
)

const (
	unsupportedLicenseTitleConstant            = "Incompatible Licenses"
	unsupportedLicenseDescriptionConstant      = "Some collections or base geometries have unknown licenses."
	unsupportedLicenseTypeHeaderConstant       = "Type"
	unsupportedLicenseIdentifierHeaderConstant = "Id/Filename"
	unsupportedLicenseNameHeaderConstant       = "License name"
	unsupportedLicenseURLHeaderConstant        = "License url"
	unsupportedLicenseAuthorsHeaderConstant    = "Authors"
	unsupportedLicenseCollectionTypeConstant   = "Collection"
	unsupportedLicenseAuthorsSeparatorConstant = ","
)

type unsupportedLicenseCheck struct {
	validator license.Validator
}

// NewUnsupportedLicenseCheck returns the check flagging collections and
// backend entries whose license fails the supplied validator. A nil validator
// falls back to the built-in license registry.
func NewUnsupportedLicenseCheck(licenseValidator license.Validator) Check {
	if licenseValidator == nil {
		licenseValidator = license.Check
	}
	return unsupportedLicenseCheck{validator: licenseValidator}
}

func (unsupportedLicenseCheck) Name() string {
	return CheckNameUnsupportedLicense
}

func (unsupportedLicenseCheck) Title() string {
	return unsupportedLicenseTitleConstant
}

func (unsupportedLicenseCheck) Description() string {
	return unsupportedLicenseDescriptionConstant
}

func (unsupportedLicenseCheck) Headers() []string {
	return []string{
		unsupportedLicenseTypeHeaderConstant,
		unsupportedLicenseIdentifierHeaderConstant,
		unsupportedLicenseNameHeaderConstant,
		unsupportedLicenseURLHeaderConstant,
		unsupportedLicenseAuthorsHeaderConstant,
	}
}

func (checkInstance unsupportedLicenseCheck) Evaluate(repository *catalog.Repository, databases backends.DatabaseSet) ([]Row, error) {
	var violationRows []Row

	for _, repositoryCollection := range repository.Collections {
		if checkInstance.validator(repositoryCollection.License.Name, repositoryCollection.License.URL) {
			continue
		}
		violationRows = append(violationRows, Row{
			unsupportedLicenseCollectionTypeConstant,
			repositoryCollection.ID,
			repositoryCollection.License.Name,
			repositoryCollection.License.URL,
			strings.Join(repositoryCollection.Authors, unsupportedLicenseAuthorsSeparatorConstant),
		})
	}

	for _, backendName := range databases.SortedNames() {
		backendDatabase := databases[backendName]
		for _, classIdentifier := range backendDatabase.SortedClassIDs() {
			backendEntry, _ := backendDatabase.Entry(classIdentifier)
			if checkInstance.validator(backendEntry.License.Name, backendEntry.License.URL) {
				continue
			}
			violationRows = append(violationRows, Row{
				backendName,
				classIdentifier,
				backendEntry.License.Name,
				backendEntry.License.URL,
				strings.Join(backendEntry.Authors, unsupportedLicenseAuthorsSeparatorConstant),
			})
		}
	}

	return violationRows, nil
}
