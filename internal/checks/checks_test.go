package checks_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partlint/partlint/internal/backends"
	"github.com/partlint/partlint/internal/catalog"
	"github.com/partlint/partlint/internal/checks"
)

const (
	fastenersCollectionConstant = "fasteners"
	washersCollectionConstant   = "washers"
	hexBoltOneClassConstant     = "hexbolt1"
	hexBoltTwoClassConstant     = "hexbolt2"
	plainWasherClassConstant    = "plainwasher1"
)

var (
	acceptedLicenseFixture  = catalog.License{Name: "MIT", URL: "https://opensource.org/licenses/MIT"}
	rejectedLicenseFixture  = catalog.License{Name: "Proprietary", URL: "https://example.org/eula"}
	commonParametersFixture = []catalog.Parameter{{Name: "d1", Type: "length"}}
)

func newDatabaseSetFixture() backends.DatabaseSet {
	return backends.DatabaseSet{
		backends.BackendFreeCAD:  backends.NewDatabase(backends.BackendFreeCAD),
		backends.BackendOpenSCAD: backends.NewDatabase(backends.BackendOpenSCAD),
		backends.BackendDrawings: backends.NewDatabase(backends.BackendDrawings),
	}
}

func newGeometryEntry(classIdentifiers ...string) *backends.BaseEntry {
	return &backends.BaseEntry{
		Filename: classIdentifiers[0] + ".fcstd",
		Authors:  []string{"Jane Smith"},
		License:  acceptedLicenseFixture,
		ClassIDs: classIdentifiers,
	}
}

func TestMissingBaseFlagsClassesWithoutAnyGeometry(testInstance *testing.T) {
	repositoryFixture := &catalog.Repository{
		Collections: []*catalog.Collection{
			{
				ID:      fastenersCollectionConstant,
				License: acceptedLicenseFixture,
				Classes: []*catalog.Class{
					{ID: hexBoltOneClassConstant, Standard: "DIN931", Parameters: catalog.ParameterSet{Common: commonParametersFixture}},
					{ID: hexBoltTwoClassConstant, Standard: "DIN933", Parameters: catalog.ParameterSet{Common: commonParametersFixture}},
				},
			},
			{
				ID:      washersCollectionConstant,
				License: acceptedLicenseFixture,
				Classes: []*catalog.Class{
					{ID: plainWasherClassConstant, Standard: "DIN125", Parameters: catalog.ParameterSet{Common: commonParametersFixture}},
				},
			},
		},
	}

	databaseSet := newDatabaseSetFixture()
	databaseSet[backends.BackendFreeCAD].Register(hexBoltOneClassConstant, newGeometryEntry(hexBoltOneClassConstant))
	databaseSet[backends.BackendFreeCAD].Register(plainWasherClassConstant, newGeometryEntry(plainWasherClassConstant))
	databaseSet[backends.BackendOpenSCAD].Register(plainWasherClassConstant, newGeometryEntry(plainWasherClassConstant))

	violationRows, evaluationError := checks.NewMissingBaseCheck().Evaluate(repositoryFixture, databaseSet)
	require.NoError(testInstance, evaluationError)
	require.Equal(testInstance, []checks.Row{
		{hexBoltTwoClassConstant, fastenersCollectionConstant, "DIN933", "false", "false"},
	}, violationRows)
}

func TestUnknownClassFlagsDatabaseOnlyIdentifiers(testInstance *testing.T) {
	repositoryFixture := &catalog.Repository{
		Collections: []*catalog.Collection{
			{
				ID:      fastenersCollectionConstant,
				License: acceptedLicenseFixture,
				Classes: []*catalog.Class{
					{ID: hexBoltOneClassConstant, Standard: "DIN931"},
				},
			},
		},
	}

	databaseSet := newDatabaseSetFixture()
	databaseSet[backends.BackendFreeCAD].Register(hexBoltOneClassConstant, newGeometryEntry(hexBoltOneClassConstant))
	databaseSet[backends.BackendFreeCAD].Register("ghost2", newGeometryEntry("ghost2"))
	databaseSet[backends.BackendOpenSCAD].Register("ghost1", newGeometryEntry("ghost1"))

	violationRows, evaluationError := checks.NewUnknownClassCheck().Evaluate(repositoryFixture, databaseSet)
	require.NoError(testInstance, evaluationError)
	require.Equal(testInstance, []checks.Row{
		{"ghost2", backends.BackendFreeCAD},
		{"ghost1", backends.BackendOpenSCAD},
	}, violationRows)
}

func TestMissingCommonParametersFlagsEmptyCommonGroups(testInstance *testing.T) {
	repositoryFixture := &catalog.Repository{
		Collections: []*catalog.Collection{
			{
				ID:      fastenersCollectionConstant,
				License: acceptedLicenseFixture,
				Classes: []*catalog.Class{
					{ID: hexBoltOneClassConstant, Standard: "DIN931", Parameters: catalog.ParameterSet{Specific: commonParametersFixture}},
					{ID: hexBoltTwoClassConstant, Standard: "DIN933", Parameters: catalog.ParameterSet{Common: commonParametersFixture}},
				},
			},
		},
	}

	violationRows, evaluationError := checks.NewMissingCommonParametersCheck().Evaluate(repositoryFixture, newDatabaseSetFixture())
	require.NoError(testInstance, evaluationError)
	require.Equal(testInstance, []checks.Row{
		{hexBoltOneClassConstant, fastenersCollectionConstant, "DIN931"},
	}, violationRows)
}

func TestMissingDrawingEmitsCollectionAndStandardOnly(testInstance *testing.T) {
	repositoryFixture := &catalog.Repository{
		Collections: []*catalog.Collection{
			{
				ID:      fastenersCollectionConstant,
				License: acceptedLicenseFixture,
				Classes: []*catalog.Class{
					{ID: hexBoltOneClassConstant, Standard: "DIN931"},
					{ID: hexBoltTwoClassConstant, Standard: "DIN933"},
				},
			},
		},
	}

	databaseSet := newDatabaseSetFixture()
	databaseSet[backends.BackendDrawings].Register(hexBoltOneClassConstant, &backends.BaseEntry{
		Filename: hexBoltOneClassConstant,
		License:  acceptedLicenseFixture,
		ClassIDs: []string{hexBoltOneClassConstant},
		SVGPath:  "drawings/fasteners/hexbolt1.svg",
	})

	missingDrawingCheck := checks.NewMissingDrawingCheck()
	require.Len(testInstance, missingDrawingCheck.Headers(), 3)

	violationRows, evaluationError := missingDrawingCheck.Evaluate(repositoryFixture, databaseSet)
	require.NoError(testInstance, evaluationError)
	require.Equal(testInstance, []checks.Row{
		{fastenersCollectionConstant, "DIN933"},
	}, violationRows)

	repeatedRows, repeatedError := missingDrawingCheck.Evaluate(repositoryFixture, databaseSet)
	require.NoError(testInstance, repeatedError)
	require.Equal(testInstance, violationRows, repeatedRows)
}

func TestMissingSVGSourceFlagsEntriesWithoutVectorSource(testInstance *testing.T) {
	repositoryFixture := &catalog.Repository{
		Collections: []*catalog.Collection{
			{
				ID:      fastenersCollectionConstant,
				License: acceptedLicenseFixture,
				Classes: []*catalog.Class{
					{ID: hexBoltOneClassConstant, Standard: "DIN931"},
					{ID: hexBoltTwoClassConstant, Standard: "DIN933"},
				},
			},
		},
	}

	databaseSet := newDatabaseSetFixture()
	databaseSet[backends.BackendDrawings].Register(hexBoltOneClassConstant, &backends.BaseEntry{
		Filename: hexBoltOneClassConstant,
		License:  acceptedLicenseFixture,
		ClassIDs: []string{hexBoltOneClassConstant},
		PNGPath:  "drawings/fasteners/hexbolt1.png",
	})
	databaseSet[backends.BackendDrawings].Register(hexBoltTwoClassConstant, &backends.BaseEntry{
		Filename: hexBoltTwoClassConstant,
		License:  acceptedLicenseFixture,
		ClassIDs: []string{hexBoltTwoClassConstant},
		SVGPath:  "drawings/fasteners/hexbolt2.svg",
	})

	violationRows, evaluationError := checks.NewMissingSVGSourceCheck().Evaluate(repositoryFixture, databaseSet)
	require.NoError(testInstance, evaluationError)
	require.Equal(testInstance, []checks.Row{
		{hexBoltOneClassConstant, hexBoltOneClassConstant},
	}, violationRows)
}

func TestUnsupportedLicenseReportsCollectionsAndBackendEntries(testInstance *testing.T) {
	repositoryFixture := &catalog.Repository{
		Collections: []*catalog.Collection{
			{
				ID:      fastenersCollectionConstant,
				Authors: []string{"Jane Smith", "John Doe"},
				License: rejectedLicenseFixture,
				Classes: []*catalog.Class{
					{ID: hexBoltOneClassConstant, Standard: "DIN931"},
				},
			},
			{
				ID:      washersCollectionConstant,
				Authors: []string{"Sam Smith"},
				License: acceptedLicenseFixture,
				Classes: []*catalog.Class{
					{ID: plainWasherClassConstant, Standard: "DIN125"},
				},
			},
		},
	}

	databaseSet := newDatabaseSetFixture()
	databaseSet[backends.BackendOpenSCAD].Register(plainWasherClassConstant, &backends.BaseEntry{
		Filename: "washer.scad",
		Authors:  []string{"Script Author"},
		License:  rejectedLicenseFixture,
		ClassIDs: []string{plainWasherClassConstant},
	})

	violationRows, evaluationError := checks.NewUnsupportedLicenseCheck(nil).Evaluate(repositoryFixture, databaseSet)
	require.NoError(testInstance, evaluationError)
	require.Equal(testInstance, []checks.Row{
		{"Collection", fastenersCollectionConstant, rejectedLicenseFixture.Name, rejectedLicenseFixture.URL, "Jane Smith,John Doe"},
		{backends.BackendOpenSCAD, plainWasherClassConstant, rejectedLicenseFixture.Name, rejectedLicenseFixture.URL, "Script Author"},
	}, violationRows)
}

func TestUnsupportedLicenseHonorsInjectedValidator(testInstance *testing.T) {
	testCases := []struct {
		name             string
		validatorVerdict bool
		expectedRowCount int
	}{
		{name: "validator_accepts_everything", validatorVerdict: true, expectedRowCount: 0},
		{name: "validator_rejects_everything", validatorVerdict: false, expectedRowCount: 2},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtestInstance *testing.T) {
			repositoryFixture := &catalog.Repository{
				Collections: []*catalog.Collection{
					{
						ID:      fastenersCollectionConstant,
						Authors: []string{"Jane Smith"},
						License: acceptedLicenseFixture,
						Classes: []*catalog.Class{
							{ID: hexBoltOneClassConstant, Standard: "DIN931"},
						},
					},
				},
			}
			databaseSet := newDatabaseSetFixture()
			databaseSet[backends.BackendFreeCAD].Register(hexBoltOneClassConstant, newGeometryEntry(hexBoltOneClassConstant))

			fixedVerdictValidator := func(string, string) bool { return testCase.validatorVerdict }
			violationRows, evaluationError := checks.NewUnsupportedLicenseCheck(fixedVerdictValidator).Evaluate(repositoryFixture, databaseSet)
			require.NoError(subtestInstance, evaluationError)
			require.Len(subtestInstance, violationRows, testCase.expectedRowCount)
		})
	}
}
