package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	cliConfigurationFileNameConstant        = "config.yaml"
	cliConfigurationTemplateConstant        = "audit:\n  repository: %s\n  fail_on_violation: true\n"
	cliConfigFlagTemplateConstant           = "--config=%s"
	cliHelpUsagePrefixConstant              = "Usage:"
	cliHelpCheckSnippetConstant             = "check"
	cliCheckCommandNameConstant             = "check"
	cliLogLevelFlagConstant                 = "--log-level"
	cliErrorLevelConstant                   = "error"
	cliViolationErrorFragmentConstant       = "checks reported violations"
	cliSubtestNameTemplateConstant          = "%d_%s"
	cliBareRootCaseNameConstant             = "bare_root_prints_help"
	cliHelpFlagCaseNameConstant             = "help_flag_prints_help"
	cliHelpFlagArgumentConstant             = "--help"
	cliMissingRepositoryNameConstant        = "missing-collections"
	cliCollectionsReadErrorFragmentConstant = "unable to read collections directory"
)

func TestCLIRootCommandPrintsHelp(testInstance *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
	}{
		{name: cliBareRootCaseNameConstant, arguments: nil},
		{name: cliHelpFlagCaseNameConstant, arguments: []string{cliHelpFlagArgumentConstant}},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(cliSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(subtestInstance *testing.T) {
			helpOutput, executionError := runApplication(subtestInstance, testCase.arguments...)
			require.NoError(subtestInstance, executionError)
			require.Contains(subtestInstance, helpOutput, cliHelpUsagePrefixConstant)
			require.Contains(subtestInstance, helpOutput, cliHelpCheckSnippetConstant)
		})
	}
}

func TestCLIConfigurationFileDrivesCheckCommand(testInstance *testing.T) {
	repositoryRoot := writeScenarioRepository(testInstance)

	configurationDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(configurationDirectory, cliConfigurationFileNameConstant)
	configurationContent := fmt.Sprintf(cliConfigurationTemplateConstant, repositoryRoot)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(configurationContent), 0o644))

	reportOutput, executionError := runApplication(testInstance,
		cliCheckCommandNameConstant,
		fmt.Sprintf(cliConfigFlagTemplateConstant, configurationFilePath),
		cliLogLevelFlagConstant, cliErrorLevelConstant,
	)
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), cliViolationErrorFragmentConstant)
	require.Contains(testInstance, reportOutput, auditMissingBaseTitleConstant)
}

func TestCLICheckCommandReportsMissingCollectionsDirectory(testInstance *testing.T) {
	emptyRepositoryRoot := filepath.Join(testInstance.TempDir(), cliMissingRepositoryNameConstant)

	_, executionError := runApplication(testInstance,
		cliCheckCommandNameConstant,
		emptyRepositoryRoot,
		cliLogLevelFlagConstant, cliErrorLevelConstant,
	)
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), cliCollectionsReadErrorFragmentConstant)
}
