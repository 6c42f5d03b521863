package audit

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/partlint/partlint/internal/license"
)

const (
	commandUseConstant              = "check [repository-root]"
	commandShortDescriptionConstant = "Audit a part repository for consistency violations"
	commandLongDescriptionConstant  = "check loads the part catalog and backend databases beneath a repository root, evaluates every consistency check, and prints a table report for each check that found violations."
	flagRepositoryName              = "repository"
	flagRepositoryDescription       = "Repository root containing the collections directory and backend directories"
	flagFormatName                  = "format"
	flagFormatDescription           = "Report format: text or yaml"
	flagFailOnViolationName         = "fail-on-violation"
	flagFailOnViolationDescription  = "Return an error when any reported check finds violations"
	flagChecksName                  = "checks"
	flagChecksDescription           = "Comma-separated subset of checks to report (default: all)"
	flagWatchName                   = "watch"
	flagWatchDescription            = "Re-run the audit whenever files beneath the repository root change"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the effective check command configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the check cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	CatalogLoader         CatalogLoader
	DatabaseBuilder       DatabaseBuilder
	LicenseValidator      license.Validator
	WatcherFactory        WatcherFactory
}

// Build constructs the cobra command for part repository audits.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.MaximumNArgs(1),
		RunE:  builder.run,
	}

	command.Flags().String(flagRepositoryName, "", flagRepositoryDescription)
	command.Flags().String(flagFormatName, "", flagFormatDescription)
	command.Flags().Bool(flagFailOnViolationName, false, flagFailOnViolationDescription)
	command.Flags().StringSlice(flagChecksName, nil, flagChecksDescription)
	command.Flags().Bool(flagWatchName, false, flagWatchDescription)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options := builder.parseOptions(command, arguments)
	logger := builder.resolveLogger()

	service := NewService(builder.CatalogLoader, builder.DatabaseBuilder, builder.LicenseValidator, command.OutOrStdout(), logger)

	if options.Watch {
		watcher := NewRepositoryWatcher(service, builder.WatcherFactory, 0, logger)
		return watcher.Run(command.Context(), options)
	}

	return service.Run(command.Context(), options)
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) CommandOptions {
	configuration := builder.resolveConfiguration()

	repositoryRoot := configuration.Repository
	if len(arguments) > 0 && len(strings.TrimSpace(arguments[0])) > 0 {
		repositoryRoot = strings.TrimSpace(arguments[0])
	}
	if command.Flags().Changed(flagRepositoryName) {
		flagValue, _ := command.Flags().GetString(flagRepositoryName)
		repositoryRoot = strings.TrimSpace(flagValue)
	}

	reportFormat := configuration.Format
	if command.Flags().Changed(flagFormatName) {
		flagValue, _ := command.Flags().GetString(flagFormatName)
		reportFormat = flagValue
	}

	failOnViolation := configuration.FailOnViolation
	if command.Flags().Changed(flagFailOnViolationName) {
		failOnViolation, _ = command.Flags().GetBool(flagFailOnViolationName)
	}

	selectedChecks := configuration.Checks
	if command.Flags().Changed(flagChecksName) {
		selectedChecks, _ = command.Flags().GetStringSlice(flagChecksName)
	}

	watchRequested, _ := command.Flags().GetBool(flagWatchName)

	return CommandOptions{
		RepositoryRoot:  repositoryRoot,
		Checks:          selectedChecks,
		Format:          ReportFormat(strings.ToLower(strings.TrimSpace(reportFormat))),
		FailOnViolation: failOnViolation,
		Watch:           watchRequested,
	}
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration().sanitize()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
