package audit

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/partlint/partlint/internal/checks"
	"github.com/partlint/partlint/internal/license"
)

const (
	defaultRepositoryRootConstant      = "."
	checkNameSeparatorConstant         = ", "
	unknownCheckTemplateConstant       = "unknown check %s; available checks: %s"
	unsupportedFormatTemplateConstant  = "unsupported report format %s"
	reportEncodeTemplateConstant       = "unable to encode yaml report: %w"
	reportWriteTemplateConstant        = "unable to write report: %w"
	violationsDetectedTemplateConstant = "checks reported violations: %s"
	auditStartedMessageConstant        = "Auditing part repository"
	auditCompletedMessageConstant      = "Audit completed"
	checkEvaluatedMessageConstant      = "Check evaluated"
	repositoryFieldNameConstant        = "repository"
	checkFieldNameConstant             = "check"
	violationCountFieldNameConstant    = "violations"
	failingCheckNamesFieldNameConstant = "failing_checks"
)

// Service coordinates catalog loading, database construction, check
// evaluation, and report rendering.
type Service struct {
	catalogLoader    CatalogLoader
	databaseBuilder  DatabaseBuilder
	licenseValidator license.Validator
	outputWriter     io.Writer
	logger           *zap.Logger
}

// NewService constructs a Service using the provided dependencies. Nil
// dependencies fall back to the filesystem loader, the sidecar database
// builder, the built-in license registry, standard output, and a no-op logger.
func NewService(catalogLoader CatalogLoader, databaseBuilder DatabaseBuilder, licenseValidator license.Validator, outputWriter io.Writer, logger *zap.Logger) *Service {
	if catalogLoader == nil {
		catalogLoader = FilesystemCatalogLoader{}
	}
	if databaseBuilder == nil {
		databaseBuilder = SidecarDatabaseBuilder{}
	}
	if licenseValidator == nil {
		licenseValidator = license.Check
	}
	if outputWriter == nil {
		outputWriter = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalogLoader:    catalogLoader,
		databaseBuilder:  databaseBuilder,
		licenseValidator: licenseValidator,
		outputWriter:     outputWriter,
		logger:           logger,
	}
}

// Run executes a single audit pass according to the provided options. Every
// check is evaluated; options.Checks only narrows which results are reported.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	if contextError := executionContext.Err(); contextError != nil {
		return contextError
	}

	repositoryRoot := strings.TrimSpace(options.RepositoryRoot)
	if len(repositoryRoot) == 0 {
		repositoryRoot = defaultRepositoryRootConstant
	}

	selectedChecks, selectionError := resolveSelectedChecks(options.Checks)
	if selectionError != nil {
		return selectionError
	}

	service.logger.Info(auditStartedMessageConstant, zap.String(repositoryFieldNameConstant, repositoryRoot))

	repository, loadError := service.catalogLoader.Load(repositoryRoot)
	if loadError != nil {
		return loadError
	}

	databases, buildError := service.databaseBuilder.Build(repository)
	if buildError != nil {
		return buildError
	}

	auditEngine, engineError := checks.NewEngine(repository, databases, service.licenseValidator)
	if engineError != nil {
		return engineError
	}

	reportedResults := filterResults(auditEngine.Results(), selectedChecks)

	if reportError := service.writeReport(repositoryRoot, reportedResults, options.Format); reportError != nil {
		return reportError
	}

	var failingCheckNames []string
	for _, checkResult := range reportedResults {
		service.logger.Info(checkEvaluatedMessageConstant,
			zap.String(checkFieldNameConstant, checkResult.Name),
			zap.Int(violationCountFieldNameConstant, len(checkResult.Rows)))
		if len(checkResult.Rows) > 0 {
			failingCheckNames = append(failingCheckNames, checkResult.Name)
		}
	}

	service.logger.Info(auditCompletedMessageConstant,
		zap.String(repositoryFieldNameConstant, repositoryRoot),
		zap.Strings(failingCheckNamesFieldNameConstant, failingCheckNames))

	if options.FailOnViolation && len(failingCheckNames) > 0 {
		return fmt.Errorf(violationsDetectedTemplateConstant, strings.Join(failingCheckNames, checkNameSeparatorConstant))
	}

	return nil
}

func resolveSelectedChecks(requestedChecks []string) (map[string]struct{}, error) {
	if len(requestedChecks) == 0 {
		return nil, nil
	}

	knownCheckNames := make(map[string]struct{})
	for _, checkName := range checks.CheckNames() {
		knownCheckNames[checkName] = struct{}{}
	}

	selected := make(map[string]struct{}, len(requestedChecks))
	for _, requestedCheck := range requestedChecks {
		normalizedName := strings.ToLower(strings.TrimSpace(requestedCheck))
		if len(normalizedName) == 0 {
			continue
		}
		if _, checkKnown := knownCheckNames[normalizedName]; !checkKnown {
			return nil, fmt.Errorf(unknownCheckTemplateConstant, normalizedName, strings.Join(checks.CheckNames(), checkNameSeparatorConstant))
		}
		selected[normalizedName] = struct{}{}
	}

	if len(selected) == 0 {
		return nil, nil
	}
	return selected, nil
}

func filterResults(allResults []checks.Result, selectedChecks map[string]struct{}) []checks.Result {
	if selectedChecks == nil {
		return allResults
	}
	filtered := make([]checks.Result, 0, len(allResults))
	for _, checkResult := range allResults {
		if _, resultSelected := selectedChecks[checkResult.Name]; resultSelected {
			filtered = append(filtered, checkResult)
		}
	}
	return filtered
}

func (service *Service) writeReport(repositoryRoot string, reportedResults []checks.Result, reportFormat ReportFormat) error {
	switch reportFormat {
	case ReportFormatYAML:
		return service.writeYAMLReport(repositoryRoot, reportedResults)
	case ReportFormatText, "":
		return service.writeTextReport(reportedResults)
	default:
		return fmt.Errorf(unsupportedFormatTemplateConstant, reportFormat)
	}
}

func (service *Service) writeTextReport(reportedResults []checks.Result) error {
	for _, checkResult := range reportedResults {
		renderedTable := checks.Render(checkResult)
		if len(renderedTable) == 0 {
			continue
		}
		if _, writeError := io.WriteString(service.outputWriter, renderedTable); writeError != nil {
			return fmt.Errorf(reportWriteTemplateConstant, writeError)
		}
	}
	return nil
}

func (service *Service) writeYAMLReport(repositoryRoot string, reportedResults []checks.Result) error {
	reportDocument := ReportDocument{Repository: repositoryRoot}
	for _, checkResult := range reportedResults {
		if len(checkResult.Rows) == 0 {
			continue
		}
		reportRows := make([][]string, 0, len(checkResult.Rows))
		for _, violationRow := range checkResult.Rows {
			reportRows = append(reportRows, violationRow)
		}
		reportDocument.Checks = append(reportDocument.Checks, ReportCheck{
			Name:        checkResult.Name,
			Title:       checkResult.Title,
			Description: checkResult.Description,
			Headers:     checkResult.Headers,
			Rows:        reportRows,
		})
	}

	encodedReport, encodeError := yaml.Marshal(reportDocument)
	if encodeError != nil {
		return fmt.Errorf(reportEncodeTemplateConstant, encodeError)
	}
	if _, writeError := service.outputWriter.Write(encodedReport); writeError != nil {
		return fmt.Errorf(reportWriteTemplateConstant, writeError)
	}
	return nil
}
