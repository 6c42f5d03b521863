package checks

import (
	"fmt"

	"github.com/partlint/partlint/internal/backends"
	"github.com/partlint/partlint/internal/catalog"
	"github.com/partlint/partlint/internal/license"
)

const (
	missingBackendTemplateConstant  = "database set is missing required backend %s"
	checkEvaluationTemplateConstant = "check %s failed: %w"
)

// Result carries one check's metadata together with the rows it produced.
type Result struct {
	Name        string
	Title       string
	Description string
	Headers     []string
	Rows        []Row
}

// Engine owns the fixed check registry. Construction evaluates every check
// eagerly against the supplied catalog and databases; afterwards results are
// read-only.
type Engine struct {
	orderedResults []Result
	resultsByName  map[string]Result
}

// NewEngine evaluates all checks against the repository and database set. The
// geometry and drawings backends must be present in the set; a nil validator
// falls back to the built-in license registry. The first failing check aborts
// construction.
func NewEngine(repository *catalog.Repository, databases backends.DatabaseSet, licenseValidator license.Validator) (*Engine, error) {
	for _, requiredBackendName := range []string{backends.BackendFreeCAD, backends.BackendOpenSCAD, backends.BackendDrawings} {
		if _, backendPresent := databases[requiredBackendName]; !backendPresent {
			return nil, fmt.Errorf(missingBackendTemplateConstant, requiredBackendName)
		}
	}

	registeredChecks := []Check{
		NewMissingBaseCheck(),
		NewUnknownClassCheck(),
		NewMissingCommonParametersCheck(),
		NewMissingDrawingCheck(),
		NewMissingSVGSourceCheck(),
		NewUnsupportedLicenseCheck(licenseValidator),
		NewUnknownFileCheck(),
	}

	engineInstance := &Engine{resultsByName: make(map[string]Result, len(registeredChecks))}
	for _, registeredCheck := range registeredChecks {
		checkRows, evaluationError := registeredCheck.Evaluate(repository, databases)
		if evaluationError != nil {
			return nil, fmt.Errorf(checkEvaluationTemplateConstant, registeredCheck.Name(), evaluationError)
		}
		checkResult := Result{
			Name:        registeredCheck.Name(),
			Title:       registeredCheck.Title(),
			Description: registeredCheck.Description(),
			Headers:     registeredCheck.Headers(),
			Rows:        checkRows,
		}
		engineInstance.orderedResults = append(engineInstance.orderedResults, checkResult)
		engineInstance.resultsByName[checkResult.Name] = checkResult
	}
	return engineInstance, nil
}

// Result returns the stored result for the given registry key.
func (engineInstance *Engine) Result(checkName string) (Result, bool) {
	checkResult, resultFound := engineInstance.resultsByName[checkName]
	return checkResult, resultFound
}

// Results returns every stored result in evaluation order.
func (engineInstance *Engine) Results() []Result {
	return append([]Result(nil), engineInstance.orderedResults...)
}
