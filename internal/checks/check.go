package checks

import (
	"github.com/partlint/partlint/internal/backends"
	"github.com/partlint/partlint/internal/catalog"
)

// Row is one reported violation, ordered to match the owning check's header
// labels. A row may carry fewer cells than the check declares headers.
type Row []string

// Check is a single consistency rule over a part catalog and its backend
// databases. Evaluate returns violation rows in a deterministic order and
// never mutates its inputs.
type Check interface {
	Name() string
	Title() string
	Description() string
	Headers() []string
	Evaluate(repository *catalog.Repository, databases backends.DatabaseSet) ([]Row, error)
}

// Registry keys of the built-in checks.
const (
	CheckNameMissingBase             = "missingbase"
	CheckNameUnknownClass            = "unknownclass"
	CheckNameMissingCommonParameters = "missingcommonparameters"
	CheckNameMissingDrawing          = "missingdrawing"
	CheckNameMissingSVGSource        = "missingsvgsource"
	CheckNameUnsupportedLicense      = "unsupportedlicense"
	CheckNameUnknownFile             = "unknownfile"
)

// CheckNames returns the registry keys in engine evaluation order.
func CheckNames() []string {
	return []string{
		CheckNameMissingBase,
		CheckNameUnknownClass,
		CheckNameMissingCommonParameters,
		CheckNameMissingDrawing,
		CheckNameMissingSVGSource,
		CheckNameUnsupportedLicense,
		CheckNameUnknownFile,
	}
}
