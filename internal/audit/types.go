package audit

// ReportFormat enumerates supported report renderings.
type ReportFormat string

// Report format values supported by the check command.
const (
	ReportFormatText ReportFormat = "text"
	ReportFormatYAML ReportFormat = "yaml"
)

// CommandOptions captures the configurable parameters for the check command.
type CommandOptions struct {
	RepositoryRoot  string
	Checks          []string
	Format          ReportFormat
	FailOnViolation bool
	Watch           bool
}

// ReportDocument models the yaml rendering of an audit run.
type ReportDocument struct {
	Repository string        `yaml:"repository"`
	Checks     []ReportCheck `yaml:"checks"`
}

// ReportCheck models a single check with violations inside a yaml report.
type ReportCheck struct {
	Name        string     `yaml:"name"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Headers     []string   `yaml:"headers"`
	Rows        [][]string `yaml:"rows"`
}
