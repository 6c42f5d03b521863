package audit

import "strings"

// CommandConfiguration captures persistent settings for the check command.
type CommandConfiguration struct {
	Repository      string   `mapstructure:"repository"`
	Format          string   `mapstructure:"format"`
	FailOnViolation bool     `mapstructure:"fail_on_violation"`
	Checks          []string `mapstructure:"checks"`
}

// DefaultCommandConfiguration returns baseline configuration values for the check command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Repository: defaultRepositoryRootConstant,
		Format:     string(ReportFormatText),
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Repository = strings.TrimSpace(configuration.Repository)
	if len(sanitized.Repository) == 0 {
		sanitized.Repository = defaultRepositoryRootConstant
	}

	sanitized.Format = strings.ToLower(strings.TrimSpace(configuration.Format))
	if len(sanitized.Format) == 0 {
		sanitized.Format = string(ReportFormatText)
	}

	sanitized.Checks = sanitizeCheckNames(configuration.Checks)

	return sanitized
}

func sanitizeCheckNames(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for index := range raw {
		normalized := strings.ToLower(strings.TrimSpace(raw[index]))
		if len(normalized) == 0 {
			continue
		}
		sanitized = append(sanitized, normalized)
	}
	return sanitized
}
