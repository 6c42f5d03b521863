// Package utils exposes reusable helpers consumed by the partlint commands.
//
// It houses the ConfigurationLoader and LoggerFactory abstractions that
// integrate Viper configuration resolution and zap logging for the CLI.
package utils
