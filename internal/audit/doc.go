// Package audit implements catalog loading, database construction, and check
// evaluation workflows used by the partlint CLI.
//
// It exposes CommandBuilder for wiring the check Cobra command, Service for
// driving an audit programmatically, and RepositoryWatcher for re-running
// audits while repository files change.
package audit
