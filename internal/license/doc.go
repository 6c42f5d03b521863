// Package license provides the pure predicate used to validate collection and
// base-entry license metadata, backed by a registry of accepted licenses.
package license
