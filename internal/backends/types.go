package backends

import (
	"sort"

	"github.com/partlint/partlint/internal/catalog"
)

// Backend names recognized by the check engine.
const (
	// BackendFreeCAD identifies the FreeCAD geometry backend.
	BackendFreeCAD = "freecad"
	// BackendOpenSCAD identifies the OpenSCAD geometry backend.
	BackendOpenSCAD = "openscad"
	// BackendDrawings identifies the technical-drawing backend.
	BackendDrawings = "drawings"
)

// SidecarExtension identifies the metadata files describing backend artifacts;
// files carrying it are never reported as stray.
const SidecarExtension = ".base"

// BaseEntry describes one generated artifact registered for one or more class
// ids within a backend. SVGPath and PNGPath hold resolved drawing artifact
// locations; an empty value means the artifact was not generated.
type BaseEntry struct {
	Filename string
	Authors  []string
	License  catalog.License
	ClassIDs []string
	SVGPath  string
	PNGPath  string
}

// Database is the keyed store of base entries for a single backend.
type Database struct {
	Backend string
	Entries map[string]*BaseEntry
}

// NewDatabase constructs an empty database for the named backend.
func NewDatabase(backendName string) *Database {
	return &Database{
		Backend: backendName,
		Entries: make(map[string]*BaseEntry),
	}
}

// Register associates the entry with the provided class id.
func (database *Database) Register(classID string, entry *BaseEntry) {
	database.Entries[classID] = entry
}

// Entry returns the base entry registered for the class id, when present.
func (database *Database) Entry(classID string) (*BaseEntry, bool) {
	registeredEntry, entryExists := database.Entries[classID]
	return registeredEntry, entryExists
}

// HasClass reports whether a base entry is registered for the class id.
func (database *Database) HasClass(classID string) bool {
	_, entryExists := database.Entries[classID]
	return entryExists
}

// SortedClassIDs returns the registered class ids in lexical order.
func (database *Database) SortedClassIDs() []string {
	classIdentifiers := make([]string, 0, len(database.Entries))
	for classIdentifier := range database.Entries {
		classIdentifiers = append(classIdentifiers, classIdentifier)
	}
	sort.Strings(classIdentifiers)
	return classIdentifiers
}

// DatabaseSet maps backend names to their databases.
type DatabaseSet map[string]*Database

// SortedNames returns the backend names in lexical order.
func (set DatabaseSet) SortedNames() []string {
	backendNames := make([]string, 0, len(set))
	for backendName := range set {
		backendNames = append(backendNames, backendName)
	}
	sort.Strings(backendNames)
	return backendNames
}
