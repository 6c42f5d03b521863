package catalog

// License captures the license metadata attached to collections and backend
// base entries.
type License struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Parameter describes a single dimension or lookup parameter of a part class.
type Parameter struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default string `yaml:"default"`
}

// ParameterSet groups class parameters into the common and specific families.
type ParameterSet struct {
	Common   []Parameter `yaml:"common"`
	Specific []Parameter `yaml:"specific"`
}

// Class describes one part type identified by id within a collection.
type Class struct {
	ID          string       `yaml:"id"`
	Standard    string       `yaml:"standard"`
	Description string       `yaml:"description"`
	Parameters  ParameterSet `yaml:"parameters"`
}

// Collection groups classes sharing a standard family along with authorship
// and license metadata.
type Collection struct {
	ID          string
	Name        string
	Description string
	Authors     []string
	License     License
	Classes     []*Class
}

// Repository is the canonical catalog of part collections rooted at a
// directory on disk.
type Repository struct {
	RootPath    string
	Collections []*Collection
}

// ClassesByID returns the collection's classes in declaration order with
// duplicate class ids skipped; the first declaration wins.
func (collection *Collection) ClassesByID() []*Class {
	seenIdentifiers := make(map[string]struct{}, len(collection.Classes))
	uniqueClasses := make([]*Class, 0, len(collection.Classes))
	for _, collectionClass := range collection.Classes {
		if _, alreadySeen := seenIdentifiers[collectionClass.ID]; alreadySeen {
			continue
		}
		seenIdentifiers[collectionClass.ID] = struct{}{}
		uniqueClasses = append(uniqueClasses, collectionClass)
	}
	return uniqueClasses
}

// ClassIDSet returns the set of class ids declared across all collections.
func (repository *Repository) ClassIDSet() map[string]struct{} {
	identifiers := make(map[string]struct{})
	for _, repositoryCollection := range repository.Collections {
		for _, repositoryClass := range repositoryCollection.ClassesByID() {
			identifiers[repositoryClass.ID] = struct{}{}
		}
	}
	return identifiers
}
