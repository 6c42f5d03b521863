package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// CollectionsDirectoryName identifies the directory holding .blt files
	// beneath a repository root.
	CollectionsDirectoryName = "collections"
	// CollectionFileExtension identifies collection definition files.
	CollectionFileExtension = ".blt"

	repositoryRootRequiredMessageConstant     = "repository root path must be provided"
	collectionsDirectoryErrorTemplateConstant = "unable to read collections directory: %w"
	collectionReadErrorTemplateConstant       = "unable to read collection file %s: %w"
	collectionParseErrorTemplateConstant      = "unable to parse collection file %s: %w"
	collectionIdentifierTemplateConstant      = "collection file %s is missing a collection id"
	duplicateCollectionTemplateConstant       = "duplicate collection id %s"
	classIdentifierTemplateConstant           = "collection %s declares a class without an id"
	duplicateClassTemplateConstant            = "class id %s is declared by collections %s and %s"
)

type collectionDocument struct {
	Collection collectionHeader `yaml:"collection"`
	Classes    []*Class         `yaml:"classes"`
}

type collectionHeader struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Authors     []string `yaml:"authors"`
	License     License  `yaml:"license"`
}

// LoadRepository reads every .blt collection file beneath
// <rootPath>/collections and assembles the catalog. Collections are ordered
// by file name. Class ids must be unique across the repository; duplicates
// within one collection are tolerated and resolved by ClassesByID.
func LoadRepository(rootPath string) (*Repository, error) {
	trimmedRootPath := strings.TrimSpace(rootPath)
	if len(trimmedRootPath) == 0 {
		return nil, errors.New(repositoryRootRequiredMessageConstant)
	}

	collectionsDirectory := filepath.Join(trimmedRootPath, CollectionsDirectoryName)
	directoryEntries, directoryError := os.ReadDir(collectionsDirectory)
	if directoryError != nil {
		return nil, fmt.Errorf(collectionsDirectoryErrorTemplateConstant, directoryError)
	}

	repository := &Repository{RootPath: trimmedRootPath}
	collectionOwners := make(map[string]string)
	classOwners := make(map[string]string)

	for _, directoryEntry := range directoryEntries {
		if directoryEntry.IsDir() {
			continue
		}
		if filepath.Ext(directoryEntry.Name()) != CollectionFileExtension {
			continue
		}

		collectionPath := filepath.Join(collectionsDirectory, directoryEntry.Name())
		loadedCollection, loadError := loadCollectionFile(collectionPath)
		if loadError != nil {
			return nil, loadError
		}

		if _, collectionExists := collectionOwners[loadedCollection.ID]; collectionExists {
			return nil, fmt.Errorf(duplicateCollectionTemplateConstant, loadedCollection.ID)
		}
		collectionOwners[loadedCollection.ID] = directoryEntry.Name()

		for _, loadedClass := range loadedCollection.ClassesByID() {
			if owningCollection, classExists := classOwners[loadedClass.ID]; classExists {
				return nil, fmt.Errorf(duplicateClassTemplateConstant, loadedClass.ID, owningCollection, loadedCollection.ID)
			}
			classOwners[loadedClass.ID] = loadedCollection.ID
		}

		repository.Collections = append(repository.Collections, loadedCollection)
	}

	return repository, nil
}

func loadCollectionFile(collectionPath string) (*Collection, error) {
	contentBytes, readError := os.ReadFile(collectionPath)
	if readError != nil {
		return nil, fmt.Errorf(collectionReadErrorTemplateConstant, filepath.Base(collectionPath), readError)
	}

	var document collectionDocument
	if unmarshalError := yaml.Unmarshal(contentBytes, &document); unmarshalError != nil {
		return nil, fmt.Errorf(collectionParseErrorTemplateConstant, filepath.Base(collectionPath), unmarshalError)
	}

	collectionIdentifier := strings.TrimSpace(document.Collection.ID)
	if len(collectionIdentifier) == 0 {
		return nil, fmt.Errorf(collectionIdentifierTemplateConstant, filepath.Base(collectionPath))
	}

	for _, documentClass := range document.Classes {
		documentClass.ID = strings.TrimSpace(documentClass.ID)
		if len(documentClass.ID) == 0 {
			return nil, fmt.Errorf(classIdentifierTemplateConstant, collectionIdentifier)
		}
	}

	loadedCollection := &Collection{
		ID:          collectionIdentifier,
		Name:        document.Collection.Name,
		Description: document.Collection.Description,
		Authors:     document.Collection.Authors,
		License:     document.Collection.License,
		Classes:     document.Classes,
	}
	return loadedCollection, nil
}
