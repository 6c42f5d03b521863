package tests

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/partlint/partlint/cmd/cli"
)

const (
	fixtureCollectionFileNameConstant = "fasteners.blt"
	fixtureCollectionContentConstant  = `collection:
  id: C1
  name: Hex fasteners
  authors:
    - Alice Smith
  license:
    name: MIT
    url: https://opensource.org/licenses/MIT
classes:
  - id: A
    standard: DIN933
    parameters:
      common: []
      specific:
        - name: key
          type: Length (mm)
          default: "10"
  - id: B
    standard: DIN934
    parameters:
      common:
        - name: key
          type: Length (mm)
          default: "10"
      specific: []
`
	fixtureBaseFileNameConstant = "bolts.base"
	fixtureBaseContentConstant  = `- filename: bolts.py
  authors:
    - Alice Smith
  license:
    name: MIT
    url: https://opensource.org/licenses/MIT
  classids:
    - A
`
	fixtureGeometryFileNameConstant = "bolts.py"
	fixtureCollectionsDirectoryName = "collections"
	fixtureFreecadDirectoryName     = "freecad"
	fixtureCollectionIdentifier     = "C1"
)

// writeScenarioRepository lays out the two-class part repository used across
// the integration tests: class A has FreeCAD geometry but no common
// parameters, class B has common parameters but no geometry at all, and
// neither class has a drawing.
func writeScenarioRepository(testInstance *testing.T) string {
	testInstance.Helper()

	repositoryRoot := testInstance.TempDir()

	collectionsDirectory := filepath.Join(repositoryRoot, fixtureCollectionsDirectoryName)
	require.NoError(testInstance, os.MkdirAll(collectionsDirectory, 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(collectionsDirectory, fixtureCollectionFileNameConstant), []byte(fixtureCollectionContentConstant), 0o644))

	freecadCollectionDirectory := filepath.Join(repositoryRoot, fixtureFreecadDirectoryName, fixtureCollectionIdentifier)
	require.NoError(testInstance, os.MkdirAll(freecadCollectionDirectory, 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(freecadCollectionDirectory, fixtureBaseFileNameConstant), []byte(fixtureBaseContentConstant), 0o644))
	require.NoError(testInstance, os.WriteFile(filepath.Join(freecadCollectionDirectory, fixtureGeometryFileNameConstant), []byte{}, 0o644))

	return repositoryRoot
}

// runApplication executes the assembled CLI in process with the provided
// arguments and returns the captured standard output together with the
// execution error.
func runApplication(testInstance *testing.T, arguments ...string) (string, error) {
	testInstance.Helper()

	originalArguments := os.Args
	defer func() {
		os.Args = originalArguments
	}()
	os.Args = append([]string{"partlint"}, arguments...)

	originalStdout := os.Stdout
	pipeReader, pipeWriter, pipeError := os.Pipe()
	require.NoError(testInstance, pipeError)
	os.Stdout = pipeWriter
	defer func() {
		os.Stdout = originalStdout
	}()

	executionError := cli.Execute()

	require.NoError(testInstance, pipeWriter.Close())
	capturedBytes, readError := io.ReadAll(pipeReader)
	require.NoError(testInstance, readError)
	require.NoError(testInstance, pipeReader.Close())

	return string(capturedBytes), executionError
}
