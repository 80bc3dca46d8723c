package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/puzzlein/puzzlein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	root := filepath.Join(t.TempDir(), "solutions")

	result, err := Generate(Options{Root: root, Year: 2024, Day: 5})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "y2024", "d05.go"), result.SolutionPath)
	assert.FileExists(t, result.SolutionPath)
	assert.FileExists(t, result.InputPath)
	assert.FileExists(t, result.TestPath)

	// Generated layout must parse back to the same puzzle.
	info, err := puzzlein.ParsePath(result.SolutionPath)
	require.NoError(t, err)
	assert.Equal(t, puzzlein.Info{Year: 2024, Day: 5}, info)

	stub, err := os.ReadFile(result.SolutionPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(stub), "puzzlein.ReadLines"), "go stub should use the library")
}

func TestGenerateWithPart(t *testing.T) {
	root := filepath.Join(t.TempDir(), "solutions")

	result, err := Generate(Options{Root: root, Year: 2024, Day: 5, Part: 2})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "y2024", "d05_2.go"), result.SolutionPath)
	assert.Equal(t, "input05_2.txt", filepath.Base(result.InputPath))
	assert.Equal(t, "test05_2.txt", filepath.Base(result.TestPath))

	info, err := puzzlein.ParsePath(result.SolutionPath)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Part)
}

func TestGenerateNonGoExtension(t *testing.T) {
	root := filepath.Join(t.TempDir(), "solutions")

	result, err := Generate(Options{Root: root, Year: 2023, Day: 1, Extension: "py"})
	require.NoError(t, err)

	assert.Equal(t, "d01.py", filepath.Base(result.SolutionPath))

	stub, err := os.ReadFile(result.SolutionPath)
	require.NoError(t, err)
	assert.Empty(t, stub)
}

func TestGenerateRefusesOverwrite(t *testing.T) {
	root := filepath.Join(t.TempDir(), "solutions")

	_, err := Generate(Options{Root: root, Year: 2024, Day: 5})
	require.NoError(t, err)

	_, err = Generate(Options{Root: root, Year: 2024, Day: 5})
	assert.Error(t, err)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	_, err := Generate(Options{Root: filepath.Join(t.TempDir(), "solutions"), Year: 2024, Day: 0})
	assert.Error(t, err)

	_, err = Generate(Options{Root: filepath.Join(t.TempDir(), "solutions"), Year: 0, Day: 1})
	assert.Error(t, err)
}
