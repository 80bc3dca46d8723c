// Package scaffold creates solution and data file skeletons following
// the y<year>/d<dd>[_<part>] layout.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/puzzlein/puzzlein"
)

// Options name the puzzle to scaffold under Root.
type Options struct {
	Root      string
	Year      int
	Day       int
	Part      int // 0 for no part suffix
	Extension string
	DataDir   string // relative to the solution file, empty for default
}

// Result lists the files Generate created.
type Result struct {
	SolutionPath string
	InputPath    string
	TestPath     string
}

const goStub = `package main

import (
	"fmt"

	"github.com/puzzlein/puzzlein"
)

func main() {
	lines, err := puzzlein.ReadLines(puzzlein.DefaultOptions())
	if err != nil {
		panic(err)
	}

	fmt.Println(len(lines))
}
`

// Generate creates the solution file plus empty input and test data
// files. The solution file must not already exist; data files are
// only created when absent.
func Generate(opts Options) (*Result, error) {
	if opts.Day < 1 {
		return nil, fmt.Errorf("invalid day %d", opts.Day)
	}
	if opts.Year < 1 {
		return nil, fmt.Errorf("invalid year %d", opts.Year)
	}

	info := puzzlein.Info{Year: opts.Year, Day: opts.Day, Part: opts.Part}

	name := "d" + info.PaddedDay()
	if info.HasPart() {
		name += fmt.Sprintf("_%d", info.Part)
	}
	ext := opts.Extension
	if ext == "" {
		ext = "go"
	}

	solutionPath := filepath.Join(opts.Root, fmt.Sprintf("y%d", info.Year), name+"."+ext)
	if _, err := os.Stat(solutionPath); err == nil {
		return nil, fmt.Errorf("solution already exists: %s", solutionPath)
	}

	if err := os.MkdirAll(filepath.Dir(solutionPath), 0755); err != nil {
		return nil, fmt.Errorf("unable to create solution dir: %w", err)
	}

	var stub []byte
	if ext == "go" {
		stub = []byte(goStub)
	}
	if err := os.WriteFile(solutionPath, stub, 0644); err != nil {
		return nil, fmt.Errorf("unable to write solution file: %w", err)
	}

	readOpts := puzzlein.DefaultOptions()
	readOpts.DataDir = opts.DataDir

	inputPath, err := puzzlein.InputPath(solutionPath, readOpts)
	if err != nil {
		return nil, err
	}
	readOpts.Test = true
	testPath, err := puzzlein.InputPath(solutionPath, readOpts)
	if err != nil {
		return nil, err
	}

	for _, path := range []string{inputPath, testPath} {
		if err := touch(path); err != nil {
			return nil, err
		}
	}

	return &Result{
		SolutionPath: solutionPath,
		InputPath:    inputPath,
		TestPath:     testPath,
	}, nil
}

// touch creates an empty file unless it already exists.
func touch(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create data dir: %w", err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return fmt.Errorf("unable to create data file: %w", err)
	}
	return nil
}
