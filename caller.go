package puzzlein

import (
	"errors"
	"runtime"
)

// callerFile returns the source file of the frame skip levels up the
// stack. skip counts as in runtime.Caller, relative to callerFile
// itself.
func callerFile(skip int) (string, error) {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", errors.New("unable to determine calling file")
	}
	return file, nil
}

// Current parses the puzzle identifiers from the calling source file.
func Current() (Info, error) {
	file, err := callerFile(1)
	if err != nil {
		return Info{}, err
	}
	return ParsePath(file)
}

// ReadLines reads the calling file's input one string per line.
// Equivalent to ReadLinesFrom with the caller's own source path.
func ReadLines(opts Options) ([]string, error) {
	file, err := callerFile(1)
	if err != nil {
		return nil, err
	}
	return ReadLinesFrom(file, opts)
}

// ReadText reads the calling file's input as a single string.
func ReadText(opts Options) (string, error) {
	file, err := callerFile(1)
	if err != nil {
		return "", err
	}
	return ReadTextFrom(file, opts)
}

// Read reads the calling file's input in the shape named by opts.Mode.
func Read(opts Options) (string, error) {
	file, err := callerFile(1)
	if err != nil {
		return "", err
	}
	return ReadFrom(file, opts)
}
