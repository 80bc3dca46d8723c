package puzzlein

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultDataDir is the data root relative to the solution file:
// two levels up, then into data/.
const DefaultDataDir = "../../data"

// Mode selects the shape input is returned in.
type Mode int

const (
	// ModeLines returns the input one string per line.
	ModeLines Mode = iota
	// ModeText returns the input as a single string.
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeLines:
		return "lines"
	case ModeText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "lines":
		return ModeLines, nil
	case "text":
		return ModeText, nil
	default:
		return 0, fmt.Errorf("unknown input mode %q", s)
	}
}

// Options controls input file selection and the returned shape.
type Options struct {
	// Test selects test<DD>.txt instead of input<DD>.txt.
	Test bool
	// Strip removes line terminators in ModeLines and surrounding
	// whitespace in ModeText.
	Strip bool
	// DataDir is the data root relative to the solution file.
	// Empty means DefaultDataDir.
	DataDir string
	// Mode is consulted by Read and ReadFrom only; the typed
	// functions ignore it.
	Mode Mode
}

// DefaultOptions returns the options solution files normally want:
// real input, stripped, line mode, data two levels up.
func DefaultOptions() Options {
	return Options{
		Test:    false,
		Strip:   true,
		DataDir: DefaultDataDir,
		Mode:    ModeLines,
	}
}

// InputPath computes the data file path for the given solution file:
// <dir>/<data dir>/<year>/<test|input><DD>[_<P>].txt.
func InputPath(callerFile string, opts Options) (string, error) {
	info, err := ParsePath(callerFile)
	if err != nil {
		return "", err
	}

	prefix := "input"
	if opts.Test {
		prefix = "test"
	}

	name := prefix + info.PaddedDay()
	if info.HasPart() {
		name += fmt.Sprintf("_%d", info.Part)
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	path := filepath.Join(
		filepath.Dir(callerFile),
		dataDir,
		strconv.Itoa(info.Year),
		name+".txt",
	)
	return filepath.Clean(path), nil
}

// ReadTextFrom reads the input for callerFile and returns it as a
// single string. With opts.Strip the surrounding whitespace is
// trimmed.
func ReadTextFrom(callerFile string, opts Options) (string, error) {
	content, err := readInput(callerFile, opts)
	if err != nil {
		return "", err
	}
	if opts.Strip {
		return strings.TrimSpace(content), nil
	}
	return content, nil
}

// ReadLinesFrom reads the input for callerFile and returns it one
// string per line. With opts.Strip each line loses its terminator;
// without it terminators are kept. A trailing newline does not yield
// an empty final line.
func ReadLinesFrom(callerFile string, opts Options) ([]string, error) {
	content, err := readInput(callerFile, opts)
	if err != nil {
		return nil, err
	}
	return splitLines(content, opts.Strip), nil
}

// ReadFrom reads the input for callerFile in the shape named by
// opts.Mode, rendered as a single string. Line mode joins the lines
// with newlines; this is the form the CLI prints.
func ReadFrom(callerFile string, opts Options) (string, error) {
	switch opts.Mode {
	case ModeText:
		return ReadTextFrom(callerFile, opts)
	case ModeLines:
		lines, err := ReadLinesFrom(callerFile, opts)
		if err != nil {
			return "", err
		}
		// Without Strip each line keeps its terminator, so joining
		// with a newline would double it.
		if !opts.Strip {
			return strings.Join(lines, ""), nil
		}
		return strings.Join(lines, "\n"), nil
	default:
		return "", fmt.Errorf("unknown input mode %d", opts.Mode)
	}
}

func readInput(callerFile string, opts Options) (string, error) {
	path, err := InputPath(callerFile, opts)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read input: %w", err)
	}
	return string(data), nil
}

func splitLines(content string, strip bool) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if strip {
		for i, line := range lines {
			lines[i] = strings.TrimRight(line, "\r\n")
		}
	}
	return lines
}
