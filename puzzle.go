// Package puzzlein locates and reads puzzle input files for
// competitive-puzzle solutions laid out as <year dir>/<day file>,
// e.g. y2024/d05_2.go with data under ../../data/2024/.
package puzzlein

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// Info identifies a single puzzle. Part is 0 when the solution file
// carries no _<part> suffix.
type Info struct {
	Year int
	Day  int
	Part int
}

// PaddedDay returns the day as two-digit text ("1" -> "01"), the form
// used in input filenames.
func (i Info) PaddedDay() string {
	return fmt.Sprintf("%02d", i.Day)
}

// HasPart reports whether the solution file named a part.
func (i Info) HasPart() bool {
	return i.Part != 0
}

func (i Info) String() string {
	if i.HasPart() {
		return fmt.Sprintf("%d day %d part %d", i.Year, i.Day, i.Part)
	}
	return fmt.Sprintf("%d day %d", i.Year, i.Day)
}

// ParsePath extracts puzzle identifiers from a solution file path.
//
// The parent directory names the year, either bare ("2024") or with a
// single letter prefix ("y2024"). The filename stem names the day with
// an optional letter prefix ("d05", "day05") and an optional _<part>
// suffix ("d05_2").
func ParsePath(path string) (Info, error) {
	dir := filepath.Base(filepath.Dir(path))
	year, err := parseYearToken(dir)
	if err != nil {
		return Info{}, fmt.Errorf("unable to parse year from %q: %w", dir, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dayTok, partTok, hasPart := strings.Cut(stem, "_")

	day, err := parseDayToken(dayTok)
	if err != nil {
		return Info{}, fmt.Errorf("unable to parse day from %q: %w", stem, err)
	}

	info := Info{Year: year, Day: day}
	if hasPart {
		part, err := strconv.Atoi(partTok)
		if err != nil {
			return Info{}, fmt.Errorf("unable to parse part from %q: %w", stem, err)
		}
		info.Part = part
	}

	return info, nil
}

// parseYearToken handles "2024" and "y2024" shaped directory names.
// Exactly one leading letter is stripped; anything non-numeric after
// that is an error.
func parseYearToken(tok string) (int, error) {
	if tok == "" {
		return 0, fmt.Errorf("empty directory name")
	}
	runes := []rune(tok)
	if unicode.IsLetter(runes[0]) {
		tok = string(runes[1:])
	}
	return strconv.Atoi(tok)
}

// parseDayToken strips any leading non-digit characters ("d", "day")
// and parses the rest as an integer.
func parseDayToken(tok string) (int, error) {
	trimmed := strings.TrimLeftFunc(tok, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if trimmed == "" {
		return 0, fmt.Errorf("no digits in day token")
	}
	return strconv.Atoi(trimmed)
}
