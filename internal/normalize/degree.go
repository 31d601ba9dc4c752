package normalize

import (
	"strconv"
	"strings"
)

// degreeParser is a total parser for one degree syntax.
type degreeParser func(s string) (int, bool)

// degreeParsers run in order; the first match wins.
var degreeParsers = []degreeParser{
	parseDegreeDigits,
	parseDegreeOrdinal,
	parseDegreeRoman,
}

var ordinalSuffixes = map[string]bool{"st": true, "nd": true, "rd": true, "th": true}

var romanDegrees = map[string]int{
	"I": 1, "II": 2, "III": 3, "IV": 4, "V": 5, "VI": 6, "VII": 7,
}

// Degree parses a scale degree written as a digit ("3"), an ordinal
// ("3rd") or a Roman numeral ("III", case-insensitive). Values outside 1..7
// never match.
func Degree(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, parse := range degreeParsers {
		if d, ok := parse(s); ok {
			return d, true
		}
	}
	return 0, false
}

func parseDegreeDigits(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 7 {
		return 0, false
	}
	return n, true
}

func parseDegreeOrdinal(s string) (int, bool) {
	if len(s) < 3 {
		return 0, false
	}
	prefix, suffix := s[:len(s)-2], strings.ToLower(s[len(s)-2:])
	if !ordinalSuffixes[suffix] {
		return 0, false
	}
	return parseDegreeDigits(prefix)
}

func parseDegreeRoman(s string) (int, bool) {
	d, ok := romanDegrees[strings.ToUpper(s)]
	return d, ok
}
