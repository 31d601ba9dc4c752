package theory

import "sort"

// Quality is the tonal quality of a key.
type Quality int

const (
	Major Quality = iota
	Minor
)

func (q Quality) String() string {
	switch q {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return "unknown"
	}
}

// Signed accidental counts: positive = sharps, negative = flats.
var (
	majorKeySignatures = map[string]int{
		"C": 0, "G": 1, "D": 2, "A": 3, "E": 4, "B": 5, "F#": 6, "C#": 7,
		"F": -1, "Bb": -2, "Eb": -3, "Ab": -4, "Db": -5, "Gb": -6, "Cb": -7,
	}
	minorKeySignatures = map[string]int{
		"A": 0, "E": 1, "B": 2, "F#": 3, "C#": 4, "G#": 5, "D#": 6, "A#": 7,
		"D": -1, "G": -2, "C": -3, "F": -4, "Bb": -5, "Eb": -6, "Ab": -7,
	}
)

// keysByQuality holds each table's key names in circle-of-fifths order
// (most flats first), computed once at init.
var keysByQuality = map[Quality][]string{
	Major: sortedKeys(majorKeySignatures),
	Minor: sortedKeys(minorKeySignatures),
}

func sortedKeys(table map[string]int) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return table[keys[i]] < table[keys[j]] })
	return keys
}

func signatureTable(q Quality) map[string]int {
	switch q {
	case Major:
		return majorKeySignatures
	case Minor:
		return minorKeySignatures
	default:
		return nil
	}
}

// AccidentalCount returns the signed number of accidentals in the key
// signature of key for the given quality.
func AccidentalCount(key string, q Quality) (int, error) {
	n, ok := signatureTable(q)[key]
	if !ok {
		return 0, &UnknownKeyError{Key: key, Quality: q}
	}
	return n, nil
}

// HasKey reports whether key exists in the table for q.
func HasKey(key string, q Quality) bool {
	_, ok := signatureTable(q)[key]
	return ok
}

// Keys returns the key names for q ordered from seven flats to seven sharps.
// The returned slice is a copy.
func Keys(q Quality) []string {
	keys := keysByQuality[q]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}
