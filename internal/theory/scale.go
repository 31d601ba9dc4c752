package theory

import (
	"fmt"
	"strings"
)

// Mode selects the scale form built on a key.
type Mode int

const (
	ModeMajor Mode = iota
	ModeNaturalMinor
	ModeHarmonicMinor
	ModeMelodicMinor // ascending form
)

var modeNames = map[Mode]string{
	ModeMajor:         "major",
	ModeNaturalMinor:  "natural-minor",
	ModeHarmonicMinor: "harmonic-minor",
	ModeMelodicMinor:  "melodic-minor",
}

var modeAliases = map[string]Mode{
	"major":                   ModeMajor,
	"natural-minor":           ModeNaturalMinor,
	"minor":                   ModeNaturalMinor,
	"harmonic-minor":          ModeHarmonicMinor,
	"melodic-minor":           ModeMelodicMinor,
	"melodic-minor-ascending": ModeMelodicMinor,
}

// AllModes returns every mode in display order.
func AllModes() []Mode {
	return []Mode{ModeMajor, ModeNaturalMinor, ModeHarmonicMinor, ModeMelodicMinor}
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// DisplayName returns a human-readable name for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeMajor:
		return "Major"
	case ModeNaturalMinor:
		return "Natural minor"
	case ModeHarmonicMinor:
		return "Harmonic minor"
	case ModeMelodicMinor:
		return "Melodic minor (ascending)"
	default:
		return m.String()
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// Quality returns the key quality whose signature the mode is built on.
func (m Mode) Quality() Quality {
	if m == ModeMajor {
		return Major
	}
	return Minor
}

// ParseMode parses a mode name such as "major" or "harmonic-minor".
// Matching is case-insensitive; underscores and spaces count as hyphens.
func ParseMode(s string) (Mode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", "-", " ", "-").Replace(s)
	m, ok := modeAliases[s]
	return m, ok
}

// raisedDegrees lists the 1-based degrees raised a semitone above the key
// signature for each mode.
var raisedDegrees = map[Mode][]int{
	ModeMajor:         nil,
	ModeNaturalMinor:  nil,
	ModeHarmonicMinor: {7},
	ModeMelodicMinor:  {6, 7},
}

var (
	letterSequence = "ABCDEFG"
	sharpOrder     = "FCGDAEB"
	flatOrder      = "BEADGCF"
)

// Scale is a spelled seven-note scale; index 0 is the tonic.
type Scale [7]string

// Note returns the note at the 1-based degree.
func (s Scale) Note(degree int) (string, error) {
	if degree < 1 || degree > 7 {
		return "", &InvalidDegreeError{Degree: degree}
	}
	return s[degree-1], nil
}

func (s Scale) String() string {
	return strings.Join(s[:], " ")
}

// BuildScale spells the scale for key in the given mode. The result is
// deterministic and every note carries at most one accidental.
func BuildScale(key string, mode Mode) (Scale, error) {
	if !mode.Valid() {
		return Scale{}, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	count, err := AccidentalCount(key, mode.Quality())
	if err != nil {
		return Scale{}, err
	}

	accidentals := signatureAccidentals(count)
	start := strings.IndexByte(letterSequence, key[0])

	var sc Scale
	for i := range sc {
		letter := letterSequence[(start+i)%len(letterSequence)]
		sc[i] = string(letter) + accidentals[letter]
	}
	for _, d := range raisedDegrees[mode] {
		sc[d-1] = raiseSemitone(sc[d-1])
	}
	return sc, nil
}

// signatureAccidentals maps each altered letter of a key signature to its
// accidental symbol.
func signatureAccidentals(count int) map[byte]string {
	acc := make(map[byte]string, 7)
	switch {
	case count > 0:
		for i := 0; i < count && i < len(sharpOrder); i++ {
			acc[sharpOrder[i]] = "#"
		}
	case count < 0:
		for i := 0; i < -count && i < len(flatOrder); i++ {
			acc[flatOrder[i]] = "b"
		}
	}
	return acc
}

// raiseSemitone raises a spelled note by cancelling its flat or adding a
// sharp. A note that is already sharp stays single-sharp: the note alphabet
// has no double sharps.
func raiseSemitone(note string) string {
	letter := note[:1]
	if len(note) > 1 && note[1] == 'b' {
		return letter
	}
	return letter + "#"
}
