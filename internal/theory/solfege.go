package theory

import "fmt"

// Syllable is a canonical movable-do solfège syllable.
type Syllable string

const (
	Do  Syllable = "do"
	Re  Syllable = "re"
	Mi  Syllable = "mi"
	Fa  Syllable = "fa"
	Sol Syllable = "sol"
	La  Syllable = "la"
	Ti  Syllable = "ti"

	// Chromatic syllables.
	Ra Syllable = "ra"
	Ri Syllable = "ri"
	Me Syllable = "me"
	Fi Syllable = "fi"
	Se Syllable = "se"
	Le Syllable = "le"
	Li Syllable = "li"
	Te Syllable = "te"
)

var diatonicSyllables = [7]Syllable{Do, Re, Mi, Fa, Sol, La, Ti}

// chromaticSyllables are the per-mode syllables sung when chromatic
// awareness is on. Harmonic minor's raised 7th is sung "ti".
var chromaticSyllables = map[Mode][7]Syllable{
	ModeMajor:         {Do, Re, Mi, Fa, Sol, La, Ti},
	ModeNaturalMinor:  {Do, Re, Me, Fa, Sol, Le, Te},
	ModeHarmonicMinor: {Do, Re, Me, Fa, Sol, Le, Ti},
	ModeMelodicMinor:  {Do, Re, Me, Fa, Sol, La, Ti},
}

// SolfegeFor returns the syllable for a 1-based degree. With chromaticAware
// false the fixed diatonic syllable is returned regardless of mode.
func SolfegeFor(degree int, mode Mode, chromaticAware bool) (Syllable, error) {
	if degree < 1 || degree > 7 {
		return "", &InvalidDegreeError{Degree: degree}
	}
	if !chromaticAware {
		return diatonicSyllables[degree-1], nil
	}
	table, ok := chromaticSyllables[mode]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	return table[degree-1], nil
}
