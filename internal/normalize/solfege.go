package normalize

import (
	"strings"

	"github.com/abhisek/solfa/internal/theory"
)

// solfegeSynonyms maps accepted spellings to canonical syllables. "me" is
// the lowered third, not a spelling of "mi".
var solfegeSynonyms = map[string]theory.Syllable{
	"do": theory.Do, "doh": theory.Do, "dou": theory.Do,
	"re": theory.Re, "ray": theory.Re,
	"mi": theory.Mi,
	"fa": theory.Fa,
	"sol": theory.Sol, "so": theory.Sol, "sou": theory.Sol, "soh": theory.Sol,
	"la": theory.La, "lah": theory.La,
	"ti": theory.Ti, "si": theory.Ti,

	"ra": theory.Ra,
	"ri": theory.Ri,
	"me": theory.Me,
	"fi": theory.Fi,
	"se": theory.Se,
	"le": theory.Le,
	"li": theory.Li, "si#": theory.Li,
	"te": theory.Te,
}

// Solfege lower-cases and trims s and resolves it to a canonical syllable.
func Solfege(s string) (theory.Syllable, bool) {
	syl, ok := solfegeSynonyms[strings.ToLower(strings.TrimSpace(s))]
	return syl, ok
}
