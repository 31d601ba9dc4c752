package theory

// pitchClasses covers every natural letter plus single sharp and flat
// spellings, including B#, E#, Cb and Fb.
var pitchClasses = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D": 2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G": 7,
	"G#": 8, "Ab": 8,
	"A": 9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

// PitchClass returns the 0..11 pitch class of a canonical note spelling.
func PitchClass(note string) (int, bool) {
	pc, ok := pitchClasses[note]
	return pc, ok
}

// Enharmonic reports whether a and b both resolve to the same pitch class.
func Enharmonic(a, b string) bool {
	pa, ok := PitchClass(a)
	if !ok {
		return false
	}
	pb, ok := PitchClass(b)
	return ok && pa == pb
}
