package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/solfa/internal/theory"
)

// Options are the presentation-layer choices that shape the next item.
type Options struct {
	// Key is a key name from the table for Mode's quality, or RandomKey.
	Key string

	Mode theory.Mode

	// Prompt is a concrete prompt type or PromptMixed.
	Prompt PromptType

	// ChromaticAware selects the per-mode solfège tables.
	ChromaticAware bool
}

// Generator draws quiz items. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from rng. A nil rng uses a
// randomly seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// NewSeededGenerator returns a Generator with a fixed seed, for reproducible
// item sequences.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Next resolves the key, degree and prompt type and builds the item.
func (g *Generator) Next(opts Options) (*Item, error) {
	key, err := g.resolveKey(opts.Key, opts.Mode)
	if err != nil {
		return nil, err
	}

	prompt := opts.Prompt
	switch {
	case prompt == PromptMixed:
		prompt = concretePrompts[g.rng.IntN(len(concretePrompts))]
	case !prompt.Concrete():
		return nil, fmt.Errorf("unknown prompt type %d", int(prompt))
	}

	degree := g.rng.IntN(7) + 1
	return BuildItem(key, opts.Mode, degree, prompt, opts.ChromaticAware)
}

func (g *Generator) resolveKey(key string, mode theory.Mode) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("resolve key: %w: %d", theory.ErrUnknownMode, int(mode))
	}
	if key != RandomKey {
		return key, nil
	}
	keys := theory.Keys(mode.Quality())
	return keys[g.rng.IntN(len(keys))], nil
}

// BuildItem builds an item for a fixed key, mode, degree and concrete prompt
// type. No partial item is returned on error.
func BuildItem(key string, mode theory.Mode, degree int, prompt PromptType, chromaticAware bool) (*Item, error) {
	if !prompt.Concrete() {
		return nil, fmt.Errorf("build item: prompt type %q is not concrete", prompt)
	}
	sc, err := theory.BuildScale(key, mode)
	if err != nil {
		return nil, fmt.Errorf("build scale: %w", err)
	}
	note, err := sc.Note(degree)
	if err != nil {
		return nil, fmt.Errorf("build item: %w", err)
	}
	syl, err := theory.SolfegeFor(degree, mode, chromaticAware)
	if err != nil {
		return nil, fmt.Errorf("map solfege: %w", err)
	}

	return &Item{
		Key:            key,
		Mode:           mode,
		Scale:          sc,
		Degree:         degree,
		Note:           note,
		Solfege:        syl,
		Prompt:         prompt,
		ChromaticAware: chromaticAware,
	}, nil
}
