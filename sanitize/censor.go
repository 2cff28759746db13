package sanitize

import (
	"chat-relay/errors"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Censor masks forbidden words with a replacement rune. Matching runs on
// a normalized view of the text (lowercase, leet speak folded, noise
// removed) so spaced or punctuated variants are still caught, while the
// replacement happens on the original runes to preserve spacing.
type Censor struct {
	machine     *goahocorasick.Machine
	replacement rune
}

// NewCensor builds the Aho-Corasick automaton from the word list.
func NewCensor(words []string, replacement rune) (*Censor, error) {
	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}
	patterns := make([][]rune, len(words))
	for i, word := range words {
		patterns[i] = foldRunes([]rune(word))
	}
	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	return &Censor{machine: machine, replacement: replacement}, nil
}

// Apply returns text with every matched word masked.
func (c *Censor) Apply(text string) string {
	original := []rune(text)
	folded := make([]rune, 0, len(original))
	// position of each folded rune in the original text
	at := make([]int, 0, len(original))
	for i, r := range original {
		simple := unfoldLeet(r)
		if isIgnorable(simple) {
			continue
		}
		folded = append(folded, unicode.ToLower(simple))
		at = append(at, i)
	}
	if len(folded) == 0 {
		return text
	}

	matches := c.machine.MultiPatternSearch(folded, false)
	if len(matches) == 0 {
		return text
	}
	for _, match := range matches {
		start := match.Pos
		end := start + len(match.Word)
		if start < 0 || end > len(at) {
			continue
		}
		for i := at[start]; i <= at[end-1]; i++ {
			original[i] = c.replacement
		}
	}
	return string(original)
}

// foldRunes normalizes a pattern the same way Apply normalizes input.
func foldRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		simple := unfoldLeet(r)
		if isIgnorable(simple) {
			continue
		}
		out = append(out, unicode.ToLower(simple))
	}
	return out
}

// unfoldLeet maps common leet speak substitutions back to letters.
func unfoldLeet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isIgnorable reports runes skipped during matching.
func isIgnorable(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
