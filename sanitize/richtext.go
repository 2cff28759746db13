// Package sanitize neutralizes markup and censored words in message bodies.
// The stored and broadcast body is always the sanitized result, never the
// raw client input.
package sanitize

import (
	"log/slog"
	"strings"
	"unicode"
)

// allowedTags is the whitelist of formatting tags that survive
// sanitization. Everything else, color and size markup included, is
// stripped while keeping the inner text.
var allowedTags = map[string]bool{
	"b": true,
	"i": true,
}

// Sanitizer applies the rich-text whitelist filter followed by an
// optional censored-word pass.
type Sanitizer struct {
	log    *slog.Logger
	censor *Censor
}

// New builds a sanitizer. An empty word list disables the censor pass.
func New(log *slog.Logger, censoredWords []string, replacement rune) (Sanitizer, error) {
	if len(censoredWords) == 0 {
		return Sanitizer{log: log}, nil
	}
	censor, err := NewCensor(censoredWords, replacement)
	if err != nil {
		return Sanitizer{}, err
	}
	return Sanitizer{log: log, censor: censor}, nil
}

// Clean returns the sanitized form of raw.
func (s Sanitizer) Clean(raw string) string {
	cleaned := FilterRichText(raw)
	if s.censor != nil {
		cleaned = s.censor.Apply(cleaned)
	}
	if cleaned != raw && s.log != nil {
		s.log.Debug("Sanitized message body", "removed", len(raw)-len(cleaned))
	}
	return cleaned
}

// FilterRichText strips markup per the whitelist policy and drops control
// characters. Unterminated tags are neutralized by escaping the opening
// bracket so clients cannot smuggle markup past the filter.
func FilterRichText(raw string) string {
	runes := []rune(raw)
	var out strings.Builder
	out.Grow(len(raw))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '<' {
			if r == '\n' || r == '\t' || !unicode.IsControl(r) {
				out.WriteRune(r)
			}
			continue
		}

		end := closingBracket(runes, i)
		if end == -1 {
			out.WriteString("&lt;")
			continue
		}

		tag := string(runes[i+1 : end])
		if name, closing, ok := parseTag(tag); ok && allowedTags[name] {
			if closing {
				out.WriteString("</" + name + ">")
			} else {
				out.WriteString("<" + name + ">")
			}
		}
		// Non-whitelisted tags vanish; their inner text is kept by
		// simply continuing after the bracket.
		i = end
	}
	return out.String()
}

// closingBracket finds the matching '>' for the '<' at start, or -1 when
// the tag is unterminated or interrupted by another '<'.
func closingBracket(runes []rune, start int) int {
	for i := start + 1; i < len(runes); i++ {
		switch runes[i] {
		case '>':
			return i
		case '<':
			return -1
		}
	}
	return -1
}

// parseTag extracts the tag name from the text between brackets.
// "color=red" yields "color", "/b" yields "b" with closing set.
func parseTag(tag string) (name string, closing bool, ok bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", false, false
	}
	if tag[0] == '/' {
		closing = true
		tag = tag[1:]
	}
	end := strings.IndexAny(tag, "= \t")
	if end == -1 {
		end = len(tag)
	}
	name = strings.ToLower(tag[:end])
	if name == "" {
		return "", false, false
	}
	return name, closing, true
}
