package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Decompose parses identifier as one complete placeholder. It fails when the
// identifier does not start with a prefix form, when nothing follows the
// prefix, or when the rest does not have exactly the shape of a supported
// pattern.
//
// The word boundaries of a flat placeholder such as scfmyvar cannot be
// recovered from the text alone. They are taken from the first of the known
// names whose flattened form matches; without one the flat placeholder is a
// single-word name.
func Decompose(identifier string, prefix Prefix, known ...Name) (Name, Pattern, bool) {
	for _, pat := range Patterns {
		lead := prefix.Lead(pat)
		if !strings.HasPrefix(identifier, lead) {
			continue
		}
		name, ok := splitWords(identifier[len(lead):], pat, prefix)
		if !ok {
			continue
		}
		if pat.Style == StyleFlat {
			name = Unflatten(name[0], known)
		}
		return name, pat, true
	}
	return nil, Pattern{}, false
}

// Unflatten returns the first known name whose flattened form is flat, or a
// single-word name when none matches. flat must be lowercase.
func Unflatten(flat string, known []Name) Name {
	for _, k := range known {
		if k.Flatten() == flat {
			return k
		}
	}
	return Name{flat}
}

func splitWords(rest string, pat Pattern, prefix Prefix) (Name, bool) {
	if rest == "" {
		return nil, false
	}

	var words []string
	switch pat.Style {
	case StylePascal:
		for i := 0; i < len(rest); {
			if !isUpper(rest[i]) {
				return nil, false
			}
			j := i + 1
			for j < len(rest) && (isLower(rest[j]) || isDigit(rest[j])) {
				j++
			}
			words = append(words, rest[i:j])
			i = j
		}
	case StyleFlat:
		words = []string{rest}
	default:
		words = strings.Split(rest, string(pat.Style.Separator()))
	}

	name := make(Name, 0, len(words))
	for _, w := range words {
		if pat.Style == StylePascal {
			if prefix.isWordToken(w) {
				return nil, false
			}
			name = append(name, strings.ToLower(w))
			continue
		}
		if !isWord(w, pat.Upper) || prefix.isWordToken(w) {
			return nil, false
		}
		name = append(name, strings.ToLower(w))
	}
	return name, true
}

// Render writes name as a placeholder in pattern pat.
func Render(name Name, pat Pattern, prefix Prefix) string {
	return prefix.Lead(pat) + RenderValue(name, pat)
}

// RenderValue writes words in pat's style without any prefix. Words do not
// have to be valid names: any value parsed with ParseName can be rendered.
func RenderValue(words []string, pat Pattern) string {
	switch pat.Style {
	case StylePascal:
		var b strings.Builder
		for _, w := range words {
			b.WriteString(capitalize(w))
		}
		return b.String()
	case StyleFlat:
		return applyCase(strings.Join(words, ""), pat.Upper)
	default:
		return applyCase(strings.Join(words, string(pat.Style.Separator())), pat.Upper)
	}
}

func applyCase(s string, upper bool) string {
	if upper {
		return strings.ToUpper(s)
	}
	return s
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// isWord reports whether w is a letter followed by letters or digits, all in
// the requested case.
func isWord(w string, upper bool) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		c := w[i]
		switch {
		case upper && isUpper(c), !upper && isLower(c):
		case i > 0 && isDigit(c):
		default:
			return false
		}
	}
	return true
}

func isUpper(c byte) bool  { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool  { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return isUpper(c) || isLower(c) }

// IsWordByte reports whether c can appear inside a placeholder word in the
// given case.
func IsWordByte(c byte, upper bool) bool {
	if isDigit(c) {
		return true
	}
	if upper {
		return isUpper(c)
	}
	return isLower(c)
}
