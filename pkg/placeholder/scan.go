package placeholder

import (
	"iter"
	"strings"

	"github.com/arthur-debert/scaffer/pkg/casing"
)

// Occurrence is one placeholder found in a text buffer. Start and End are
// byte offsets, End exclusive.
type Occurrence struct {
	Start   int
	End     int
	Name    casing.Name
	Pattern casing.Pattern
}

// Len returns the number of bytes the occurrence spans.
func (o Occurrence) Len() int {
	return o.End - o.Start
}

// Scan yields every placeholder in text from left to right, with the name
// exactly as written. Occurrences never overlap.
//
// At each position the patterns are tried in casing.Patterns order and the
// longest match wins. Separator styles take as many words as they can and
// stop before a word equal to the prefix, before a word in the other case,
// or before a separator that is not followed by a word.
func Scan(text string, prefix casing.Prefix) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		for i := 0; i < len(text); {
			occ, ok := matchAt(text, i, prefix)
			if !ok {
				i++
				continue
			}
			if !yield(occ) {
				return
			}
			i = occ.End
		}
	}
}

// Contains reports whether text has at least one placeholder.
func Contains(text string, prefix casing.Prefix) bool {
	for range Scan(text, prefix) {
		return true
	}
	return false
}

func matchAt(text string, i int, prefix casing.Prefix) (Occurrence, bool) {
	if i > 0 && isAlnum(text[i-1]) {
		return Occurrence{}, false
	}
	if !strings.EqualFold(text[i:i+1], prefix.String()[:1]) {
		return Occurrence{}, false
	}

	var best Occurrence
	found := false
	for _, pat := range casing.Patterns {
		lead := prefix.Lead(pat)
		if !strings.HasPrefix(text[i:], lead) {
			continue
		}
		name, end, ok := matchName(text, i+len(lead), pat, prefix)
		if !ok {
			continue
		}
		if !found || end > best.End {
			best = Occurrence{Start: i, End: end, Name: name, Pattern: pat}
			found = true
		}
	}
	return best, found
}

// matchName reads the words of a placeholder starting at pos, right after the
// prefix. It returns the name and the end offset of the placeholder.
func matchName(text string, pos int, pat casing.Pattern, prefix casing.Prefix) (casing.Name, int, bool) {
	switch pat.Style {
	case casing.StylePascal:
		return matchPascal(text, pos, prefix)
	case casing.StyleFlat:
		end := wordEnd(text, pos, pat.Upper)
		if end == pos || !atBoundary(text, end) {
			return nil, 0, false
		}
		w := strings.ToLower(text[pos:end])
		if w == prefix.String() {
			return nil, 0, false
		}
		return casing.Name{w}, end, true
	default:
		return matchSeparated(text, pos, pat, prefix)
	}
}

func matchSeparated(text string, pos int, pat casing.Pattern, prefix casing.Prefix) (casing.Name, int, bool) {
	sep := pat.Style.Separator()
	var name casing.Name
	end := pos
	for {
		start := end
		if len(name) > 0 {
			if end >= len(text) || text[end] != sep {
				break
			}
			start = end + 1
		}
		wend := wordEnd(text, start, pat.Upper)
		if wend == start || !atBoundary(text, wend) {
			break
		}
		w := strings.ToLower(text[start:wend])
		if w == prefix.String() {
			break
		}
		name = append(name, w)
		end = wend
	}
	if len(name) == 0 {
		return nil, 0, false
	}
	return name, end, true
}

func matchPascal(text string, pos int, prefix casing.Prefix) (casing.Name, int, bool) {
	var name casing.Name
	end := pos
	for end < len(text) && isUpper(text[end]) {
		wend := end + 1
		for wend < len(text) && (isLower(text[wend]) || isDigit(text[wend])) {
			wend++
		}
		w := strings.ToLower(text[end:wend])
		if w == prefix.String() {
			return nil, 0, false
		}
		name = append(name, w)
		end = wend
	}
	if len(name) == 0 || !atBoundary(text, end) {
		return nil, 0, false
	}
	return name, end, true
}

// wordEnd returns the end of the word starting at pos: a letter in the
// requested case followed by letters of that case or digits. It returns pos
// when no word starts there.
func wordEnd(text string, pos int, upper bool) int {
	if pos >= len(text) || isDigit(text[pos]) || !casing.IsWordByte(text[pos], upper) {
		return pos
	}
	end := pos + 1
	for end < len(text) && casing.IsWordByte(text[end], upper) {
		end++
	}
	return end
}

func atBoundary(text string, pos int) bool {
	return pos >= len(text) || !isAlnum(text[pos])
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlnum(c byte) bool { return isUpper(c) || isLower(c) || isDigit(c) }
