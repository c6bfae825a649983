package casing

import (
	"fmt"
	"strings"
)

// DefaultPrefix is the prefix that marks placeholders unless configured
// otherwise.
const DefaultPrefix = "scf"

// Style is the way words are joined inside a placeholder.
type Style int

const (
	StylePascal Style = iota
	StyleKebab
	StyleDot
	StyleSnake
	StyleFlat
)

// Separator returns the byte placed between words, or 0 for styles that
// join words directly.
func (s Style) Separator() byte {
	switch s {
	case StyleKebab:
		return '-'
	case StyleDot:
		return '.'
	case StyleSnake:
		return '_'
	default:
		return 0
	}
}

func (s Style) String() string {
	switch s {
	case StylePascal:
		return "pascal"
	case StyleKebab:
		return "kebab"
	case StyleDot:
		return "dot"
	case StyleSnake:
		return "snake"
	case StyleFlat:
		return "flat"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// Pattern is a Style plus the case of the prefix. Upper patterns use the
// uppercase prefix and uppercase words; Pascal always uses the title-case
// prefix and is never Upper.
type Pattern struct {
	Style Style
	Upper bool
}

// Patterns lists every supported pattern in matching priority order.
var Patterns = []Pattern{
	{Style: StyleSnake},
	{Style: StyleSnake, Upper: true},
	{Style: StyleKebab},
	{Style: StyleKebab, Upper: true},
	{Style: StyleDot},
	{Style: StyleDot, Upper: true},
	{Style: StylePascal},
	{Style: StyleFlat},
	{Style: StyleFlat, Upper: true},
}

// Valid reports whether p is one of Patterns.
func (p Pattern) Valid() bool {
	if p.Style == StylePascal {
		return !p.Upper
	}
	return p.Style >= StyleKebab && p.Style <= StyleFlat
}

func (p Pattern) String() string {
	if p.Upper {
		return strings.ToUpper(p.Style.String())
	}
	return p.Style.String()
}

// Prefix is the reserved token that marks placeholders, kept in the three
// cases patterns use.
type Prefix struct {
	lower string
	title string
	upper string
}

// NewPrefix validates a prefix. It must be made of at least two ASCII
// letters; case is ignored. A single letter would make the title and
// uppercase forms identical, and ScfAB could not be told apart from SCFAB.
func NewPrefix(prefix string) (Prefix, error) {
	if prefix == "" {
		return Prefix{}, fmt.Errorf("prefix cannot be empty")
	}
	if len(prefix) < 2 {
		return Prefix{}, fmt.Errorf("prefix %q must have at least two letters", prefix)
	}
	for i := 0; i < len(prefix); i++ {
		if !isLetter(prefix[i]) {
			return Prefix{}, fmt.Errorf("prefix %q must contain only ASCII letters", prefix)
		}
	}
	lower := strings.ToLower(prefix)
	return Prefix{
		lower: lower,
		title: strings.ToUpper(lower[:1]) + lower[1:],
		upper: strings.ToUpper(lower),
	}, nil
}

// MustPrefix is NewPrefix for constants; it panics on an invalid prefix.
func MustPrefix(prefix string) Prefix {
	p, err := NewPrefix(prefix)
	if err != nil {
		panic(err)
	}
	return p
}

// Default returns the prefix for DefaultPrefix.
func Default() Prefix {
	return MustPrefix(DefaultPrefix)
}

// IsZero reports whether the prefix was never set.
func (p Prefix) IsZero() bool {
	return p.lower == ""
}

func (p Prefix) String() string {
	return p.lower
}

// Lead returns what a placeholder in pattern pat starts with: the prefix in
// the pattern's case followed by the separator, if the style has one.
func (p Prefix) Lead(pat Pattern) string {
	var form string
	switch {
	case pat.Style == StylePascal:
		form = p.title
	case pat.Upper:
		form = p.upper
	default:
		form = p.lower
	}
	if sep := pat.Style.Separator(); sep != 0 {
		return form + string(sep)
	}
	return form
}

// isWordToken reports whether w equals the prefix, ignoring case. Such words
// never belong to a name.
func (p Prefix) isWordToken(w string) bool {
	return strings.EqualFold(w, p.lower)
}
