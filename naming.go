package fa2tex

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMacroPrefix prefixes the alias macro bound to an icon's preferred style.
const DefaultMacroPrefix = "fa"

var digitWords = [10]string{
	"Zero", "One", "Two", "Three", "Four",
	"Five", "Six", "Seven", "Eight", "Nine",
}

// MacroName returns the TeX control word for an icon in the given style,
// e.g. ("thumbs-up", StyleSolid) -> "fasThumbsUp". Returns "" if the
// identifier has no letters or digits.
func MacroName(id string, style Style) string {
	base := PascalCase(id)
	if base == "" {
		return ""
	}
	return style.MacroPrefix() + base
}

// DefaultMacroName returns the alias control word for an icon, e.g. "faThumbsUp".
func DefaultMacroName(id string) string {
	base := PascalCase(id)
	if base == "" {
		return ""
	}
	return DefaultMacroPrefix + base
}

// PascalCase turns an icon identifier into letters suitable for a TeX
// control word. Letter runs are title-cased, every digit is spelled out
// ("500px" -> "FiveZeroZeroPx") and any other character separates words,
// so "arrow--up" and "arrow-up" both give "ArrowUp".
func PascalCase(id string) string {
	caser := cases.Title(language.Und)

	var b strings.Builder
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			b.WriteString(caser.String(word.String()))
			word.Reset()
		}
	}

	for _, r := range id {
		switch {
		case isASCIILetter(r):
			word.WriteRune(r)
		case r >= '0' && r <= '9':
			flush()
			b.WriteString(digitWords[r-'0'])
		default:
			flush()
		}
	}
	flush()

	return b.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
