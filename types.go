package fa2tex

import (
	"fmt"
	"strings"
)

// Style is a font variant of a glyph.
type Style uint8

// Known styles, in preference order for default aliases.
const (
	StyleRegular Style = iota
	StyleSolid
	StyleLight
	StyleBrands
	numStyles
)

var styleNames = [numStyles]string{"regular", "solid", "light", "brands"}

// styleMacroPrefixes are part of the generated macro names: documents depend
// on them, so they must never change.
var styleMacroPrefixes = [numStyles]string{"far", "fas", "fal", "fab"}

// AllStyles returns the known styles in preference order.
func AllStyles() []Style {
	return []Style{StyleRegular, StyleSolid, StyleLight, StyleBrands}
}

// ParseStyle maps a descriptor style label to a Style.
// Labels are case-insensitive; "brand" is accepted for "brands".
func ParseStyle(label string) (Style, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "regular":
		return StyleRegular, true
	case "solid":
		return StyleSolid, true
	case "light":
		return StyleLight, true
	case "brands", "brand":
		return StyleBrands, true
	}
	return 0, false
}

// String returns the descriptor label of the style.
func (s Style) String() string {
	if s < numStyles {
		return styleNames[s]
	}
	return fmt.Sprintf("style(%d)", uint8(s))
}

// MacroPrefix returns the TeX macro prefix of the style (e.g. "fas").
func (s Style) MacroPrefix() string {
	if s < numStyles {
		return styleMacroPrefixes[s]
	}
	return ""
}

// ProOnly reports whether the style ships only with the Pro distribution.
func (s Style) ProOnly() bool {
	return s == StyleLight
}

// StyleSet is a set of styles.
type StyleSet uint8

// NewStyleSet builds a set from the given styles.
func NewStyleSet(styles ...Style) StyleSet {
	var set StyleSet
	for _, s := range styles {
		set = set.With(s)
	}
	return set
}

// With returns the set with s added.
func (set StyleSet) With(s Style) StyleSet {
	if s >= numStyles {
		return set
	}
	return set | 1<<s
}

// Has reports whether s is in the set.
func (set StyleSet) Has(s Style) bool {
	return s < numStyles && set&(1<<s) != 0
}

// Intersect returns the styles present in both sets.
func (set StyleSet) Intersect(other StyleSet) StyleSet {
	return set & other
}

// Union returns the styles present in either set.
func (set StyleSet) Union(other StyleSet) StyleSet {
	return set | other
}

// Empty reports whether the set has no styles.
func (set StyleSet) Empty() bool {
	return set == 0
}

// Styles returns the members in preference order.
func (set StyleSet) Styles() []Style {
	var out []Style
	for _, s := range AllStyles() {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// String returns the members as a comma separated list.
func (set StyleSet) String() string {
	styles := set.Styles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.String()
	}
	return strings.Join(names, ",")
}

// IconEntry is one glyph of the font distribution.
type IconEntry struct {
	ID         string   // stable identifier, e.g. "thumbs-up"
	Label      string   // human readable label
	Unicode    rune     // code point of the glyph in every style font
	Styles     StyleSet // styles in which the glyph exists
	Free       StyleSet // subset of Styles available in the Free tier
	Categories []string // informational only
}

// IsPro reports whether the icon requires the Pro distribution.
func (e IconEntry) IsPro() bool {
	return e.Free.Empty()
}

// IconCatalog is the ordered set of icons of one distribution.
// Keys are unique and entries keep the descriptor's order.
type IconCatalog struct {
	entries []IconEntry
	index   map[string]int
}

// NewIconCatalog builds a catalog, rejecting empty or duplicate identifiers.
func NewIconCatalog(entries []IconEntry) (*IconCatalog, error) {
	c := &IconCatalog{
		entries: make([]IconEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: empty icon identifier", ErrInvalidCatalog)
		}
		if _, dup := c.index[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate icon identifier %q", ErrInvalidCatalog, e.ID)
		}
		c.index[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Len returns the number of icons.
func (c *IconCatalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of the icons in descriptor order.
func (c *IconCatalog) Entries() []IconEntry {
	if c == nil {
		return nil
	}
	out := make([]IconEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the icon with the given identifier.
func (c *IconCatalog) Lookup(id string) (IconEntry, bool) {
	if c == nil {
		return IconEntry{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return IconEntry{}, false
	}
	return c.entries[i], true
}

// Distribution is the tier of an extracted font distribution.
type Distribution uint8

// Distribution tiers.
const (
	DistributionFree Distribution = iota
	DistributionPro
)

// String returns "free" or "pro".
func (d Distribution) String() string {
	if d == DistributionPro {
		return "pro"
	}
	return "free"
}

// Binding is a TeX engine the generated macros target.
type Binding uint8

// Known bindings. Only BindingXelatex has templates.
const (
	BindingXelatex Binding = iota
	BindingLualatex
	BindingPDFLatex
)

// ParseBinding maps a case-insensitive binding name to a Binding.
func ParseBinding(name string) (Binding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "xelatex":
		return BindingXelatex, nil
	case "lualatex":
		return BindingLualatex, nil
	case "pdflatex":
		return BindingPDFLatex, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBinding, name)
}

// String returns the binding name.
func (b Binding) String() string {
	switch b {
	case BindingXelatex:
		return "xelatex"
	case BindingLualatex:
		return "lualatex"
	case BindingPDFLatex:
		return "pdflatex"
	}
	return fmt.Sprintf("binding(%d)", uint8(b))
}

// Supported reports whether the binding has a complete template set.
func (b Binding) Supported() bool {
	return b == BindingXelatex
}

// FontAsset is a font file providing one style.
type FontAsset struct {
	Style  Style
	Path   string // location in the extracted tree
	Name   string // file name used in the output tree
	Family string // family name from the font's name table
}

// RenderOptions tune the generated TeX sources.
type RenderOptions struct {
	PackageName string // TeX package name, also the output file stem
	FontDir     string // font directory relative to the output directory
	Version     string // release version recorded in the file headers
}

// RenderContext is everything a binding needs to render its documents.
type RenderContext struct {
	Catalog      *IconCatalog
	Distribution Distribution
	Binding      Binding
	Fonts        map[Style]FontAsset
	Options      RenderOptions
}

// Document is one rendered output file.
type Document struct {
	Name    string
	Content []byte
}
