package fa2tex

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize/english"
)

// Render defaults.
const (
	DefaultPackageName = "fontawesome"
	DefaultFontDir     = "fonts"
)

// Renderer turns a RenderContext into the documents of its binding.
// The zero value renders with the embedded templates and no logging.
type Renderer struct {
	Assets AssetLoader
	Logger *slog.Logger
}

// Render produces the documents of rc.Binding. Only xelatex has templates;
// the other bindings fail with an UnsupportedBindingError. Identical inputs
// give byte-identical documents.
func (r *Renderer) Render(rc RenderContext) ([]Document, error) {
	switch rc.Binding {
	case BindingXelatex:
		return r.renderXelatex(rc)
	case BindingLualatex, BindingPDFLatex:
		return nil, &UnsupportedBindingError{Binding: rc.Binding}
	default:
		return nil, &UnsupportedBindingError{Binding: rc.Binding}
	}
}

func (r *Renderer) renderXelatex(rc RenderContext) ([]Document, error) {
	loader, err := r.loader()
	if err != nil {
		return nil, err
	}
	ts, err := loader.LoadTemplateSet(rc.Binding.String())
	if err != nil {
		return nil, err
	}

	view := buildView(rc, r.logger())

	pkg, err := execute(view.PackageFile, ts.Package, view)
	if err != nil {
		return nil, err
	}
	icons, err := execute(view.IconsFile, ts.Icons, view)
	if err != nil {
		return nil, err
	}

	r.logger().Debug("rendered binding", "binding", rc.Binding, "icons", view.IconCount, "macros", view.MacroCount)
	return []Document{
		{Name: view.PackageFile, Content: pkg},
		{Name: view.IconsFile, Content: icons},
	}, nil
}

func (r *Renderer) loader() (AssetLoader, error) {
	if r.Assets != nil {
		return r.Assets, nil
	}
	return NewAssetLoader("")
}

func (r *Renderer) logger() *slog.Logger {
	return orDiscard(r.Logger)
}

// AllowedStyles returns the styles an icon gets macros for. A Pro
// distribution allows every style the icon has; a Free one only the
// icon's free styles, never a Pro-only style.
func AllowedStyles(e IconEntry, d Distribution) StyleSet {
	if d == DistributionPro {
		return e.Styles
	}
	var set StyleSet
	for _, s := range e.Styles.Intersect(e.Free).Styles() {
		if !s.ProOnly() {
			set = set.With(s)
		}
	}
	return set
}

// texView is the data handed to every template. Custom templates may use
// any exported field.
type texView struct {
	Title        string // "Font Awesome 5.15.4 Free"
	Package      string
	PackageFile  string // "<package>.sty"
	IconsFile    string // "<package>-icons.tex"
	Version      string
	Distribution string
	Binding      string
	FontDir      string // relative to the output directory, with a trailing slash
	Fonts        []texFont
	StyleList    string // comma separated styles with a font
	Icons        []texIcon
	IconCount    int // icons with at least one macro
	MacroCount   int // style macros, aliases excluded
	Example      *texExample
}

type texFont struct {
	Style  string
	Prefix string
	File   string
	Family string
}

type texIcon struct {
	ID     string
	Label  string
	Code   string // upper-case hex code point
	Macros []texMacro
	Alias  *texAlias
}

type texMacro struct {
	Name  string
	Style string
	Code  string
}

type texAlias struct {
	Name   string
	Target string
}

type texExample struct {
	Macro string
	Style string
	Code  string
}

// buildView resolves every icon to its macros. Macro names that collide
// with an earlier icon's are skipped with a warning.
func buildView(rc RenderContext, logger *slog.Logger) *texView {
	opts := rc.Options
	if opts.PackageName == "" {
		opts.PackageName = DefaultPackageName
	}
	if opts.FontDir == "" {
		opts.FontDir = DefaultFontDir
	}

	view := &texView{
		Title:        title(opts.Version, rc.Distribution),
		Package:      opts.PackageName,
		PackageFile:  opts.PackageName + ".sty",
		IconsFile:    opts.PackageName + "-icons.tex",
		Version:      opts.Version,
		Distribution: rc.Distribution.String(),
		Binding:      rc.Binding.String(),
		FontDir:      strings.TrimRight(opts.FontDir, "/") + "/",
	}

	var styleNames []string
	for _, s := range AllStyles() {
		font, ok := rc.Fonts[s]
		if !ok {
			continue
		}
		view.Fonts = append(view.Fonts, texFont{
			Style:  s.String(),
			Prefix: s.MacroPrefix(),
			File:   font.Name,
			Family: font.Family,
		})
		styleNames = append(styleNames, s.String())
	}
	view.StyleList = strings.Join(styleNames, ", ")

	owners := make(map[string]string) // macro name -> icon ID
	missingFont := make(map[Style]int)
	proOnly := make(map[Style]int)

	for _, e := range rc.Catalog.Entries() {
		allowed := AllowedStyles(e, rc.Distribution)
		for _, s := range e.Styles.Styles() {
			if !allowed.Has(s) && s.ProOnly() {
				proOnly[s]++
			}
		}

		code := fmt.Sprintf("%04X", e.Unicode)
		icon := texIcon{ID: e.ID, Label: e.Label, Code: code}

		for _, s := range allowed.Styles() {
			if _, ok := rc.Fonts[s]; !ok {
				missingFont[s]++
			}
			name := MacroName(e.ID, s)
			if name == "" {
				logger.Warn("icon identifier gives no macro name, skipping", "icon", e.ID)
				break
			}
			if owner, taken := owners[name]; taken {
				logger.Warn("macro name already used, skipping", "macro", name, "icon", e.ID, "owner", owner)
				continue
			}
			owners[name] = e.ID
			icon.Macros = append(icon.Macros, texMacro{Name: name, Style: s.String(), Code: code})
		}

		if len(icon.Macros) == 0 {
			continue
		}

		if alias := DefaultMacroName(e.ID); alias != "" {
			if owner, taken := owners[alias]; taken {
				logger.Warn("alias already used, skipping", "macro", alias, "icon", e.ID, "owner", owner)
			} else {
				owners[alias] = e.ID
				icon.Alias = &texAlias{Name: alias, Target: icon.Macros[0].Name}
			}
		}

		if view.Example == nil {
			first := icon.Macros[0]
			view.Example = &texExample{Macro: first.Name, Style: first.Style, Code: first.Code}
		}
		view.MacroCount += len(icon.Macros)
		view.Icons = append(view.Icons, icon)
	}
	view.IconCount = len(view.Icons)

	for _, s := range sortedStyles(missingFont) {
		logger.Warn("no font for style, its macros will not typeset", "style", s, "icons", missingFont[s])
	}
	for _, s := range sortedStyles(proOnly) {
		logger.Debug("skipping pro-only style in free distribution", "style", s, "icons", proOnly[s])
	}

	return view
}

func sortedStyles(counts map[Style]int) []Style {
	out := make([]Style, 0, len(counts))
	for s := range counts {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func title(version string, d Distribution) string {
	tier := "Free"
	if d == DistributionPro {
		tier = "Pro"
	}
	if version == "" {
		return "Font Awesome " + tier
	}
	return "Font Awesome " + version + " " + tier
}

// templateFuncs are available to every template.
var templateFuncs = template.FuncMap{
	// comment flattens text for a single TeX comment line.
	"comment": func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	},
	// count pairs a number with the singular or plural noun.
	"count": func(n int, noun string) string {
		return english.Plural(n, noun, "")
	},
	// cell makes text safe inside a Markdown table cell.
	"cell": func(s string) string {
		return strings.ReplaceAll(strings.Join(strings.Fields(s), " "), "|", `\|`)
	},
}

func execute(name, src string, data any) ([]byte, error) {
	tmpl, err := template.New(name).
		Delims(templateLeftDelim, templateRightDelim).
		Funcs(templateFuncs).
		Option("missingkey=error").
		Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateRender, name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateRender, name, err)
	}
	return buf.Bytes(), nil
}
