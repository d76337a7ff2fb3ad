package fa2tex_test

import (
	"fmt"
	"strings"

	fa2tex "github.com/alnah/go-fa2tex"
)

// ExampleMacroName shows how icon identifiers become TeX control words.
func ExampleMacroName() {
	fmt.Println(fa2tex.MacroName("thumbs-up", fa2tex.StyleSolid))
	fmt.Println(fa2tex.MacroName("500px", fa2tex.StyleBrands))
	fmt.Println(fa2tex.DefaultMacroName("thumbs-up"))
	// Output:
	// fasThumbsUp
	// fabFiveZeroZeroPx
	// faThumbsUp
}

// ExampleParseBinding shows case-insensitive binding names.
func ExampleParseBinding() {
	for _, name := range []string{"XeLaTeX", "lualatex", "context"} {
		b, err := fa2tex.ParseBinding(name)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(b, b.Supported())
	}
	// Output:
	// xelatex true
	// lualatex false
	// error: unknown binding: "context"
}

// ExampleRenderer_Render renders the xelatex documents of a one-icon catalog
// with the embedded templates.
func ExampleRenderer_Render() {
	catalog, err := fa2tex.ParseCatalog([]byte(`thumbs-up:
  label: Thumbs Up
  unicode: f164
  styles: [solid, regular]
  free: [solid, regular]
`), "icons.yml", nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r := &fa2tex.Renderer{}
	docs, err := r.Render(fa2tex.RenderContext{
		Catalog:      catalog,
		Distribution: fa2tex.DistributionFree,
		Binding:      fa2tex.BindingXelatex,
		Fonts: map[fa2tex.Style]fa2tex.FontAsset{
			fa2tex.StyleRegular: {Style: fa2tex.StyleRegular, Name: "fa-regular.otf", Family: "Font Awesome 5 Free"},
			fa2tex.StyleSolid:   {Style: fa2tex.StyleSolid, Name: "fa-solid.otf", Family: "Font Awesome 5 Free"},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, doc := range docs {
		fmt.Println(doc.Name, strings.Contains(string(doc.Content), `\fasThumbsUp`))
	}
	// Output:
	// fontawesome.sty false
	// fontawesome-icons.tex true
}
