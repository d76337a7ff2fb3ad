package fa2tex

// Notes:
// - RenderCatalog: Markdown listing and HTML page with embedded CSS
// - RenderCatalog: custom catalog template through the asset loader
// - RenderCatalog: canceled context

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func catalogContext(t *testing.T) RenderContext {
	t.Helper()

	return RenderContext{
		Catalog:      fixtureCatalog(t),
		Distribution: DistributionFree,
		Binding:      BindingXelatex,
		Fonts:        fixtureFonts(StyleRegular, StyleSolid, StyleBrands),
		Options:      RenderOptions{Version: "5.15.4"},
	}
}

func TestRenderCatalog(t *testing.T) {
	t.Parallel()

	docs, err := (&Renderer{}).RenderCatalog(context.Background(), catalogContext(t))
	if err != nil {
		t.Fatalf("RenderCatalog() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if docs[0].Name != "fontawesome-catalog.md" || docs[1].Name != "fontawesome-catalog.html" {
		t.Fatalf("names = %q, %q", docs[0].Name, docs[1].Name)
	}

	md := string(docs[0].Content)
	for _, want := range []string{
		"# Font Awesome 5.15.4 Free",
		"defines 4 macros for 3 icons",
		"| `thumbs-up` | Thumbs Up | `U+F164` | `\\farThumbsUp`, `\\fasThumbsUp`, `\\faThumbsUp` |",
		"| brands | `fab` | `fonts/fa-brands.otf` | Font Awesome 5 Free |",
		"Macro: \\farThumbsUp{} or code point: \\faicon[regular]{F164}",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown does not contain %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "abacus") {
		t.Error("icon without macros listed in the catalog")
	}

	html := string(docs[1].Content)
	for _, want := range []string{
		"<title>Font Awesome 5.15.4 Free</title>",
		"<table>",
		"<style>",
		"<code>\\fabGithub</code>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html does not contain %q", want)
		}
	}
}

func TestRenderCatalog_CustomTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	templates := filepath.Join(dir, "templates")
	if err := os.MkdirAll(templates, 0o750); err != nil {
		t.Fatal(err)
	}
	src := "# <<.Package>>\r\n\r\n\r\n\r\n<<range .Icons>>- <<.ID>>\r\n<<end>>"
	if err := os.WriteFile(filepath.Join(templates, "catalog.md.tmpl"), []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	loader, err := NewAssetLoader(dir)
	if err != nil {
		t.Fatal(err)
	}
	docs, err := (&Renderer{Assets: loader}).RenderCatalog(context.Background(), catalogContext(t))
	if err != nil {
		t.Fatalf("RenderCatalog() error = %v", err)
	}

	want := "# fontawesome\n\n- thumbs-up\n- github\n- 500px\n"
	if got := string(docs[0].Content); got != want {
		t.Errorf("markdown = %q, want %q", got, want)
	}
}

func TestRenderCatalog_Errors(t *testing.T) {
	t.Parallel()

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := (&Renderer{}).RenderCatalog(ctx, catalogContext(t))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})

	t.Run("broken template", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		templates := filepath.Join(dir, "templates")
		if err := os.MkdirAll(templates, 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(templates, "catalog.md.tmpl"), []byte("<<.Missing>>"), 0o600); err != nil {
			t.Fatal(err)
		}
		loader, err := NewAssetLoader(dir)
		if err != nil {
			t.Fatal(err)
		}

		_, err = (&Renderer{Assets: loader}).RenderCatalog(context.Background(), catalogContext(t))
		if !errors.Is(err, ErrTemplateRender) {
			t.Errorf("error = %v, want ErrTemplateRender", err)
		}
	})
}
