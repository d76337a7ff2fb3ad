package fa2tex

import (
	"context"
	"fmt"

	"github.com/alnah/go-fa2tex/internal/pipeline"
)

// RenderCatalog produces the icon catalog of rc: a Markdown listing of every
// generated macro and the same listing as a standalone HTML page.
func (r *Renderer) RenderCatalog(ctx context.Context, rc RenderContext) ([]Document, error) {
	loader, err := r.loader()
	if err != nil {
		return nil, err
	}
	tmpl, err := loader.LoadTemplate(DefaultCatalogTemplate)
	if err != nil {
		return nil, err
	}
	css, err := loader.LoadStyle(DefaultCatalogStyle)
	if err != nil {
		return nil, err
	}

	view := buildView(rc, r.logger())
	mdName := view.Package + "-catalog.md"
	md, err := execute(mdName, tmpl, view)
	if err != nil {
		return nil, err
	}

	preprocessor := &pipeline.CommonMarkPreprocessor{}
	content := preprocessor.PreprocessMarkdown(ctx, string(md))

	html, err := pipeline.NewGoldmarkConverter().ToHTML(ctx, view.Title, content)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateRender, mdName, err)
	}

	highlight, err := pipeline.HighlightCSS(pipeline.DefaultHighlightStyle)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	injector := &pipeline.CSSInjection{}
	html = injector.InjectCSS(ctx, html, css+"\n"+highlight)

	r.logger().Debug("rendered catalog", "icons", view.IconCount)
	return []Document{
		{Name: mdName, Content: []byte(content)},
		{Name: view.Package + "-catalog.html", Content: []byte(html)},
	}, nil
}
