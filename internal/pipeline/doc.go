// Package pipeline converts the Markdown icon catalog into a standalone
// HTML page:
//   - Markdown normalization (line endings, blank lines)
//   - Markdown to HTML conversion via Goldmark with GFM tables
//   - syntax highlighting of the TeX usage snippet via chroma
//   - CSS injection into the HTML document
package pipeline
