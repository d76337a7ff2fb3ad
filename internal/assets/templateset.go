package assets

// TemplateSet holds the templates of one TeX binding.
type TemplateSet struct {
	Name    string // binding name or directory path
	Package string // style package template
	Icons   string // icon macro definitions template
}

// Template file names inside a template set directory.
const (
	PackageTemplateFile = "package.sty.tmpl"
	IconsTemplateFile   = "icons.tex.tmpl"
)

// DefaultCatalogTemplate is the name of the built-in catalog document template.
const DefaultCatalogTemplate = "catalog"

// DefaultStyleName is the name of the built-in catalog stylesheet.
const DefaultStyleName = "catalog"

// Template delimiters. TeX sources are full of braces, so the Go default
// delimiters cannot be used.
const (
	LeftDelim  = "<<"
	RightDelim = ">>"
)
