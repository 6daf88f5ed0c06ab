package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const layoutTemplate = "layout"

var pages = []string{
	"home.html",
	"post_detail.html",
	"not_found.html",
	"category_list.html",
	"category.html",
	"about.html",
	"contact.html",
}

// TemplateRegistry holds one template set per page, each sharing the layout and partials.
// It implements gin's render.HTMLRender.
type TemplateRegistry struct {
	templates map[string]*template.Template
}

func NewTemplateRegistry() (*TemplateRegistry, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).
			Funcs(templateFuncs()).
			ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &TemplateRegistry{templates: templates}, nil
}

func (r *TemplateRegistry) Instance(name string, data any) render.Render {
	tmpl, ok := r.templates[name]
	if !ok {
		return missingTemplate{name: name}
	}

	return render.HTML{
		Template: tmpl,
		Name:     layoutTemplate,
		Data:     data,
	}
}

type missingTemplate struct {
	name string
}

func (m missingTemplate) Render(w http.ResponseWriter) error {
	return fmt.Errorf("template not found: %s", m.name)
}

func (m missingTemplate) WriteContentType(w http.ResponseWriter) {}

// StaticFiles exposes the embedded assets rooted at the static directory
func StaticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
