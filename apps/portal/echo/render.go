package echoportal

import (
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	templatesDir   = "templates"
	layoutTemplate = "layout"
)

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}

type (
	// page is the data every template receives. Data holds the page specific part.
	page struct {
		AppName string
		Staff   string
		Data    interface{}
	}

	// messageData is rendered by the "message" page: a short outcome with follow-up links.
	messageData struct {
		Title   string
		Message string
		Links   []link
	}

	link struct {
		Href  string
		Label string
	}

	templateRenderer struct {
		appName string
		pages   map[string]*template.Template
	}
)

var _ echo.Renderer = (*templateRenderer)(nil)

// newTemplateRenderer parses every page of `fsys` together with the shared layout.
func newTemplateRenderer(fsys fs.FS, appName string) (*templateRenderer, error) {
	files, err := fs.Glob(fsys, path.Join(templatesDir, "*.html"))
	if err != nil {
		return nil, errors.Wrap(err, "listing templates")
	}

	layout := path.Join(templatesDir, layoutTemplate+".html")
	r := &templateRenderer{appName: appName, pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layout {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(fsys, layout, file)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", file)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

func (r *templateRenderer) Render(w io.Writer, name string, data interface{}, ctx echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("template %q not found", name)
	}
	p := page{AppName: r.appName, Data: data}
	if usr, ok := getContextStaff(ctx); ok {
		p.Staff = usr.Username
	}
	return tmpl.ExecuteTemplate(w, layoutTemplate, p)
}

func render(ctx echo.Context, name string, data interface{}) error {
	return ctx.Render(http.StatusOK, name, data)
}

func renderMessage(ctx echo.Context, title, message string, links ...link) error {
	return render(ctx, "message", messageData{Title: title, Message: message, Links: links})
}
