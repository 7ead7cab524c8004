package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"toJSON": toJSON,
}).ParseFS(templatesFS, "templates/dashboard.html"))

// PageData - данные HTML-оболочки дашборда
type PageData struct {
	Title     string
	APIBase   string
	PanelMode string
	// Initial - первый снимок, чтобы страница не ждала сокета
	Initial any
}

// Page пишет HTML-оболочку. Карта создается в браузере после загрузки DOM.
func Page(w io.Writer, data PageData) error {
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render: could not execute dashboard template: %w", err)
	}
	return nil
}

func toJSON(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}
