package infrastructure

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/message"
)

func TemplateEngine(viewsFS fs.FS, printers map[string]*message.Printer) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")
	sanitizer := bluemonday.UGCPolicy()

	engine.AddFunc("t", func(lang, key string, values ...any) template.HTML {
		return template.HTML(printers[lang].Sprintf(key, values...))
	})

	engine.AddFunc("dict", func(values ...any) map[string]any {
		if len(values)%2 != 0 {
			fmt.Println("invalid dict call")
			return nil
		}
		dict := make(map[string]any, len(values)/2)
		for i := 0; i < len(values); i += 2 {
			key, ok := values[i].(string)
			if !ok {
				fmt.Println("dict keys must be strings")
				return nil
			}
			dict[key] = values[i+1]
		}
		return dict
	})

	// Declaration remarks come from entity-supplied HTML; strip anything unsafe.
	engine.AddFunc("sanitize", func(text string) template.HTML {
		return template.HTML(sanitizer.Sanitize(text))
	})

	return engine, nil
}
