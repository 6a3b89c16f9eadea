package webserver

import (
	"embed"
	"io/fs"
	"log"

	"github.com/declara/declara/internal/webserver/infrastructure"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/message"
)

//go:embed embedded
var embedded embed.FS

type Sender interface {
	From() string
	Send(address, subject, body string) error
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, printers map[string]*message.Printer, controllers Controllers) *fiber.App {
	viewsFS, err := fs.Sub(embedded, "embedded/views")
	if err != nil {
		log.Fatal(err)
	}

	engine, err := infrastructure.TemplateEngine(viewsFS, printers)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.Version,
		Views:        engine,
		ErrorHandler: controllers.ErrorHandler,
	})

	routes(app, controllers)

	return app
}

// Translations exposes the embedded translation dictionaries so callers can
// build the message printers the views and controllers share.
func Translations() fs.FS {
	dir, err := fs.Sub(embedded, "embedded/translations")
	if err != nil {
		log.Fatal(err)
	}
	return dir
}
