package declaration

import (
	"github.com/declara/declara/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
)

// New shows the form to create a new declaration
func (d *Controller) New(c *fiber.Ctx) error {
	return c.Render("declaration/new", fiber.Map{
		"Lang":        c.Locals("Lang"),
		"Title":       "New declaration",
		"Declaration": model.Declaration{},
		"Errors":      map[string]string{},
	}, "layout")
}
