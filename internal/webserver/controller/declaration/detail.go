package declaration

import (
	"github.com/declara/declara/internal/webserver/jwtclaimsreader"
	"github.com/gofiber/fiber/v2"
)

// Detail renders the compliance statement of a declaration
func (d *Controller) Detail(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	declaration, err := d.declarationsRepository.FindBySlug(c.Params("slug"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if declaration == nil {
		return fiber.ErrNotFound
	}

	isMember := false
	if membership, err := d.accessRightsRepository.FindByDeclarationAndUser(declaration.ID, session.ID); err == nil && membership != nil {
		isMember = true
	}

	return c.Render("declaration/detail", fiber.Map{
		"Lang":        c.Locals("Lang"),
		"Title":       declaration.Name,
		"Declaration": declaration,
		"IsMember":    isMember,
		"Session":     session,
	}, "layout")
}
