package member

import (
	"github.com/declara/declara/internal/webserver/jwtclaimsreader"
	"github.com/gofiber/fiber/v2"
)

// List shows every member and pending invite of a declaration. Only
// current members may see it.
func (m *Controller) List(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	declaration, err := m.findDeclaration(c)
	if err != nil {
		return err
	}

	membership, err := m.accessRightsRepository.FindByDeclarationAndUser(declaration.ID, session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if membership == nil {
		return fiber.ErrUnauthorized
	}

	accessRights, err := m.accessRightsRepository.ListByDeclaration(declaration.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("member/index", fiber.Map{
		"Lang":         c.Locals("Lang"),
		"Title":        "Members",
		"Declaration":  declaration,
		"AccessRights": accessRights,
		"Session":      session,
	}, "layout")
}
