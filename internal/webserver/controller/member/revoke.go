package member

import (
	"fmt"
	"strconv"

	"github.com/declara/declara/internal/webserver/jwtclaimsreader"
	"github.com/gofiber/fiber/v2"
)

// Revoke removes an access right from a declaration. Any member of the
// declaration may revoke any other member, whatever their role; the record
// is deleted rather than marked rejected.
func (m *Controller) Revoke(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	id, err := strconv.Atoi(c.FormValue("id"))
	if err != nil {
		return fiber.ErrBadRequest
	}

	accessRight, err := m.accessRightsRepository.FindByID(uint(id))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if accessRight == nil {
		return fiber.ErrNotFound
	}

	membership, err := m.accessRightsRepository.FindByDeclarationAndUser(accessRight.DeclarationID, session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if membership == nil {
		return fiber.ErrUnauthorized
	}

	if err := m.accessRightsRepository.Delete(accessRight.ID); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(fmt.Sprintf("/declarations/%s/members", accessRight.Declaration.Slug))
}
