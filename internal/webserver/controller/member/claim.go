package member

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/declara/declara/internal/webserver/jwtclaimsreader"
	"github.com/declara/declara/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
)

// ClaimForm shows the confirmation page for a claim link opened from an
// invite email
func (m *Controller) ClaimForm(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return fiber.ErrBadRequest
	}

	accessRight, err := m.accessRightsRepository.FindPendingByTokenHash(model.InviteTokenDigest(token))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if accessRight == nil {
		return fiber.ErrNotFound
	}

	return c.Render("member/accept-invite", fiber.Map{
		"Lang":        c.Locals("Lang"),
		"Title":       "Accept invitation",
		"Token":       token,
		"Email":       c.Query("email"),
		"Declaration": accessRight.Declaration,
		"Errors":      map[string]string{},
	}, "layout")
}

// Claim redeems a single-use invite token, binding the pending access
// right to the authenticated actor and promoting it to approved.
func (m *Controller) Claim(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	token := c.FormValue("token")
	if token == "" {
		return fiber.ErrBadRequest
	}

	// Wrong, already claimed and deleted tokens are indistinguishable here.
	accessRight, err := m.accessRightsRepository.FindPendingByTokenHash(model.InviteTokenDigest(token))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if accessRight == nil {
		return fiber.ErrNotFound
	}

	// A leaked link must not be redeemable by the wrong account: the invite
	// is bound either to a user id or to the invited address.
	if accessRight.UserID != nil {
		if *accessRight.UserID != session.ID {
			return fiber.ErrUnauthorized
		}
	} else if accessRight.TmpUserEmail == nil || !strings.EqualFold(*accessRight.TmpUserEmail, session.Email) {
		return fiber.ErrUnauthorized
	}

	if accessRight.InviteExpired(time.Now().UTC()) {
		return fiber.NewError(fiber.StatusBadRequest, "This invitation has expired")
	}

	// Conditional update so that two concurrent claims of the same token
	// succeed exactly once.
	claimed, err := m.accessRightsRepository.Claim(accessRight.ID, session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if !claimed {
		return fiber.ErrNotFound
	}

	m.notifyInviter(c, accessRight, session)

	return c.Redirect(fmt.Sprintf("/declarations/%s/members", accessRight.Declaration.Slug))
}

func (m *Controller) notifyInviter(c *fiber.Ctx, accessRight *model.AccessRight, claimer model.User) {
	inviter, err := m.usersRepository.FindByID(accessRight.InvitedByID)
	if err != nil || inviter == nil {
		log.Printf("error resolving inviter for access right %d: %v\n", accessRight.ID, err)
		return
	}

	c.Render("member/accepted-email", fiber.Map{
		"Lang":        c.Locals("Lang"),
		"ClaimerName": claimer.Name,
		"EntityName":  accessRight.Declaration.EntityName,
		"Declaration": accessRight.Declaration,
	})

	if err := m.sender.Send(
		inviter.Email,
		fmt.Sprintf("Your invitation to the accessibility declaration of %s has been accepted", accessRight.Declaration.EntityName),
		string(c.Response().Body()),
	); err != nil {
		log.Printf("error sending acceptance email: %v\n", err)
	}
}
