package member

import (
	"fmt"
	"log"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/declara/declara/internal/webserver/jwtclaimsreader"
	"github.com/declara/declara/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
)

// InviteForm shows the form to invite a collaborator to a declaration
func (m *Controller) InviteForm(c *fiber.Ctx) error {
	declaration, err := m.findDeclaration(c)
	if err != nil {
		return err
	}

	return c.Render("member/invite-form", fiber.Map{
		"Lang":        c.Locals("Lang"),
		"Title":       "Invite collaborator",
		"Declaration": declaration,
		"Errors":      map[string]string{},
	}, "layout")
}

// Invite creates a pending access right for the given address and emails
// a single-use claim link. The raw invite token exists only in that email;
// the record keeps its digest.
func (m *Controller) Invite(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	// Any authenticated user may invite; membership is not checked here.
	declaration, err := m.findDeclaration(c)
	if err != nil {
		return err
	}

	email := strings.TrimSpace(c.FormValue("email"))
	role := c.FormValue("role", model.AccessRoleAdmin)

	if role != model.AccessRoleAdmin {
		return fiber.ErrBadRequest
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return c.Render("member/invite-form", fiber.Map{
			"Lang":        c.Locals("Lang"),
			"Title":       "Invite collaborator",
			"Declaration": declaration,
			"Email":       email,
			"Errors":      map[string]string{"email": "Incorrect email address"},
		}, "layout")
	}

	// Issue-time duplicate pre-check. This is a read-then-write, so a truly
	// concurrent double issue for the same declaration and address can slip
	// through; the claim transition is the guarded one.
	existing, err := m.accessRightsRepository.FindByDeclarationAndEmail(declaration.ID, email)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if existing != nil {
		return fiber.ErrConflict
	}

	invitee, err := m.usersRepository.FindByEmail(email)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	rawToken, digest, err := model.NewInviteToken()
	if err != nil {
		log.Printf("error generating invite token: %v\n", err)
		return fiber.ErrInternalServerError
	}

	expiresAt := time.Now().UTC().Add(m.config.InviteValidity)
	accessRight := &model.AccessRight{
		DeclarationID:   declaration.ID,
		Role:            role,
		Status:          model.AccessPending,
		InviteTokenHash: &digest,
		InviteExpiresAt: &expiresAt,
		InvitedByID:     session.ID,
	}
	if invitee != nil {
		accessRight.UserID = &invitee.ID
	} else {
		accessRight.TmpUserEmail = &email
	}

	if err := m.accessRightsRepository.Create(accessRight); err != nil {
		return fiber.ErrInternalServerError
	}

	claimLink := fmt.Sprintf(
		"%s/accept-invite?token=%s&email=%s",
		m.baseURL(),
		rawToken,
		url.QueryEscape(email),
	)

	c.Render("member/invitation-email", fiber.Map{
		"Lang":         c.Locals("Lang"),
		"InviterName":  session.Name,
		"EntityName":   declaration.EntityName,
		"Declaration":  declaration,
		"ClaimLink":    claimLink,
		"ValidityDays": int(m.config.InviteValidity.Hours() / 24),
	})

	// The access right outlives a failed dispatch on purpose, so the invite
	// can be resent by hand instead of being silently lost.
	if err := m.sender.Send(
		email,
		fmt.Sprintf("You've been invited to co-manage the accessibility declaration of %s", declaration.EntityName),
		string(c.Response().Body()),
	); err != nil {
		log.Printf("error sending invitation email: %v\n", err)
	}

	return c.Redirect(fmt.Sprintf("/declarations/%s/members", declaration.Slug))
}

func (m *Controller) baseURL() string {
	baseURL := strings.TrimSuffix(m.config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return baseURL
}

// findDeclaration resolves the declaration in the request path.
func (m *Controller) findDeclaration(c *fiber.Ctx) (*model.Declaration, error) {
	declaration, err := m.declarationsRepository.FindBySlug(c.Params("slug"))
	if err != nil {
		return nil, fiber.ErrInternalServerError
	}
	if declaration == nil {
		return nil, fiber.ErrNotFound
	}

	return declaration, nil
}
