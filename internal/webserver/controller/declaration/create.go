package declaration

import (
	"fmt"
	"log"

	"github.com/declara/declara/internal/webserver/jwtclaimsreader"
	"github.com/declara/declara/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Create gathers information coming from the new declaration form and creates
// a new declaration, granting its creator an approved admin access right
func (d *Controller) Create(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	declaration := model.Declaration{
		Uuid:             uuid.NewString(),
		Name:             c.FormValue("name"),
		EntityName:       c.FormValue("entity-name"),
		ServiceURL:       c.FormValue("service-url"),
		ComplianceStatus: c.FormValue("compliance-status", model.ComplianceNone),
		Remarks:          c.FormValue("remarks"),
	}

	if errs := declaration.Validate(); len(errs) > 0 {
		return c.Render("declaration/new", fiber.Map{
			"Lang":        c.Locals("Lang"),
			"Title":       "New declaration",
			"Declaration": declaration,
			"Errors":      errs,
		}, "layout")
	}

	declaration.Slug = d.uniqueSlug(declaration.Name)

	if err := d.declarationsRepository.Create(&declaration); err != nil {
		return fiber.ErrInternalServerError
	}

	creatorID := session.ID
	accessRight := &model.AccessRight{
		DeclarationID: declaration.ID,
		Role:          model.AccessRoleAdmin,
		Status:        model.AccessApproved,
		UserID:        &creatorID,
		InvitedByID:   creatorID,
	}
	if err := d.accessRightsRepository.Create(accessRight); err != nil {
		return fiber.ErrInternalServerError
	}

	if err := d.idx.Add(declaration.Slug, declaration.Name, declaration.EntityName); err != nil {
		log.Printf("error indexing declaration %s: %v\n", declaration.Slug, err)
	}

	return c.Redirect(fmt.Sprintf("/declarations/%s", declaration.Slug))
}

func (d *Controller) uniqueSlug(name string) string {
	candidate := slug.Make(name)
	if existing, _ := d.declarationsRepository.FindBySlug(candidate); existing == nil {
		return candidate
	}
	return fmt.Sprintf("%s-%s", candidate, uuid.NewString()[:8])
}
