package auth

import (
	"log"

	"github.com/declara/declara/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RegisterForm shows the account creation form
func (a *Controller) RegisterForm(c *fiber.Ctx) error {
	return c.Render("auth/register", fiber.Map{
		"Lang":   c.Locals("Lang"),
		"Title":  "Create account",
		"Errors": map[string]string{},
	}, "layout")
}

// Register gathers information coming from the registration form and creates a new user
func (a *Controller) Register(c *fiber.Ctx) error {
	user := model.User{
		Uuid:     uuid.NewString(),
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Role:     model.RoleRegular,
	}

	errs := user.Validate(a.config.MinPasswordLength)
	errs = user.ConfirmPassword(c.FormValue("confirm-password"), a.config.MinPasswordLength, errs)

	if exist, err := a.repository.FindByEmail(user.Email); err != nil {
		return fiber.ErrInternalServerError
	} else if exist != nil {
		errs["email"] = "A user with this email address already exists"
	}

	if len(errs) > 0 {
		return c.Render("auth/register", fiber.Map{
			"Lang":   c.Locals("Lang"),
			"Title":  "Create account",
			"Name":   user.Name,
			"Email":  user.Email,
			"Errors": errs,
		}, "layout")
	}

	user.Password = model.Hash(user.Password)
	if err := a.repository.Create(&user); err != nil {
		log.Printf("error creating user: %v\n", err)
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/login")
}
