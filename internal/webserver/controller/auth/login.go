package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (a *Controller) Login(c *fiber.Ctx) error {
	registerPath := "/register"

	msg := ""
	if ref := string(c.Request().Header.Referer()); strings.HasSuffix(ref, registerPath) {
		msg = "Account created successfully. Please sign in."
	}

	return c.Render("auth/login", fiber.Map{
		"Lang":    c.Locals("Lang"),
		"Title":   "Login",
		"Success": msg,
		"Errors":  map[string]string{},
	}, "layout")
}
