package auth

import (
	"strings"
	"time"

	"github.com/declara/declara/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// SignIn authenticates a user and gives them a session JWT.
func (a *Controller) SignIn(c *fiber.Ctx) error {
	user, err := a.repository.FindByEmail(c.FormValue("email"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	if user == nil || user.Password != model.Hash(c.FormValue("password")) {
		return c.Status(fiber.StatusUnauthorized).Render("auth/login", fiber.Map{
			"Lang":   c.Locals("Lang"),
			"Title":  "Login",
			"Error":  "Wrong email or password",
			"Errors": map[string]string{},
		}, "layout")
	}

	expiration := time.Now().Add(a.config.SessionTimeout)
	signedToken, err := GenerateToken(user, expiration, a.config.Secret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     "declara",
		Value:    signedToken,
		Path:     "/",
		MaxAge:   34560000, // 400 days which is the life limit imposed by Chrome
		Secure:   false,
		HTTPOnly: true,
	})

	referer := string(c.Request().Header.Referer())
	if referer != "" && !strings.Contains(referer, "/login") && !strings.Contains(referer, "/register") {
		return c.Redirect(referer)
	}

	return c.Redirect("/declarations")
}

func GenerateToken(user *model.User, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userdata": model.User{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
			Uuid:  user.Uuid,
		},
		"exp": jwt.NewNumericDate(expiration),
	},
	)

	return token.SignedString(secret)
}
