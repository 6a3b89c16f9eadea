package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func getSupportedLanguages() []string {
	return []string{"en", "fr"}
}

func chooseBestLanguage(c *fiber.Ctx) string {
	lang := c.AcceptsLanguages(getSupportedLanguages()...)
	if lang == "" {
		return "en"
	}
	return lang
}

// SetLanguage negotiates the language of the response from the Accept-Language
// header and sets it as a local variable of the request
func SetLanguage(c *fiber.Ctx) error {
	c.Locals("Lang", chooseBestLanguage(c))
	c.Locals("SupportedLanguages", getSupportedLanguages())
	c.Locals("Version", c.App().Config().AppName)
	return c.Next()
}
