package declaration

import (
	"strconv"

	"github.com/declara/declara/internal/webserver/jwtclaimsreader"
	"github.com/declara/declara/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
)

// Search looks for declarations matching the submitted keywords
func (d *Controller) Search(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	keywords := c.Query("q")

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	var declarations []model.Declaration
	if keywords != "" {
		slugs, err := d.idx.Search(keywords, page, model.ResultsPerPage)
		if err != nil {
			return fiber.ErrInternalServerError
		}

		declarations, err = d.declarationsRepository.FindBySlugs(slugs)
		if err != nil {
			return fiber.ErrInternalServerError
		}
	}

	return c.Render("declaration/search", fiber.Map{
		"Lang":         c.Locals("Lang"),
		"Title":        "Search declarations",
		"Keywords":     keywords,
		"Declarations": declarations,
		"Session":      session,
	}, "layout")
}
