package declaration

import (
	"strconv"

	"github.com/declara/declara/internal/result"
	"github.com/declara/declara/internal/webserver/jwtclaimsreader"
	"github.com/declara/declara/internal/webserver/model"
	"github.com/declara/declara/internal/webserver/view"
	"github.com/gofiber/fiber/v2"
)

// List shows the declarations the actor is a member of
func (d *Controller) List(c *fiber.Ctx) error {
	session := jwtclaimsreader.SessionData(c)

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	declarations, err := d.declarationsRepository.ListByMember(session.ID, page, model.ResultsPerPage)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	paginated := result.NewPaginated(
		model.ResultsPerPage,
		page,
		int(d.declarationsRepository.TotalByMember(session.ID)),
		declarations,
	)

	return c.Render("declaration/index", fiber.Map{
		"Lang":         c.Locals("Lang"),
		"Title":        "Declarations",
		"Declarations": paginated.Hits(),
		"Paginator":    view.Pagination(model.MaxPagesNavigator, paginated, c.Queries()),
		"Session":      session,
	}, "layout")
}
