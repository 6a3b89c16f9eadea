package webserver

import (
	"github.com/gofiber/fiber/v2"
)

func routes(app *fiber.App, controllers Controllers) {
	app.Use(SetLanguage)

	app.Get("/login", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.Login)
	app.Post("/login", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.SignIn)
	app.Get("/register", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.RegisterForm)
	app.Post("/register", controllers.AllowIfNotLoggedInMiddleware, controllers.Auth.Register)

	// Everything below requires a signed-in actor
	app.Use(controllers.AlwaysRequireAuthenticationMiddleware)

	app.Get("/logout", controllers.Auth.SignOut)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/declarations")
	})

	app.Get("/declarations", controllers.Declarations.List)
	app.Get("/declarations/search", controllers.Declarations.Search)
	app.Get("/declarations/new", controllers.Declarations.New)
	app.Post("/declarations", controllers.Declarations.Create)
	app.Get("/declarations/:slug", controllers.Declarations.Detail)

	app.Get("/declarations/:slug/members", controllers.Members.List)
	app.Get("/declarations/:slug/members/invite", controllers.Members.InviteForm)
	app.Post("/declarations/:slug/members/invite", controllers.Members.Invite)
	app.Post("/declarations/:slug/members/delete", controllers.Members.Revoke)

	// Claim links from invite emails land here
	app.Get("/accept-invite", controllers.Members.ClaimForm)
	app.Post("/accept-invite", controllers.Members.Claim)
}
