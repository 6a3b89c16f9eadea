package webserver

import (
	"errors"
	"fmt"
	"log"

	"github.com/declara/declara/internal/index"
	"github.com/declara/declara/internal/webserver/controller/auth"
	"github.com/declara/declara/internal/webserver/controller/declaration"
	"github.com/declara/declara/internal/webserver/controller/member"
	"github.com/declara/declara/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"gorm.io/gorm"
)

type Controllers struct {
	Auth                                  *auth.Controller
	Declarations                          *declaration.Controller
	Members                               *member.Controller
	AllowIfNotLoggedInMiddleware          func(c *fiber.Ctx) error
	AlwaysRequireAuthenticationMiddleware func(c *fiber.Ctx) error
	ErrorHandler                          func(c *fiber.Ctx, err error) error
}

func SetupControllers(cfg Config, db *gorm.DB, idx *index.BleveIndexer, sender Sender) Controllers {
	usersRepository := &model.UserRepository{DB: db}
	declarationsRepository := &model.DeclarationRepository{DB: db}
	accessRightsRepository := &model.AccessRightRepository{DB: db}

	authCfg := auth.Config{
		Secret:            cfg.Secret,
		MinPasswordLength: cfg.MinPasswordLength,
		SessionTimeout:    cfg.SessionTimeout,
	}

	memberCfg := member.Config{
		BaseURL:        cfg.BaseURL,
		InviteValidity: cfg.InviteValidity,
	}

	authController := auth.NewController(usersRepository, authCfg)
	declarationsController := declaration.NewController(declarationsRepository, accessRightsRepository, idx)
	membersController := member.NewController(accessRightsRepository, usersRepository, declarationsRepository, memberCfg, sender)

	return Controllers{
		Auth:         authController,
		Declarations: declarationsController,
		Members:      membersController,
		AllowIfNotLoggedInMiddleware: jwtware.New(jwtware.Config{
			SigningKey:    cfg.Secret,
			SigningMethod: "HS256",
			TokenLookup:   "cookie:declara",
			SuccessHandler: func(c *fiber.Ctx) error {
				return c.Redirect("/declarations")
			},
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return c.Next()
			},
		}),
		AlwaysRequireAuthenticationMiddleware: jwtware.New(jwtware.Config{
			SigningKey:    cfg.Secret,
			SigningMethod: "HS256",
			TokenLookup:   "cookie:declara",
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return c.Redirect("/login")
			},
		}),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError
			message := ""

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				message = e.Message
			}

			// Send custom error page
			err = c.Status(code).Render(
				fmt.Sprintf("errors/%d", code),
				fiber.Map{
					"Lang":    chooseBestLanguage(c),
					"Title":   "Declara",
					"Message": message,
					"Version": c.App().Config().AppName,
				},
				"layout")

			if err != nil {
				log.Println(err)
				// In case the Render fails
				return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
			}

			return nil
		},
	}
}
