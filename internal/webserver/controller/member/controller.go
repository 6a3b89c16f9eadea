package member

import (
	"time"

	"github.com/declara/declara/internal/webserver/model"
)

type Sender interface {
	From() string
	Send(address, subject, body string) error
}

type accessRightsRepository interface {
	Create(accessRight *model.AccessRight) error
	FindByID(id uint) (*model.AccessRight, error)
	ListByDeclaration(declarationID uint) ([]model.AccessRight, error)
	FindByDeclarationAndEmail(declarationID uint, email string) (*model.AccessRight, error)
	FindByDeclarationAndUser(declarationID, userID uint) (*model.AccessRight, error)
	FindPendingByTokenHash(digest string) (*model.AccessRight, error)
	Claim(id uint, userID uint) (bool, error)
	Delete(id uint) error
}

type usersRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
}

type declarationsRepository interface {
	FindBySlug(slug string) (*model.Declaration, error)
}

type Config struct {
	BaseURL        string
	InviteValidity time.Duration
}

type Controller struct {
	accessRightsRepository accessRightsRepository
	usersRepository        usersRepository
	declarationsRepository declarationsRepository
	config                 Config
	sender                 Sender
}

// NewController returns a new instance of the members controller
func NewController(accessRightsRepository accessRightsRepository, usersRepository usersRepository, declarationsRepository declarationsRepository, cfg Config, sender Sender) *Controller {
	return &Controller{
		accessRightsRepository: accessRightsRepository,
		usersRepository:        usersRepository,
		declarationsRepository: declarationsRepository,
		config:                 cfg,
		sender:                 sender,
	}
}
