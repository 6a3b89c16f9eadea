package auth

import (
	"time"

	"github.com/declara/declara/internal/webserver/model"
)

type authRepository interface {
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
}

type Config struct {
	Secret            []byte
	MinPasswordLength int
	SessionTimeout    time.Duration
}

type Controller struct {
	repository authRepository
	config     Config
}

func NewController(repository authRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
