package declaration

import (
	"github.com/declara/declara/internal/webserver/model"
)

type declarationsRepository interface {
	Create(declaration *model.Declaration) error
	FindBySlug(slug string) (*model.Declaration, error)
	FindBySlugs(slugs []string) ([]model.Declaration, error)
	ListByMember(userID uint, page int, resultsPerPage int) ([]model.Declaration, error)
	TotalByMember(userID uint) int64
}

type accessRightsRepository interface {
	Create(accessRight *model.AccessRight) error
	FindByDeclarationAndUser(declarationID, userID uint) (*model.AccessRight, error)
}

// Index gets every created declaration so it becomes searchable.
type Index interface {
	Add(slug, name, entityName string) error
	Search(keywords string, page, resultsPerPage int) ([]string, error)
}

type Controller struct {
	declarationsRepository declarationsRepository
	accessRightsRepository accessRightsRepository
	idx                    Index
}

// NewController returns a new instance of the declarations controller
func NewController(declarationsRepository declarationsRepository, accessRightsRepository accessRightsRepository, idx Index) *Controller {
	return &Controller{
		declarationsRepository: declarationsRepository,
		accessRightsRepository: accessRightsRepository,
		idx:                    idx,
	}
}
