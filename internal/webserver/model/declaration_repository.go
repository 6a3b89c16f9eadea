package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type DeclarationRepository struct {
	DB *gorm.DB
}

func (d *DeclarationRepository) Create(declaration *Declaration) error {
	if result := d.DB.Create(declaration); result.Error != nil {
		log.Printf("error creating declaration: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (d *DeclarationRepository) FindBySlug(slug string) (*Declaration, error) {
	var declaration Declaration

	result := d.DB.Where("slug = ?", slug).First(&declaration)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &declaration, result.Error
}

// ListByMember returns the declarations the given user is an approved member
// of, most recently updated first.
func (d *DeclarationRepository) ListByMember(userID uint, page int, resultsPerPage int) ([]Declaration, error) {
	var declarations []Declaration

	result := d.DB.
		Joins("JOIN access_rights ON access_rights.declaration_id = declarations.id").
		Where("access_rights.user_id = ? AND access_rights.status = ?", userID, AccessApproved).
		Scopes(Paginate(page, resultsPerPage)).
		Order("declarations.updated_at DESC").
		Find(&declarations)
	if result.Error != nil {
		log.Printf("error listing declarations: %s\n", result.Error)
		return nil, result.Error
	}

	return declarations, nil
}

func (d *DeclarationRepository) TotalByMember(userID uint) int64 {
	var totalRows int64

	d.DB.Model(&Declaration{}).
		Joins("JOIN access_rights ON access_rights.declaration_id = declarations.id").
		Where("access_rights.user_id = ? AND access_rights.status = ?", userID, AccessApproved).
		Count(&totalRows)
	return totalRows
}

func (d *DeclarationRepository) FindBySlugs(slugs []string) ([]Declaration, error) {
	var declarations []Declaration

	if len(slugs) == 0 {
		return declarations, nil
	}

	result := d.DB.Where("slug IN ?", slugs).Find(&declarations)
	if result.Error != nil {
		log.Printf("error retrieving declarations: %s\n", result.Error)
		return nil, result.Error
	}
	return declarations, nil
}
