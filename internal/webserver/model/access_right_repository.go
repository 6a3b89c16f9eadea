package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type AccessRightRepository struct {
	DB *gorm.DB
}

func (r *AccessRightRepository) Create(accessRight *AccessRight) error {
	if result := r.DB.Create(accessRight); result.Error != nil {
		log.Printf("error creating access right: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (r *AccessRightRepository) FindByID(id uint) (*AccessRight, error) {
	var accessRight AccessRight

	result := r.DB.Preload("User").Preload("InvitedBy").Preload("Declaration").First(&accessRight, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &accessRight, result.Error
}

// ListByDeclaration returns every access right on a declaration with its
// bound user resolved; pending entries for unregistered invitees keep
// only their temporary email.
func (r *AccessRightRepository) ListByDeclaration(declarationID uint) ([]AccessRight, error) {
	var accessRights []AccessRight

	result := r.DB.Preload("User").Preload("InvitedBy").
		Where("declaration_id = ?", declarationID).
		Order("created_at ASC").
		Find(&accessRights)
	if result.Error != nil {
		log.Printf("error listing access rights: %s\n", result.Error)
		return nil, result.Error
	}
	return accessRights, nil
}

// FindByDeclarationAndEmail looks for an access right on a declaration
// held by the given address, either through a bound user's email or an
// unclaimed invitee email. Used as the duplicate pre-check at issue time.
func (r *AccessRightRepository) FindByDeclarationAndEmail(declarationID uint, email string) (*AccessRight, error) {
	var accessRight AccessRight

	result := r.DB.
		Joins("LEFT JOIN users ON users.id = access_rights.user_id").
		Where("access_rights.declaration_id = ?", declarationID).
		Where("users.email = ? OR access_rights.tmp_user_email = ?", email, email).
		First(&accessRight)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &accessRight, result.Error
}

// FindByDeclarationAndUser returns the approved access right the given user
// holds on a declaration, if any. Membership checks go through here; a
// pending invite grants nothing until it is claimed.
func (r *AccessRightRepository) FindByDeclarationAndUser(declarationID, userID uint) (*AccessRight, error) {
	var accessRight AccessRight

	result := r.DB.
		Where("declaration_id = ? AND user_id = ? AND status = ?", declarationID, userID, AccessApproved).
		First(&accessRight)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &accessRight, result.Error
}

// FindPendingByTokenHash resolves a presented token digest to its pending
// access right. Claimed, revoked or unknown tokens yield no match.
func (r *AccessRightRepository) FindPendingByTokenHash(digest string) (*AccessRight, error) {
	var accessRight AccessRight

	result := r.DB.Preload("User").Preload("InvitedBy").Preload("Declaration").
		Where("invite_token_hash = ? AND status = ?", digest, AccessPending).
		First(&accessRight)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &accessRight, result.Error
}

// Claim promotes a pending access right to approved, binding it to the
// claiming user and clearing the invite fields. The update is conditional
// on the row still being pending so that concurrent claims of the same
// token succeed exactly once; it reports whether this call won.
func (r *AccessRightRepository) Claim(id uint, userID uint) (bool, error) {
	result := r.DB.Model(&AccessRight{}).
		Where("id = ? AND status = ?", id, AccessPending).
		Updates(map[string]interface{}{
			"status":            AccessApproved,
			"user_id":           userID,
			"tmp_user_email":    nil,
			"invite_token_hash": nil,
			"invite_expires_at": nil,
		})
	if result.Error != nil {
		log.Printf("error claiming access right: %s\n", result.Error)
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *AccessRightRepository) Delete(id uint) error {
	result := r.DB.Delete(&AccessRight{}, id)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("error deleting access right: %s\n", result.Error)
		return result.Error
	}
	return nil
}
