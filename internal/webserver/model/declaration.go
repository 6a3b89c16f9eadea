package model

import "time"

const (
	ComplianceFull    = "full"
	CompliancePartial = "partial"
	ComplianceNone    = "non-compliant"
)

// Declaration is an accessibility compliance statement for a service
// operated by an entity.
type Declaration struct {
	ID               uint `gorm:"primarykey"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Uuid             string `gorm:"uniqueIndex"`
	Slug             string `gorm:"uniqueIndex; not null"`
	Name             string `gorm:"not null"`
	EntityName       string `gorm:"not null"`
	ServiceURL       string
	ComplianceStatus string `gorm:"not null; default:non-compliant"`
	// Remarks holds entity-supplied HTML and must be sanitized before rendering.
	Remarks string `gorm:"type:text"`
}

// Validate checks all declaration fields to ensure they are in the required format
func (d Declaration) Validate() map[string]string {
	errs := map[string]string{}

	if d.Name == "" {
		errs["name"] = "Name cannot be empty"
	}

	if len(d.Name) > 200 {
		errs["name"] = "Name cannot be longer than 200 characters"
	}

	if d.EntityName == "" {
		errs["entity-name"] = "Entity name cannot be empty"
	}

	if len(d.EntityName) > 200 {
		errs["entity-name"] = "Entity name cannot be longer than 200 characters"
	}

	switch d.ComplianceStatus {
	case ComplianceFull, CompliancePartial, ComplianceNone:
	default:
		errs["compliance-status"] = "Incorrect compliance status"
	}

	return errs
}
