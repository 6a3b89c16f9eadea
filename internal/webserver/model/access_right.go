package model

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Access right roles. The enum is open on purpose: the declaration forms
// hint at a future "reader" role but nothing grants it yet.
const (
	AccessRoleAdmin = "admin"
)

// Access right statuses. "rejected" is part of the taxonomy but no
// transition produces it; revocation deletes the record instead.
const (
	AccessPending  = "pending"
	AccessApproved = "approved"
	AccessRejected = "rejected"
)

const InviteValidity = 7 * 24 * time.Hour

// AccessRight grants an identity participation rights on a declaration.
// While pending it carries either a bound user or an unclaimed invitee
// email, plus the digest of a single-use invite token; on approval the
// invite fields are cleared and only the bound user remains.
type AccessRight struct {
	ID              uint `gorm:"primarykey"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeclarationID   uint        `gorm:"index; not null"`
	Declaration     Declaration `gorm:"constraint:OnDelete:CASCADE"`
	Role            string      `gorm:"not null; default:admin"`
	Status          string      `gorm:"not null; default:pending"`
	UserID          *uint       `gorm:"index"`
	User            *User
	TmpUserEmail    *string
	InviteTokenHash *string `gorm:"index"`
	InviteExpiresAt *time.Time
	InvitedByID     uint
	InvitedBy       User `gorm:"foreignKey:InvitedByID"`
}

// InviteExpired reports whether the invite validity window has passed.
func (a AccessRight) InviteExpired(now time.Time) bool {
	return a.InviteExpiresAt != nil && now.After(*a.InviteExpiresAt)
}

// NewInviteToken generates a 256-bit random secret and its storage digest.
// Only the digest is ever persisted; the raw secret travels in the invite
// email alone.
func NewInviteToken() (raw string, digest string, err error) {
	b := make([]byte, 32)
	if _, err = rand.Read(b); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(b)
	return raw, InviteTokenDigest(raw), nil
}

// InviteTokenDigest returns the lowercase hex SHA-256 digest of a raw
// invite token.
func InviteTokenDigest(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
