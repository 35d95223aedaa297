package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/feims/feims/internal/pkg/apperrors"
	"github.com/feims/feims/internal/pkg/validation"
)

// Profile is the display record linked one-to-one with an
// authenticated identity. Its id is the id issued at sign-up, and the
// row is created exactly once, at successful sign-up.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Validate requires the owning user id and a display name.
func (p *Profile) Validate() error {
	if p.ID == uuid.Nil {
		return apperrors.NewValidationError("profile id is required")
	}
	if !validation.NonEmpty(p.Name) {
		return apperrors.NewValidationError("profile name is required")
	}
	return nil
}

// User is an authenticated account held by the auth service. It is
// not part of the public directory schema.
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Email          string    `json:"email" db:"email"`
	Password       string    `json:"-" db:"password"`
	EmailConfirmed bool      `json:"emailConfirmed" db:"email_confirmed"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
