// Package validators contains pure, stateless format checks for
// credentials and registration data. Validation failures are returned as
// data, never panics; callers decide how to surface them.
package validators

import (
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/avdeev/go-device-vault/models"
)

// MinPasswordLength is the canonical minimum password length. Earlier
// versions of the app enforced 6 characters on the login form and 8 on
// registration; 8 is the documented rule everywhere now.
const MinPasswordLength = 8

// MaxPasswordLength bounds the password to keep digests and forms sane.
const MaxPasswordLength = 128

type credentialValidator struct{}

// NewCredentialValidator constructs the [CredentialValidator].
func NewCredentialValidator() CredentialValidator {
	return &credentialValidator{}
}

// ValidateCredentials implements [CredentialValidator].
func (v *credentialValidator) ValidateCredentials(email, password string) error {
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: need at least %d characters", ErrPasswordTooShort, MinPasswordLength)
	}
	return nil
}

// ValidateRegistration implements [CredentialValidator]. All field rules
// are evaluated; the returned validation.Errors lists every violation.
func (v *credentialValidator) ValidateRegistration(data models.Registration) error {
	return validation.ValidateStruct(&data,
		validation.Field(&data.Email,
			validation.Required.Error("email is required"),
			validation.By(emailShape),
		),
		validation.Field(&data.Password,
			validation.Required.Error("password is required"),
			validation.Length(MinPasswordLength, MaxPasswordLength).
				Error(fmt.Sprintf("password must be between %d and %d characters", MinPasswordLength, MaxPasswordLength)),
		),
		validation.Field(&data.Role,
			validation.Required.Error("role is required"),
			validation.In(models.RoleAdmin, models.RoleManager, models.RoleEmployee).
				Error("role is not recognized"),
		),
		validation.Field(&data.Name,
			validation.Length(0, 255).Error("name must be at most 255 characters"),
		),
	)
}

// ValidateUserEmail implements [CredentialValidator].
func (v *credentialValidator) ValidateUserEmail(user *models.User, email string) bool {
	return user != nil && user.Email == email
}

// emailShape is the deliberately minimal address check used across the
// app: an address must contain "@" with something on both sides.
func emailShape(value any) error {
	email, _ := value.(string)
	if email == "" {
		return nil // Required reports the empty case
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	return nil
}
