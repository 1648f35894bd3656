package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_validator_mock.go -package=mock

import "github.com/avdeev/go-device-vault/models"

// CredentialValidator performs pure format validation of credentials.
// No I/O, no cryptography, no authentication — whether a password is
// actually correct is decided elsewhere.
type CredentialValidator interface {
	// ValidateCredentials checks the login form: the email must contain
	// "@" and the password must satisfy the canonical minimum length.
	// Returns nil when the format is acceptable.
	ValidateCredentials(email, password string) error

	// ValidateRegistration checks registration data and accumulates
	// every violated rule (email shape, password length, role
	// membership) so a single call surfaces all problems at once.
	// The returned error, when non-nil, is a validation.Errors map
	// keyed by field name.
	ValidateRegistration(data models.Registration) error

	// ValidateUserEmail reports whether user is non-nil and its email
	// matches email exactly. It deliberately performs no password
	// comparison.
	ValidateUserEmail(user *models.User, email string) bool
}
