package validators

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev/go-device-vault/models"
)

func TestValidateCredentials(t *testing.T) {
	v := NewCredentialValidator()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid credentials",
			email:    "a@b.com",
			password: "long-enough-password",
			wantErr:  nil,
		},
		{
			name:     "password too short",
			email:    "a@b.com",
			password: "short",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password just below minimum",
			email:    "a@b.com",
			password: "1234567",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password at minimum",
			email:    "a@b.com",
			password: "12345678",
			wantErr:  nil,
		},
		{
			name:     "email without at sign",
			email:    "not-an-email",
			password: "long-enough-password",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "empty email",
			email:    "",
			password: "long-enough-password",
			wantErr:  ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCredentials(tt.email, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRegistration_EmptyAccumulatesAllErrors(t *testing.T) {
	v := NewCredentialValidator()

	err := v.ValidateRegistration(models.Registration{})
	require.Error(t, err)

	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.GreaterOrEqual(t, len(errs), 3, "empty registration must report email, password and role")
	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "Password")
	assert.Contains(t, errs, "Role")
}

func TestValidateRegistration_Valid(t *testing.T) {
	v := NewCredentialValidator()

	err := v.ValidateRegistration(models.Registration{
		Email:    "manager@firm.example",
		Password: "a-strong-password",
		Name:     "Pat",
		Role:     models.RoleManager,
	})
	assert.NoError(t, err)
}

func TestValidateRegistration_SingleFieldFailures(t *testing.T) {
	v := NewCredentialValidator()

	base := models.Registration{
		Email:    "manager@firm.example",
		Password: "a-strong-password",
		Role:     models.RoleManager,
	}

	tests := []struct {
		name      string
		mutate    func(*models.Registration)
		wantField string
	}{
		{
			name:      "email without at sign",
			mutate:    func(r *models.Registration) { r.Email = "nope" },
			wantField: "Email",
		},
		{
			name:      "email ends with at sign",
			mutate:    func(r *models.Registration) { r.Email = "nope@" },
			wantField: "Email",
		},
		{
			name:      "short password",
			mutate:    func(r *models.Registration) { r.Password = "short" },
			wantField: "Password",
		},
		{
			name:      "unknown role",
			mutate:    func(r *models.Registration) { r.Role = "superuser" },
			wantField: "Role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := base
			tt.mutate(&data)

			err := v.ValidateRegistration(data)
			require.Error(t, err)

			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			assert.Len(t, errs, 1)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestValidateUserEmail(t *testing.T) {
	v := NewCredentialValidator()

	user := &models.User{Email: "x@y.com"}

	assert.True(t, v.ValidateUserEmail(user, "x@y.com"))
	assert.False(t, v.ValidateUserEmail(user, "other@y.com"))
	assert.False(t, v.ValidateUserEmail(nil, "x@y.com"))
}
