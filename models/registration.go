package models

// Registration carries the data collected by the registration flow before
// an account is created. The password is plaintext at this stage; it is
// digested immediately after validation and never persisted as-is.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}
