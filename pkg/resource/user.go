package resource

import (
	"time"

	"github.com/polyrpc/demoapi/pkg/validation"
)

// Name length bounds for users.
const (
	userNameMinLength = 1
	userNameMaxLength = 100
)

// Role is a user's access role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

func roleValues() []string {
	return []string{string(RoleAdmin), string(RoleUser), string(RoleGuest)}
}

// Valid reports whether r is a known role tag.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// ParseRole converts a wire tag into a Role, rejecting unknown tags.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", validation.NewError(
			validation.NewEnumError("role", validation.LocationBody, roleValues(), s))
	}
	return r, nil
}

// User is an account in the demo system.
type User struct {
	// ID is assigned by the store and immutable after creation.
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email" yaml:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty" yaml:"phoneNumber,omitempty"`
	Role        Role   `json:"role" yaml:"role"`
	IsPremium   bool   `json:"isPremium" yaml:"isPremium"`
	AvatarURL   string `json:"avatarUrl,omitempty" yaml:"avatarUrl,omitempty"`
	Bio         string `json:"bio,omitempty" yaml:"bio,omitempty"`

	// CreatedAt is set once at creation and never updated.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// CreateUserRequest is the input for user creation.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  *Role  `json:"role,omitempty"`
}

// Validate checks the request fields.
func (r *CreateUserRequest) Validate() *validation.Result {
	res := validation.NewResult()
	res.Merge(validateUserName(r.Name))
	res.Merge(validateUserEmail(r.Email))
	if r.Role != nil && !r.Role.Valid() {
		res.AddError(validation.NewEnumError("role", validation.LocationBody, roleValues(), string(*r.Role)))
	}
	return res
}

// UpdateUserRequest is a partial update. Nil fields are left unchanged;
// there is no way to clear a field, matching the reference contract.
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Role        *Role   `json:"role,omitempty"`
	IsPremium   *bool   `json:"isPremium,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

// Validate checks only the fields that are present.
func (r *UpdateUserRequest) Validate() *validation.Result {
	res := validation.NewResult()
	if r.Name != nil {
		res.Merge(validateUserName(*r.Name))
	}
	if r.Email != nil {
		res.Merge(validateUserEmail(*r.Email))
	}
	if r.Role != nil && !r.Role.Valid() {
		res.AddError(validation.NewEnumError("role", validation.LocationBody, roleValues(), string(*r.Role)))
	}
	return res
}

// Apply merges the present fields into u.
func (r *UpdateUserRequest) Apply(u *User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
	if r.IsPremium != nil {
		u.IsPremium = *r.IsPremium
	}
	if r.PhoneNumber != nil {
		u.PhoneNumber = *r.PhoneNumber
	}
	if r.AvatarURL != nil {
		u.AvatarURL = *r.AvatarURL
	}
	if r.Bio != nil {
		u.Bio = *r.Bio
	}
}

func validateUserName(name string) *validation.Result {
	res := validation.NewResult()
	if len(name) < userNameMinLength {
		res.AddError(validation.NewMinLengthError("name", validation.LocationBody, userNameMinLength, len(name)))
	} else if len(name) > userNameMaxLength {
		res.AddError(validation.NewMaxLengthError("name", validation.LocationBody, userNameMaxLength, len(name)))
	}
	return res
}

func validateUserEmail(email string) *validation.Result {
	res := validation.NewResult()
	if !validation.IsEmail(email) {
		res.AddError(validation.NewFormatError("email", validation.LocationBody, "email", email))
	}
	return res
}
