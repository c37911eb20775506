package models

import (
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"blog-admin/apperror"
)

type User struct {
	gorm.Model
	Username  string `gorm:"size:50;not null;unique"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Password  string `gorm:"not null"` // bcrypt hash, never serialized
	Role      Role   `gorm:"not null"`
	ApiToken  string `gorm:"column:api_token;not null;unique"`
	Articles  []Article
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Validate collects every violated constraint into a single validation
// error. Persistence must not happen while any violation exists.
func (u *User) Validate() error {
	var violations []string

	if strings.TrimSpace(u.Username) == "" {
		violations = append(violations, "username must not be blank")
	}
	if utf8.RuneCountInString(u.Username) > 50 {
		violations = append(violations, "username must be at most 50 characters")
	}
	if strings.TrimSpace(u.FirstName) == "" {
		violations = append(violations, "firstName must not be blank")
	}
	if strings.TrimSpace(u.LastName) == "" {
		violations = append(violations, "lastName must not be blank")
	}
	if strings.TrimSpace(u.Password) == "" {
		violations = append(violations, "password must not be blank")
	}
	if !u.Role.Valid() {
		violations = append(violations, "unsupported role value")
	}

	if len(violations) > 0 {
		return apperror.Validation(strings.Join(violations, "; "))
	}
	return nil
}
