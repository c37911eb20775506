package models

import (
	"strings"

	"gorm.io/gorm"

	"blog-admin/apperror"
)

// Article belongs to exactly one author. The author is assigned at creation
// and never changed through the API.
type Article struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	UserID      uint   `gorm:"not null;index"`
	Author      User   `gorm:"foreignKey:UserID"`
}

func (a *Article) Validate() error {
	var violations []string

	if strings.TrimSpace(a.Title) == "" {
		violations = append(violations, "title must not be blank")
	}
	if strings.TrimSpace(a.Description) == "" {
		violations = append(violations, "description must not be blank")
	}
	if a.UserID == 0 {
		violations = append(violations, "author is required")
	}

	if len(violations) > 0 {
		return apperror.Validation(strings.Join(violations, "; "))
	}
	return nil
}
