package models

// Role is a closed set. Unknown values are rejected at validation time,
// never coerced to a default.
type Role string

const (
	RoleBlogger Role = "blogger"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleBlogger || r == RoleAdmin
}
