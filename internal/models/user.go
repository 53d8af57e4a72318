package models

// Role controls what a user is allowed to do.
type Role = string

const (
	RoleAdmin  Role = "admin"
	RoleAuthor Role = "author"
	RoleReader Role = "reader"
)

// UserModel represents a blog user. The admin account is seeded at
// startup; authentication compares submitted credentials against the
// stored bcrypt hash.
type UserModel struct {
	Base
	Username    string `json:"username"    gorm:"uniqueIndex;not null"`
	Email       string `json:"email"`
	Password    string `json:"-"           gorm:"not null"`
	Role        Role   `json:"role"        gorm:"default:reader;not null"`
	DisplayName string `json:"displayName"`
}

func (UserModel) TableName() string { return "users" }

// IsAdmin reports whether the user has the admin role.
func (u *UserModel) IsAdmin() bool { return u.Role == RoleAdmin }
