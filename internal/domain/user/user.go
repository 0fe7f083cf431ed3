package user

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents the global authorization level of a user
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleUser   Role = "USER"
)

// RoleFromString converts a string to a Role
func RoleFromString(s string) (Role, bool) {
	switch strings.ToUpper(s) {
	case "ADMIN":
		return RoleAdmin, true
	case "EDITOR":
		return RoleEditor, true
	case "USER":
		return RoleUser, true
	default:
		return RoleUser, false
	}
}

// IsPrivileged reports whether the role may manage events and other users' records
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleEditor
}

// Scan implements the sql.Scanner interface for database deserialization
func (r *Role) Scan(value any) error {
	if value == nil {
		*r = RoleUser
		return nil
	}
	if str, ok := value.(string); ok {
		*r = Role(str)
		return nil
	}
	return fmt.Errorf("cannot scan %T into Role", value)
}

// Value implements the driver.Valuer interface for database serialization
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// User represents an employee account, auto-provisioned on first login
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name"`
	Role      Role      `json:"role" gorm:"type:user_role;not null;default:'USER'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}

// BeforeCreate sets a UUID before creating the record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// New creates a user with the default USER role
func New(email, name string) *User {
	return &User{
		ID:    uuid.New(),
		Email: email,
		Name:  name,
		Role:  RoleUser,
	}
}

// Validate checks if the user data is valid
func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("email must have a valid format")
	}
	return nil
}
