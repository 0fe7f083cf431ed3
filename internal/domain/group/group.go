package group

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/domain/user"
)

// UserGroup is a named set of users. The group owns the membership link;
// users are referenced by id only.
type UserGroup struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name      string      `json:"name" gorm:"not null"`
	Members   []user.User `json:"members" gorm:"many2many:user_group_membership"`
	CreatedAt time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (UserGroup) TableName() string {
	return "user_groups"
}

// BeforeCreate sets a UUID before creating the record
func (g *UserGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// MemberIDs returns the ids of all group members
func (g *UserGroup) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(g.Members))
	for _, member := range g.Members {
		ids = append(ids, member.ID)
	}
	return ids
}
