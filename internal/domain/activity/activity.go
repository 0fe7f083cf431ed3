package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

// Activity is a team-building option scoped to one TEAM_BUILDING event.
// IsCustom marks employee-submitted suggestions as opposed to curated
// ones created by an EDITOR or ADMIN.
type Activity struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	IsCustom    bool      `json:"is_custom" gorm:"not null;default:false"`
	EventID     uuid.UUID `json:"event_id" gorm:"type:uuid;not null"`
	CreatedByID uuid.UUID `json:"created_by_id" gorm:"type:uuid;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	Event     event.Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
	CreatedBy user.User   `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
}

// TableName overrides the table name used by GORM
func (Activity) TableName() string {
	return "activities"
}

// BeforeCreate sets a UUID before creating the record
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsCreator checks if the given user created this activity
func (a *Activity) IsCreator(userID uuid.UUID) bool {
	return a.CreatedByID == userID
}
