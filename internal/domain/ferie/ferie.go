package ferie

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

// Status is the approval status of a vacation request
type Status string

const (
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// StatusFromString converts a string to a Status
func StatusFromString(s string) (Status, bool) {
	switch s {
	case "APPROVED":
		return StatusApproved, true
	case "REJECTED":
		return StatusRejected, true
	default:
		return StatusApproved, false
	}
}

// Scan implements the sql.Scanner interface for database deserialization
func (s *Status) Scan(value any) error {
	if value == nil {
		*s = StatusApproved
		return nil
	}
	if str, ok := value.(string); ok {
		*s = Status(str)
		return nil
	}
	return fmt.Errorf("cannot scan %T into Status", value)
}

// Value implements the driver.Valuer interface for database serialization
func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}

// Ferie is a vacation request tied to a FERIE-type event. Requests are
// auto-approved at creation; only privileged users change status later.
type Ferie struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title       string    `json:"title"`
	StartDate   time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate     time.Time `json:"end_date" gorm:"type:date;not null"`
	Status      Status    `json:"status" gorm:"type:ferie_status;not null;default:'APPROVED'"`
	EventID     uuid.UUID `json:"event_id" gorm:"type:uuid;not null"`
	CreatedByID uuid.UUID `json:"created_by_id" gorm:"type:uuid;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	Event     event.Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
	CreatedBy user.User   `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
}

// TableName overrides the table name used by GORM
func (Ferie) TableName() string {
	return "ferie"
}

// BeforeCreate sets a UUID before creating the record
func (f *Ferie) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
