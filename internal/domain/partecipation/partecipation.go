package partecipation

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

// Status is the tri-state acceptance status of a generic-event invitation
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// StatusFromString converts a string to a Status
func StatusFromString(s string) (Status, bool) {
	switch s {
	case "PENDING":
		return StatusPending, true
	case "ACCEPTED":
		return StatusAccepted, true
	case "REJECTED":
		return StatusRejected, true
	default:
		return StatusPending, false
	}
}

// Scan implements the sql.Scanner interface for database deserialization
func (s *Status) Scan(value any) error {
	if value == nil {
		*s = StatusPending
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

// Partecipation is a GENERICO-event attendance record. At most one row
// exists per (event, user) pair, guarded by a unique index.
type Partecipation struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Status  Status    `json:"status" gorm:"type:partecipation_status;not null;default:'PENDING'"`
	EventID uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_partecipations_event_user"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_partecipations_event_user"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	Event event.Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
	User  user.User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName overrides the table name used by GORM
func (Partecipation) TableName() string {
	return "partecipations"
}

// BeforeCreate sets a UUID before creating the record
func (p *Partecipation) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// New creates a pending partecipation for the given event and user
func New(eventID, userID uuid.UUID) *Partecipation {
	return &Partecipation{
		ID:      uuid.New(),
		Status:  StatusPending,
		EventID: eventID,
		UserID:  userID,
	}
}
