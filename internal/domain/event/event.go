package event

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/apperrors"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

// Type discriminates which child records an event may own: GENERICO
// events carry partecipations, FERIE events carry vacation requests and
// TEAM_BUILDING events carry activities and sign-ups.
type Type string

const (
	TypeFerie        Type = "FERIE"
	TypeTeamBuilding Type = "TEAM_BUILDING"
	TypeGenerico     Type = "GENERICO"
)

// TypeFromString converts a string to an event Type
func TypeFromString(s string) (Type, bool) {
	switch s {
	case "FERIE":
		return TypeFerie, true
	case "TEAM_BUILDING":
		return TypeTeamBuilding, true
	case "GENERICO":
		return TypeGenerico, true
	default:
		return TypeFerie, false
	}
}

// IsValid reports whether the type is one of the known event types
func (t Type) IsValid() bool {
	switch t {
	case TypeFerie, TypeTeamBuilding, TypeGenerico:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for database deserialization
func (t *Type) Scan(value any) error {
	if value == nil {
		*t = TypeFerie
		return nil
	}
	if str, ok := value.(string); ok {
		*t = Type(str)
		return nil
	}
	return fmt.Errorf("cannot scan %T into event Type", value)
}

// Value implements the driver.Valuer interface for database serialization
func (t Type) Value() (driver.Value, error) {
	return string(t), nil
}

// Event is the aggregate root for all type-specific child records.
// Confirmed fields are only meaningful for TEAM_BUILDING events and are
// either all null or all set.
type Event struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title       string    `json:"title" gorm:"not null"`
	StartDate   time.Time `json:"start_date" gorm:"type:date;not null"`
	EndDate     time.Time `json:"end_date" gorm:"type:date;not null"`
	EventType   Type      `json:"event_type" gorm:"type:event_type;not null;default:'FERIE'"`
	CreatedByID uuid.UUID `json:"created_by_id" gorm:"type:uuid;not null"`

	ConfirmedStartDate  *time.Time `json:"confirmed_start_date" gorm:"type:date"`
	ConfirmedEndDate    *time.Time `json:"confirmed_end_date" gorm:"type:date"`
	ConfirmedActivityID *uuid.UUID `json:"confirmed_activity_id" gorm:"type:uuid"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	CreatedBy    user.User   `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	InvitedUsers []user.User `json:"invited_users,omitempty" gorm:"many2many:event_invited_users"`
}

// TableName overrides the table name used by GORM
func (Event) TableName() string {
	return "events"
}

// BeforeCreate sets a UUID before creating the record
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// IsInvited checks if the given user is in the invite list
func (e *Event) IsInvited(userID uuid.UUID) bool {
	for _, invited := range e.InvitedUsers {
		if invited.ID == userID {
			return true
		}
	}
	return false
}

// HasStarted reports whether the event start date is today or earlier
func (e *Event) HasStarted() bool {
	return !Today().Before(DateOnly(e.StartDate))
}

// InvitedUserIDs returns the ids of all invited users
func (e *Event) InvitedUserIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(e.InvitedUsers))
	for _, invited := range e.InvitedUsers {
		ids = append(ids, invited.ID)
	}
	return ids
}

// DateOnly truncates a timestamp to its calendar date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date
func Today() time.Time {
	return DateOnly(time.Now().UTC())
}

// ValidateDates checks the event date invariants: both dates present,
// start not after end, start not in the past. The start == end boundary
// is valid.
func (e *Event) ValidateDates() error {
	start := DateOnly(e.StartDate)
	end := DateOnly(e.EndDate)

	if e.StartDate.IsZero() || e.EndDate.IsZero() {
		return apperrors.Validation("start and end dates are required")
	}
	if start.After(end) {
		return apperrors.Validation("start date must not be after end date")
	}
	if start.Before(Today()) {
		return apperrors.Validation("start date cannot be in the past")
	}
	return nil
}

// WithinRange reports whether [start, end] lies inside the event's date range
func (e *Event) WithinRange(start, end time.Time) bool {
	evStart := DateOnly(e.StartDate)
	evEnd := DateOnly(e.EndDate)
	s := DateOnly(start)
	n := DateOnly(end)

	return !s.Before(evStart) && !s.After(evEnd) && !n.Before(evStart) && !n.After(evEnd)
}
