package teambuilding

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

// Partecipation is a sign-up to a TEAM_BUILDING event, recording the
// chosen activity set and a date sub-range within the event. The chosen
// set is immutable once made; identical resubmissions are accepted.
type Partecipation struct {
	ID                uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EventID           uuid.UUID      `json:"event_id" gorm:"type:uuid;not null"`
	UserID            uuid.UUID      `json:"user_id" gorm:"type:uuid;not null"`
	ChosenActivityIDs pq.StringArray `json:"chosen_activity_ids" gorm:"type:uuid[]"`
	StartDate         time.Time      `json:"start_date" gorm:"type:date;not null"`
	EndDate           time.Time      `json:"end_date" gorm:"type:date;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	Event event.Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
	User  user.User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName overrides the table name used by GORM
func (Partecipation) TableName() string {
	return "team_building_partecipations"
}

// BeforeCreate sets a UUID before creating the record
func (p *Partecipation) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ChosenActivityUUIDs parses the stored activity ids
func (p *Partecipation) ChosenActivityUUIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.ChosenActivityIDs))
	for _, raw := range p.ChosenActivityIDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// SameActivitySet reports whether the given ids match the stored chosen
// set exactly, ignoring order and duplicates
func (p *Partecipation) SameActivitySet(ids []uuid.UUID) bool {
	stored := make(map[uuid.UUID]bool, len(p.ChosenActivityIDs))
	for _, id := range p.ChosenActivityUUIDs() {
		stored[id] = true
	}

	requested := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		requested[id] = true
	}

	if len(stored) != len(requested) {
		return false
	}
	for id := range requested {
		if !stored[id] {
			return false
		}
	}
	return true
}

// ActivityIDStrings converts uuids into the pq array representation
func ActivityIDStrings(ids []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
