package postgres

import (
	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/domain/activity"
	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/ferie"
	"github.com/gravadigital/eventi-api/internal/domain/group"
	"github.com/gravadigital/eventi-api/internal/domain/partecipation"
	"github.com/gravadigital/eventi-api/internal/domain/teambuilding"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

// Lookup methods return (nil, nil) when the record does not exist;
// services translate that into their NotFound taxonomy.

// UserRepository defines persistence operations for users
type UserRepository interface {
	Create(u *user.User) error
	GetByID(id uuid.UUID) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
	GetByIDs(ids []uuid.UUID) ([]*user.User, error)
	GetByEmails(emails []string) ([]*user.User, error)
	GetAll() ([]*user.User, error)
	Update(u *user.User) error
}

// GroupRepository defines persistence operations for user groups
type GroupRepository interface {
	Create(g *group.UserGroup) error
	GetByID(id uuid.UUID) (*group.UserGroup, error)
	GetAll() ([]*group.UserGroup, error)
	ReplaceMembers(g *group.UserGroup, members []user.User) error
	Update(g *group.UserGroup) error
	Delete(g *group.UserGroup) error
}

// EventRepository defines persistence operations for events
type EventRepository interface {
	Create(e *event.Event) error
	GetByID(id uuid.UUID) (*event.Event, error)
	GetAll() ([]*event.Event, error)
	GetByCreator(userID uuid.UUID) ([]*event.Event, error)
	Save(e *event.Event) error
	ReplaceInvitedUsers(e *event.Event, users []user.User) error
	Delete(e *event.Event) error
}

// PartecipationRepository defines persistence operations for
// generic-event attendance records
type PartecipationRepository interface {
	CreateAll(ps []*partecipation.Partecipation) error
	GetByID(id uuid.UUID) (*partecipation.Partecipation, error)
	GetAll() ([]*partecipation.Partecipation, error)
	GetByEventID(eventID uuid.UUID) ([]*partecipation.Partecipation, error)
	GetByUserID(userID uuid.UUID) ([]*partecipation.Partecipation, error)
	ExistingUserIDs(eventID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, error)
	Save(p *partecipation.Partecipation) error
	Delete(p *partecipation.Partecipation) error
	DeleteAllByEvent(eventID uuid.UUID) error
}

// FerieRepository defines persistence operations for vacation requests
type FerieRepository interface {
	Create(f *ferie.Ferie) error
	GetByID(id uuid.UUID) (*ferie.Ferie, error)
	GetAll() ([]*ferie.Ferie, error)
	GetByCreator(userID uuid.UUID) ([]*ferie.Ferie, error)
	Save(f *ferie.Ferie) error
	Delete(f *ferie.Ferie) error
	DeleteAllByEvent(eventID uuid.UUID) error
}

// ActivityRepository defines persistence operations for team-building activities
type ActivityRepository interface {
	Create(a *activity.Activity) error
	GetByID(id uuid.UUID) (*activity.Activity, error)
	GetByEventID(eventID uuid.UUID) ([]*activity.Activity, error)
	Save(a *activity.Activity) error
	Delete(a *activity.Activity) error
	DeleteAllByEvent(eventID uuid.UUID) error
}

// TeamBuildingRepository defines persistence operations for
// team-building sign-ups
type TeamBuildingRepository interface {
	Create(p *teambuilding.Partecipation) error
	GetByEventID(eventID uuid.UUID) ([]*teambuilding.Partecipation, error)
	GetByEventAndUser(eventID, userID uuid.UUID) ([]*teambuilding.Partecipation, error)
	DeleteAll(ps []*teambuilding.Partecipation) error
	DeleteAllByEvent(eventID uuid.UUID) error
}
