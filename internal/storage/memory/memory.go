// Package memory provides in-memory repository implementations used by
// the service tests. They mirror the behavior of the PostgreSQL
// repositories, including the (nil, nil) convention for missing records.
package memory

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/domain/activity"
	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/ferie"
	"github.com/gravadigital/eventi-api/internal/domain/group"
	"github.com/gravadigital/eventi-api/internal/domain/partecipation"
	"github.com/gravadigital/eventi-api/internal/domain/teambuilding"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

// UserRepository is an in-memory UserRepository
type UserRepository struct {
	users []*user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(u *user.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users = append(r.users, u)
	return nil
}

func (r *UserRepository) GetByID(id uuid.UUID) (*user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByEmail(email string) (*user.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByIDs(ids []uuid.UUID) ([]*user.User, error) {
	found := []*user.User{}
	for _, u := range r.users {
		for _, id := range ids {
			if u.ID == id {
				found = append(found, u)
				break
			}
		}
	}
	return found, nil
}

func (r *UserRepository) GetByEmails(emails []string) ([]*user.User, error) {
	found := []*user.User{}
	for _, u := range r.users {
		for _, email := range emails {
			if strings.EqualFold(u.Email, email) {
				found = append(found, u)
				break
			}
		}
	}
	return found, nil
}

func (r *UserRepository) GetAll() ([]*user.User, error) {
	return append([]*user.User{}, r.users...), nil
}

func (r *UserRepository) Update(u *user.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			r.users[i] = u
			return nil
		}
	}
	r.users = append(r.users, u)
	return nil
}

// GroupRepository is an in-memory GroupRepository
type GroupRepository struct {
	groups []*group.UserGroup
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{}
}

func (r *GroupRepository) Create(g *group.UserGroup) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.groups = append(r.groups, g)
	return nil
}

func (r *GroupRepository) GetByID(id uuid.UUID) (*group.UserGroup, error) {
	for _, g := range r.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (r *GroupRepository) GetAll() ([]*group.UserGroup, error) {
	return append([]*group.UserGroup{}, r.groups...), nil
}

func (r *GroupRepository) ReplaceMembers(g *group.UserGroup, members []user.User) error {
	g.Members = members
	return nil
}

func (r *GroupRepository) Update(g *group.UserGroup) error {
	for i, existing := range r.groups {
		if existing.ID == g.ID {
			r.groups[i] = g
			return nil
		}
	}
	return nil
}

func (r *GroupRepository) Delete(g *group.UserGroup) error {
	for i, existing := range r.groups {
		if existing.ID == g.ID {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			return nil
		}
	}
	return nil
}

// EventRepository is an in-memory EventRepository
type EventRepository struct {
	events []*event.Event
}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(e *event.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.events = append(r.events, e)
	return nil
}

func (r *EventRepository) GetByID(id uuid.UUID) (*event.Event, error) {
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *EventRepository) GetAll() ([]*event.Event, error) {
	return append([]*event.Event{}, r.events...), nil
}

func (r *EventRepository) GetByCreator(userID uuid.UUID) ([]*event.Event, error) {
	found := []*event.Event{}
	for _, e := range r.events {
		if e.CreatedByID == userID {
			found = append(found, e)
		}
	}
	return found, nil
}

func (r *EventRepository) Save(e *event.Event) error {
	for i, existing := range r.events {
		if existing.ID == e.ID {
			r.events[i] = e
			return nil
		}
	}
	r.events = append(r.events, e)
	return nil
}

func (r *EventRepository) ReplaceInvitedUsers(e *event.Event, users []user.User) error {
	e.InvitedUsers = users
	return nil
}

func (r *EventRepository) Delete(e *event.Event) error {
	for i, existing := range r.events {
		if existing.ID == e.ID {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return nil
}

// PartecipationRepository is an in-memory PartecipationRepository
type PartecipationRepository struct {
	partecipations []*partecipation.Partecipation
}

func NewPartecipationRepository() *PartecipationRepository {
	return &PartecipationRepository{}
}

func (r *PartecipationRepository) CreateAll(ps []*partecipation.Partecipation) error {
	for _, p := range ps {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.partecipations = append(r.partecipations, p)
	}
	return nil
}

func (r *PartecipationRepository) GetByID(id uuid.UUID) (*partecipation.Partecipation, error) {
	for _, p := range r.partecipations {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *PartecipationRepository) GetAll() ([]*partecipation.Partecipation, error) {
	return append([]*partecipation.Partecipation{}, r.partecipations...), nil
}

func (r *PartecipationRepository) GetByEventID(eventID uuid.UUID) ([]*partecipation.Partecipation, error) {
	found := []*partecipation.Partecipation{}
	for _, p := range r.partecipations {
		if p.EventID == eventID {
			found = append(found, p)
		}
	}
	return found, nil
}

func (r *PartecipationRepository) GetByUserID(userID uuid.UUID) ([]*partecipation.Partecipation, error) {
	found := []*partecipation.Partecipation{}
	for _, p := range r.partecipations {
		if p.UserID == userID {
			found = append(found, p)
		}
	}
	return found, nil
}

func (r *PartecipationRepository) ExistingUserIDs(eventID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, error) {
	existing := []uuid.UUID{}
	for _, p := range r.partecipations {
		if p.EventID != eventID {
			continue
		}
		for _, id := range userIDs {
			if p.UserID == id {
				existing = append(existing, id)
				break
			}
		}
	}
	return existing, nil
}

func (r *PartecipationRepository) Save(p *partecipation.Partecipation) error {
	for i, existing := range r.partecipations {
		if existing.ID == p.ID {
			r.partecipations[i] = p
			return nil
		}
	}
	r.partecipations = append(r.partecipations, p)
	return nil
}

func (r *PartecipationRepository) Delete(p *partecipation.Partecipation) error {
	for i, existing := range r.partecipations {
		if existing.ID == p.ID {
			r.partecipations = append(r.partecipations[:i], r.partecipations[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *PartecipationRepository) DeleteAllByEvent(eventID uuid.UUID) error {
	kept := r.partecipations[:0]
	for _, p := range r.partecipations {
		if p.EventID != eventID {
			kept = append(kept, p)
		}
	}
	r.partecipations = kept
	return nil
}

// FerieRepository is an in-memory FerieRepository
type FerieRepository struct {
	ferie []*ferie.Ferie
}

func NewFerieRepository() *FerieRepository {
	return &FerieRepository{}
}

func (r *FerieRepository) Create(f *ferie.Ferie) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.ferie = append(r.ferie, f)
	return nil
}

func (r *FerieRepository) GetByID(id uuid.UUID) (*ferie.Ferie, error) {
	for _, f := range r.ferie {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, nil
}

func (r *FerieRepository) GetAll() ([]*ferie.Ferie, error) {
	return append([]*ferie.Ferie{}, r.ferie...), nil
}

func (r *FerieRepository) GetByCreator(userID uuid.UUID) ([]*ferie.Ferie, error) {
	found := []*ferie.Ferie{}
	for _, f := range r.ferie {
		if f.CreatedByID == userID {
			found = append(found, f)
		}
	}
	return found, nil
}

func (r *FerieRepository) Save(f *ferie.Ferie) error {
	for i, existing := range r.ferie {
		if existing.ID == f.ID {
			r.ferie[i] = f
			return nil
		}
	}
	r.ferie = append(r.ferie, f)
	return nil
}

func (r *FerieRepository) Delete(f *ferie.Ferie) error {
	for i, existing := range r.ferie {
		if existing.ID == f.ID {
			r.ferie = append(r.ferie[:i], r.ferie[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *FerieRepository) DeleteAllByEvent(eventID uuid.UUID) error {
	kept := r.ferie[:0]
	for _, f := range r.ferie {
		if f.EventID != eventID {
			kept = append(kept, f)
		}
	}
	r.ferie = kept
	return nil
}

// ActivityRepository is an in-memory ActivityRepository
type ActivityRepository struct {
	activities []*activity.Activity
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Create(a *activity.Activity) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.activities = append(r.activities, a)
	return nil
}

func (r *ActivityRepository) GetByID(id uuid.UUID) (*activity.Activity, error) {
	for _, a := range r.activities {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *ActivityRepository) GetByEventID(eventID uuid.UUID) ([]*activity.Activity, error) {
	found := []*activity.Activity{}
	for _, a := range r.activities {
		if a.EventID == eventID {
			found = append(found, a)
		}
	}
	return found, nil
}

func (r *ActivityRepository) Save(a *activity.Activity) error {
	for i, existing := range r.activities {
		if existing.ID == a.ID {
			r.activities[i] = a
			return nil
		}
	}
	r.activities = append(r.activities, a)
	return nil
}

func (r *ActivityRepository) Delete(a *activity.Activity) error {
	for i, existing := range r.activities {
		if existing.ID == a.ID {
			r.activities = append(r.activities[:i], r.activities[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *ActivityRepository) DeleteAllByEvent(eventID uuid.UUID) error {
	kept := r.activities[:0]
	for _, a := range r.activities {
		if a.EventID != eventID {
			kept = append(kept, a)
		}
	}
	r.activities = kept
	return nil
}

// TeamBuildingRepository is an in-memory TeamBuildingRepository
type TeamBuildingRepository struct {
	partecipations []*teambuilding.Partecipation
}

func NewTeamBuildingRepository() *TeamBuildingRepository {
	return &TeamBuildingRepository{}
}

func (r *TeamBuildingRepository) Create(p *teambuilding.Partecipation) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.partecipations = append(r.partecipations, p)
	return nil
}

func (r *TeamBuildingRepository) GetByEventID(eventID uuid.UUID) ([]*teambuilding.Partecipation, error) {
	found := []*teambuilding.Partecipation{}
	for _, p := range r.partecipations {
		if p.EventID == eventID {
			found = append(found, p)
		}
	}
	return found, nil
}

func (r *TeamBuildingRepository) GetByEventAndUser(eventID, userID uuid.UUID) ([]*teambuilding.Partecipation, error) {
	found := []*teambuilding.Partecipation{}
	for _, p := range r.partecipations {
		if p.EventID == eventID && p.UserID == userID {
			found = append(found, p)
		}
	}
	return found, nil
}

func (r *TeamBuildingRepository) DeleteAll(ps []*teambuilding.Partecipation) error {
	for _, target := range ps {
		for i, existing := range r.partecipations {
			if existing.ID == target.ID {
				r.partecipations = append(r.partecipations[:i], r.partecipations[i+1:]...)
				break
			}
		}
	}
	return nil
}

func (r *TeamBuildingRepository) DeleteAllByEvent(eventID uuid.UUID) error {
	kept := r.partecipations[:0]
	for _, p := range r.partecipations {
		if p.EventID != eventID {
			kept = append(kept, p)
		}
	}
	r.partecipations = kept
	return nil
}
