package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/user"
	"github.com/gravadigital/eventi-api/internal/storage/memory"
)

// testStack wires every service against shared in-memory repositories
type testStack struct {
	users          *memory.UserRepository
	groups         *memory.GroupRepository
	events         *memory.EventRepository
	partecipations *memory.PartecipationRepository
	ferie          *memory.FerieRepository
	activities     *memory.ActivityRepository
	teamBuilding   *memory.TeamBuildingRepository

	eventService         *EventService
	partecipationService *PartecipationService
	ferieService         *FerieService
	activityService      *ActivityService
	teamBuildingService  *TeamBuildingService
	userService          *UserService
}

func newTestStack() *testStack {
	s := &testStack{
		users:          memory.NewUserRepository(),
		groups:         memory.NewGroupRepository(),
		events:         memory.NewEventRepository(),
		partecipations: memory.NewPartecipationRepository(),
		ferie:          memory.NewFerieRepository(),
		activities:     memory.NewActivityRepository(),
		teamBuilding:   memory.NewTeamBuildingRepository(),
	}

	s.partecipationService = NewPartecipationService(s.partecipations, s.events, s.users)
	s.eventService = NewEventService(
		s.events, s.users, s.partecipationService,
		s.partecipations, s.ferie, s.activities, s.teamBuilding)
	s.ferieService = NewFerieService(s.ferie, s.events)
	s.activityService = NewActivityService(s.activities, s.events)
	s.teamBuildingService = NewTeamBuildingService(s.teamBuilding, s.events, s.activities)
	s.userService = NewUserService(s.users, s.groups)

	return s
}

func (s *testStack) addUser(email string, role user.Role) *user.User {
	u := user.New(email, email)
	u.ID = uuid.New()
	u.Role = role
	_ = s.users.Create(u)
	return u
}

// futureDate returns today plus the given number of days
func futureDate(days int) time.Time {
	return event.Today().AddDate(0, 0, days)
}
