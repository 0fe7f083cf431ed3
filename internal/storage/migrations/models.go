package migrations

import (
	"github.com/gravadigital/eventi-api/internal/domain/activity"
	"github.com/gravadigital/eventi-api/internal/domain/event"
	"github.com/gravadigital/eventi-api/internal/domain/ferie"
	"github.com/gravadigital/eventi-api/internal/domain/group"
	"github.com/gravadigital/eventi-api/internal/domain/partecipation"
	"github.com/gravadigital/eventi-api/internal/domain/teambuilding"
	"github.com/gravadigital/eventi-api/internal/domain/user"
)

// AllModels returns every model handled by AutoMigrate, in dependency order
func AllModels() []interface{} {
	return []interface{}{
		&user.User{},
		&group.UserGroup{},
		&event.Event{},
		&partecipation.Partecipation{},
		&ferie.Ferie{},
		&activity.Activity{},
		&teambuilding.Partecipation{},
	}
}
