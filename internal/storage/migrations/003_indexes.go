package migrations

import "gorm.io/gorm"

// migration003Up creates performance indexes
func migration003Up(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)",

		"CREATE INDEX IF NOT EXISTS idx_events_creator ON events(created_by_id)",
		"CREATE INDEX IF NOT EXISTS idx_events_type ON events(event_type)",
		"CREATE INDEX IF NOT EXISTS idx_events_dates ON events(start_date, end_date)",

		"CREATE INDEX IF NOT EXISTS idx_event_invited_users_event ON event_invited_users(event_id)",
		"CREATE INDEX IF NOT EXISTS idx_event_invited_users_user ON event_invited_users(user_id)",

		"CREATE UNIQUE INDEX IF NOT EXISTS idx_partecipations_event_user ON partecipations(event_id, user_id)",
		"CREATE INDEX IF NOT EXISTS idx_partecipations_user ON partecipations(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_partecipations_status ON partecipations(status)",

		"CREATE INDEX IF NOT EXISTS idx_ferie_event ON ferie(event_id)",
		"CREATE INDEX IF NOT EXISTS idx_ferie_creator ON ferie(created_by_id)",
		"CREATE INDEX IF NOT EXISTS idx_ferie_status ON ferie(status)",

		"CREATE INDEX IF NOT EXISTS idx_activities_event ON activities(event_id)",
		"CREATE INDEX IF NOT EXISTS idx_activities_creator ON activities(created_by_id)",

		"CREATE INDEX IF NOT EXISTS idx_team_building_partecipations_event ON team_building_partecipations(event_id)",
		"CREATE INDEX IF NOT EXISTS idx_team_building_partecipations_user ON team_building_partecipations(user_id)",
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			return err
		}
	}

	return nil
}

// migration003Down drops performance indexes
func migration003Down(db *gorm.DB) error {
	indexes := []string{
		"idx_users_email",
		"idx_users_role",
		"idx_events_creator",
		"idx_events_type",
		"idx_events_dates",
		"idx_event_invited_users_event",
		"idx_event_invited_users_user",
		"idx_partecipations_event_user",
		"idx_partecipations_user",
		"idx_partecipations_status",
		"idx_ferie_event",
		"idx_ferie_creator",
		"idx_ferie_status",
		"idx_activities_event",
		"idx_activities_creator",
		"idx_team_building_partecipations_event",
		"idx_team_building_partecipations_user",
	}

	for _, index := range indexes {
		if err := db.Exec("DROP INDEX IF EXISTS " + index).Error; err != nil {
			return err
		}
	}

	return nil
}
