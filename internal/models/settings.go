package models

// Settings are the persisted application preferences.
type Settings struct {
	Timezone string `json:"timezone"` // IANA name, "Local" or empty for system
	LogDays  int    `json:"log_days"` // window for the habit log grid
}
