package constants

const (
	AppName           = "groove"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/groove/groove.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultTargetCount is the number of completions needed to satisfy a habit
	// on a due day when no explicit target is set.
	DefaultTargetCount = 1

	// DefaultLogDays is the default window for the habit log grid.
	DefaultLogDays = 14

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "groove-"
	BackupFileSuffix = ".db"
)
