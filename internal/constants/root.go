package constants

import "time"

const (
	AppName           = "hamster"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/hamster/hamster.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// GamificationRecordID is the fixed key of the singleton gamification record
	GamificationRecordID = "current"

	// StreakScanLimit bounds the backward streak walk so it always terminates
	StreakScanLimit = 400

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "hamster-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.pellegrino.hamster"

	// StreakRiskHour is the hour (local) after which an unfinished day is
	// flagged as putting the streak at risk
	StreakRiskHour = 20
)
