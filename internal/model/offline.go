package model

import "time"

// OfflineStatus represents the status of an offline save task
type OfflineStatus string

const (
	// OfflineStatusPending means the task is queued but not started
	OfflineStatusPending OfflineStatus = "Pending"

	// OfflineStatusFetching means the media download is in progress
	OfflineStatusFetching OfflineStatus = "Fetching"

	// OfflineStatusStopped means the task was stopped by the user
	OfflineStatusStopped OfflineStatus = "Stopped"

	// OfflineStatusCompleted means the media is available locally
	OfflineStatusCompleted OfflineStatus = "Completed"

	// OfflineStatusError means the task failed with an error
	OfflineStatusError OfflineStatus = "Error"
)

// String returns the string representation of OfflineStatus.
func (os OfflineStatus) String() string {
	return string(os)
}

// IsActive returns true if the task is still doing work.
func (os OfflineStatus) IsActive() bool {
	return os == OfflineStatusPending || os == OfflineStatusFetching
}

// IsFinished returns true if the task reached a terminal state.
func (os OfflineStatus) IsFinished() bool {
	return os == OfflineStatusCompleted || os == OfflineStatusStopped || os == OfflineStatusError
}

// OfflineTask tracks one saved reel being fetched for offline playback.
type OfflineTask struct {
	ID         string
	ReelID     string
	MediaURL   string
	Title      string
	Status     OfflineStatus
	Progress   float64 // 0.0 to 1.0, -1 when total size is unknown
	LocalPath  string  // path to the stored media file
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}
