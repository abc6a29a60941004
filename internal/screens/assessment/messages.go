package assessment

import "time"

// taskDueMsg is delivered when a scheduled navigator task's delay elapses.
type taskDueMsg struct {
	ID int
}

// spinnerTickMsg animates the analyzing indicator.
type spinnerTickMsg time.Time
