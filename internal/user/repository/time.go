package repository

import "time"

// nowUTC returns the current time truncated to the microsecond precision of DATETIME(6).
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
