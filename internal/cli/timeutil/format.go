// Package timeutil provides time formatting utilities for CLI output.
package timeutil

import "time"

// LocalTimeFormat is the format used for displaying local times in CLI output.
// Uses Go's reference time: Mon Jan 2 15:04:05 2006.
const LocalTimeFormat = "Mon Jan 2 15:04:05 2006"

// storedFormat is the layout snapshots record their taken_at timestamp in.
const storedFormat = "2006-01-02 15:04:05"

// FormatTime parses a snapshot's stored timestamp and returns a local time
// string. Returns the original string if parsing fails.
func FormatTime(timestamp string) string {
	t, err := time.Parse(storedFormat, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Local().Format(LocalTimeFormat)
}
