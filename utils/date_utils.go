package utils

import (
	"time"
)

func IsValidDate(dateStr string) bool {
	if dateStr == "" {
		return false
	}

	formats := []string{
		"2006-01-02",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-07:00",
		time.RFC3339,
	}

	for _, format := range formats {
		if _, err := time.Parse(format, dateStr); err == nil {
			return true
		}
	}

	return false
}

// SecondsToTime convertit un horodatage "secondes depuis epoch" (format
// exporté par l'ancien backend) en time.Time.
func SecondsToTime(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}
