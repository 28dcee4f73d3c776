package validators

import "time"

// ISO8601Micro is the response timestamp format: UTC, microseconds, no zone suffix
const ISO8601Micro = "2006-01-02T15:04:05.000000"

// FormatUTCTimestamp formats time.Time to a UTC ISO 8601 string
// Always returns format: 2024-01-01T00:00:00.000000
func FormatUTCTimestamp(t time.Time) string {
	return t.UTC().Format(ISO8601Micro)
}
