package util //nolint:revive // package name util hosts shared helpers used across layers

import "time"

// FormatRuntime formats a runtime reported in whole seconds for display.
// Returns "—" for zero or negative values.
func FormatRuntime(seconds int64) string {
	if seconds <= 0 {
		return "—"
	}
	return (time.Duration(seconds) * time.Second).String()
}

// FormatUnix formats a unix-seconds timestamp as RFC 3339 in UTC.
// Returns "—" when the timestamp is unset.
func FormatUnix(ts int64) string {
	if ts <= 0 {
		return "—"
	}
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
