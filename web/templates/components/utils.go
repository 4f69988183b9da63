package components

import (
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mergestat/timediff"
)

// FormatRelativeTime formats a time.Time as a relative time string like "3 days ago"
func FormatRelativeTime(t time.Time) string {
	return timediff.TimeDiff(t)
}

// FormatTimestamp formats a time.Time as an absolute UTC timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 MST")
}

// FormatCount formats a count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// DashboardURL returns the dashboard path for a username.
func DashboardURL(username string) string {
	return "/dashboard/" + url.PathEscape(username)
}
