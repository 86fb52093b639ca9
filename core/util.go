package core

import (
	"strings"
	"time"
)

// NowFunc is the clock used for timestamps. mockable
var NowFunc = time.Now

// DisplayTimeLayout formats human-readable timestamps shown next to announcements and uploads.
const DisplayTimeLayout = "1/2/2006, 3:04:05 PM"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}
