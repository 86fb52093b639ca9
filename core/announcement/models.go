package announcement

import (
	"time"

	"github.com/trezcool/schoolportal/core"
)

// dateLayout matches the ISO-8601 strings the portal has always stored, eg. 2024-05-01T08:30:00.000Z
const dateLayout = "2006-01-02T15:04:05.000Z07:00"

type Announcement struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`      // human readable
	Date      string `json:"date,omitempty"` // machine readable
}

// IsRecent reports whether the announcement was posted at most `window` before `now`.
// Undated announcements are always recent; unparseable dates never are.
func (a Announcement) IsRecent(now time.Time, window time.Duration) bool {
	if a.Date == "" {
		return true
	}
	posted, err := time.Parse(time.RFC3339, a.Date)
	if err != nil {
		return false
	}
	return now.Sub(posted) <= window
}

type NewAnnouncement struct {
	Message string `form:"message" validate:"required"`
}

func (na *NewAnnouncement) Clean() {
	na.Message = core.CleanString(na.Message)
}
