package echoportal

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/announcement"
)

func Test_announcementApi(t *testing.T) {
	app := setup(t)
	c := newClient(t, app)

	// posted before the recency window
	_, err := app.db.Announcements.CreateAnnouncement(announcement.Announcement{
		Message:   "Old news",
		Timestamp: "1/2/2020, 8:00:00 AM",
		Date:      time.Now().Add(-8 * 24 * time.Hour).UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)

	checkPage(t, c.get("/"), "No recent announcements.")

	c.loginStaff("admin", "s3cret")

	t.Run("post", func(t *testing.T) {
		now := time.Now().Add(-time.Hour).Truncate(time.Second)
		core.NowFunc = func() time.Time { return now }
		defer func() { core.NowFunc = time.Now }()

		checkRedirect(t, c.postForm("/admin/announcements", url.Values{"message": {"Sports day on Friday"}}), "/admin/announcements")
		checkPage(t, c.get("/admin/announcements"), "Sports day on Friday", now.Format(core.DisplayTimeLayout), "Old news")
	})

	t.Run("missing message", func(t *testing.T) {
		checkPage(t, c.postForm("/admin/announcements", url.Values{"message": {"   "}}), "message is required")
		all, err := app.db.Announcements.QueryAllAnnouncements()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("home shows recent only", func(t *testing.T) {
		rec := c.get("/")
		checkPage(t, rec, "Latest Announcements", "Sports day on Friday")
		assert.NotContains(t, rec.Body.String(), "Old news")
	})

	t.Run("delete ignores bad indexes", func(t *testing.T) {
		for _, idx := range []string{"", "abc", "5", "-1"} {
			checkRedirect(t, c.postForm("/admin/announcements/delete", url.Values{"index": {idx}}), "/admin/announcements")
		}
		all, err := app.db.Announcements.QueryAllAnnouncements()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("delete by index", func(t *testing.T) {
		checkRedirect(t, c.postForm("/admin/announcements/delete", url.Values{"index": {"1"}}), "/admin/announcements")
		all, err := app.db.Announcements.QueryAllAnnouncements()
		require.NoError(t, err)
		if assert.Len(t, all, 1) {
			assert.Equal(t, "Sports day on Friday", all[0].Message)
		}
	})
}
