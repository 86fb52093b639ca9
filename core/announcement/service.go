package announcement

import (
	"time"

	"github.com/trezcool/schoolportal/core"
)

type (
	Repository interface {
		// CreateAnnouncement inserts at the head of the list: newest first.
		CreateAnnouncement(a Announcement) (Announcement, error)
		QueryAllAnnouncements() ([]Announcement, error)
		// DeleteAnnouncementAt removes the entry at `index`. Out of range indexes are ignored.
		DeleteAnnouncementAt(index int) error
	}

	Service struct {
		repo   Repository
		window time.Duration
	}
)

func NewService(repo Repository, conf *core.Config) *Service {
	return &Service{repo: repo, window: conf.AnnouncementWindow}
}

func (svc *Service) Post(na NewAnnouncement) (Announcement, error) {
	now := core.NowFunc()
	a := Announcement{
		Message:   na.Message,
		Timestamp: now.Format(core.DisplayTimeLayout),
		Date:      now.UTC().Format(dateLayout),
	}
	return svc.repo.CreateAnnouncement(a)
}

func (svc *Service) QueryAll() ([]Announcement, error) {
	return svc.repo.QueryAllAnnouncements()
}

// Recent returns the announcements posted within the configured window, newest first.
func (svc *Service) Recent() ([]Announcement, error) {
	all, err := svc.repo.QueryAllAnnouncements()
	if err != nil {
		return nil, err
	}
	now := core.NowFunc()
	recent := make([]Announcement, 0, len(all))
	for _, a := range all {
		if a.IsRecent(now, svc.window) {
			recent = append(recent, a)
		}
	}
	return recent, nil
}

func (svc *Service) Delete(index int) error {
	return svc.repo.DeleteAnnouncementAt(index)
}
