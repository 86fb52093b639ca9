package echoportal

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core/announcement"
)

const announcementsURL = "/admin/announcements"

type announcementApi struct {
	svc *announcement.Service
}

func registerAnnouncementAPI(e *echo.Echo, gate *sessionGate, svc *announcement.Service) {
	api := announcementApi{svc: svc}

	g := e.Group(announcementsURL, gate.requireStaff)
	g.GET("", api.query)
	g.POST("", api.create)
	g.POST("/delete", api.destroy)
}

// Handlers

func (api *announcementApi) query(ctx echo.Context) error {
	all, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying announcements")
	}
	return render(ctx, "announcements", all)
}

func (api *announcementApi) create(ctx echo.Context) error {
	var data announcement.NewAnnouncement
	if err := bindForm(ctx, &data, "NewAnnouncement"); err != nil {
		return err
	}
	if _, err := api.svc.Post(data); err != nil {
		return errors.Wrap(err, "posting announcement")
	}
	return ctx.Redirect(http.StatusFound, announcementsURL)
}

// destroy deletes by list position. Non numeric indexes are ignored.
func (api *announcementApi) destroy(ctx echo.Context) error {
	if idx, err := strconv.Atoi(ctx.FormValue("index")); err == nil {
		if err = api.svc.Delete(idx); err != nil {
			return errors.Wrap(err, "deleting announcement")
		}
	}
	return ctx.Redirect(http.StatusFound, announcementsURL)
}
