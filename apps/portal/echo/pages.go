package echoportal

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core/announcement"
)

type pagesApi struct {
	announcementSvc *announcement.Service
}

func registerPages(e *echo.Echo, gate *sessionGate, announcementSvc *announcement.Service) {
	api := pagesApi{announcementSvc: announcementSvc}

	e.GET("/", api.home)
	e.GET("/dashboard", api.static("dashboard"), gate.requireStaff)
	e.GET("/results", api.static("results"), gate.requireStaff)
	e.GET("/timetable", api.static("timetable"), gate.requireStaff)
}

func (api *pagesApi) home(ctx echo.Context) error {
	recent, err := api.announcementSvc.Recent()
	if err != nil {
		return errors.Wrap(err, "querying recent announcements")
	}
	return render(ctx, "home", recent)
}

func (api *pagesApi) static(name string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return render(ctx, name, nil)
	}
}
