package echoportal

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core/student"
)

type studentApi struct {
	svc *student.Service
}

type studentList struct {
	Search   string
	Students []student.Student
}

func registerStudentAPI(e *echo.Echo, gate *sessionGate, svc *student.Service) {
	api := studentApi{svc: svc}

	g := e.Group("/students", gate.requireStaff)
	g.GET("", api.form)
	g.POST("", api.create)
	g.GET("/list", api.query)
	g.POST("/delete", api.destroy)
}

// Handlers

func (api *studentApi) form(ctx echo.Context) error {
	return render(ctx, "student_form", nil)
}

func (api *studentApi) create(ctx echo.Context) error {
	var data student.NewStudent
	if err := bindForm(ctx, &data, "NewStudent"); err != nil {
		return err
	}

	s, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}

	return renderMessage(
		ctx,
		"✅ Student Registered Successfully",
		"Name: "+s.FullName,
		link{"/students", "⬅ Register Another"},
		link{"/students/list", "📋 View All"},
		link{"/dashboard", "🏠 Dashboard"},
	)
}

func (api *studentApi) query(ctx echo.Context) error {
	var filter student.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	search := filter.Search
	filter.Clean()

	students, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "filtering students")
	}
	return render(ctx, "student_list", studentList{Search: search, Students: students})
}

func (api *studentApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.FormValue("id")); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.Redirect(http.StatusFound, "/students/list")
}
