package echoportal

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core/teacher"
)

type teacherApi struct {
	svc *teacher.Service
}

func registerTeacherAPI(e *echo.Echo, gate *sessionGate, svc *teacher.Service) {
	api := teacherApi{svc: svc}

	g := e.Group("/teachers", gate.requireStaff)
	g.GET("", api.form)
	g.POST("", api.create)
	g.GET("/list", api.query)
	g.POST("/delete", api.destroy)
}

// Handlers

func (api *teacherApi) form(ctx echo.Context) error {
	return render(ctx, "teacher_form", teacher.ClassLabels)
}

func (api *teacherApi) create(ctx echo.Context) error {
	var data teacher.NewTeacher
	if err := bindForm(ctx, &data, "NewTeacher"); err != nil {
		return err
	}

	t, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating teacher")
	}

	return renderMessage(
		ctx,
		"✅ Teacher Registered Successfully",
		"Name: "+t.FullName,
		link{"/teachers", "⬅ Register Another"},
		link{"/teachers/list", "📋 View All"},
		link{"/dashboard", "🏠 Dashboard"},
	)
}

func (api *teacherApi) query(ctx echo.Context) error {
	teachers, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	return render(ctx, "teacher_list", teachers)
}

func (api *teacherApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.FormValue("id")); err != nil {
		return errors.Wrap(err, "deleting teacher")
	}
	return ctx.Redirect(http.StatusFound, "/teachers/list")
}
