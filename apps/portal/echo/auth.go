package echoportal

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core/staff"
	"github.com/trezcool/schoolportal/core/student"
	"github.com/trezcool/schoolportal/core/teacher"
)

const notAssigned = "Not assigned"

type authApi struct {
	gate       *sessionGate
	staffSvc   *staff.Service
	studentSvc *student.Service
	teacherSvc *teacher.Service
}

type studentDashboard struct {
	Student      student.Student
	ClassTeacher string
	ResultURL    string
	NotesURL     string
}

func registerAuthAPI(
	e *echo.Echo,
	gate *sessionGate,
	staffSvc *staff.Service,
	studentSvc *student.Service,
	teacherSvc *teacher.Service,
) {
	api := authApi{
		gate:       gate,
		staffSvc:   staffSvc,
		studentSvc: studentSvc,
		teacherSvc: teacherSvc,
	}

	// staff
	e.GET("/register", api.registerForm)
	e.POST("/register", api.register)
	e.GET("/login", api.loginForm)
	e.POST("/login", api.login)
	e.GET("/logout", api.logout)

	// students
	e.GET("/student-login", api.studentLoginForm)
	e.POST("/student-login", api.studentLogin)
	e.GET("/student-logout", api.studentLogout)
	e.GET("/student-dashboard", api.studentDashboard, gate.requireStudent)
}

// Handlers

func (api *authApi) registerForm(ctx echo.Context) error {
	return render(ctx, "register", nil)
}

func (api *authApi) register(ctx echo.Context) error {
	var data staff.NewUser
	if err := bindForm(ctx, &data, "NewUser"); err != nil {
		return err
	}

	if _, err := api.staffSvc.Register(data); err != nil {
		if errors.Cause(err) == staff.ErrUsernameExists {
			return renderMessage(ctx, "User already exists. Try logging in.", "", link{"/login", "Login"})
		}
		return errors.Wrap(err, "registering staff user")
	}
	return renderMessage(ctx, "Registration successful!", "", link{"/login", "Login"})
}

func (api *authApi) loginForm(ctx echo.Context) error {
	return render(ctx, "login", nil)
}

func (api *authApi) login(ctx echo.Context) error {
	var data staff.Credentials
	if err := bindForm(ctx, &data, "Credentials"); err != nil {
		return err
	}

	usr, err := api.staffSvc.Authenticate(data)
	if err != nil {
		if errors.Cause(err) == staff.ErrInvalidCredentials {
			return renderMessage(ctx, "Invalid login.", "", link{"/login", "Try again"})
		}
		return errors.Wrap(err, "authenticating staff user")
	}
	if err = api.gate.setStaff(ctx, usr.Username); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusFound, "/dashboard")
}

func (api *authApi) logout(ctx echo.Context) error {
	if err := api.gate.clearStaff(ctx); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusFound, "/")
}

func (api *authApi) studentLoginForm(ctx echo.Context) error {
	return render(ctx, "student_login", nil)
}

func (api *authApi) studentLogin(ctx echo.Context) error {
	var data student.Credentials
	if err := bindForm(ctx, &data, "student.Credentials"); err != nil {
		return err
	}

	s, err := api.studentSvc.Authenticate(data)
	if err != nil {
		if errors.Cause(err) == student.ErrInvalidCredentials {
			return renderMessage(ctx, "❌ Invalid name or password.", "", link{studentLoginURL, "Try Again"})
		}
		return errors.Wrap(err, "authenticating student")
	}
	if err = api.gate.setStudent(ctx, s.ID); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusFound, "/student-dashboard")
}

func (api *authApi) studentLogout(ctx echo.Context) error {
	if err := api.gate.clearStudent(ctx); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusFound, studentLoginURL)
}

func (api *authApi) studentDashboard(ctx echo.Context) error {
	s, ok := getContextStudent(ctx)
	if !ok {
		return ctx.Redirect(http.StatusFound, studentLoginURL)
	}

	classTeacher := notAssigned
	t, err := api.teacherSvc.FindByClass(s.Class)
	switch {
	case err == nil:
		classTeacher = t.FullName
	case errors.Cause(err) != teacher.ErrNotFound:
		return errors.Wrap(err, "finding class teacher")
	}

	return render(ctx, "student_dashboard", studentDashboard{
		Student:      s,
		ClassTeacher: classTeacher,
		ResultURL:    "/uploads/results/" + s.ResultFile(),
		NotesURL:     "/uploads/notes/" + s.NotesFile(),
	})
}
