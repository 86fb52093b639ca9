package echoportal

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core/staff"
	"github.com/trezcool/schoolportal/core/student"
)

const (
	sessionName = "portal_session"

	sessionStaffKey   = "staff"
	sessionStudentKey = "student"

	contextStaffKey   = "staffUser"
	contextStudentKey = "student"

	staffLoginURL   = "/login"
	studentLoginURL = "/student-login"
)

// IdentityKind tells who a session belongs to. Staff and student identities are independent and may coexist.
type IdentityKind int

const (
	Anonymous IdentityKind = iota
	StaffOnly
	StudentOnly
	StaffAndStudent
)

// Identity is what a session remembers between requests.
type Identity struct {
	StaffUsername string
	StudentID     string
}

func (id Identity) Kind() IdentityKind {
	switch {
	case id.StaffUsername != "" && id.StudentID != "":
		return StaffAndStudent
	case id.StaffUsername != "":
		return StaffOnly
	case id.StudentID != "":
		return StudentOnly
	default:
		return Anonymous
	}
}

type sessionGate struct {
	store      sessions.Store
	staffSvc   *staff.Service
	studentSvc *student.Service
}

func newSessionGate(secret string, staffSvc *staff.Service, studentSvc *student.Service) *sessionGate {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(0) // browser session
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return &sessionGate{store: store, staffSvc: staffSvc, studentSvc: studentSvc}
}

// session returns the request session. A cookie that fails to decode yields a fresh session.
func (g *sessionGate) session(ctx echo.Context) *sessions.Session {
	sess, _ := g.store.Get(ctx.Request(), sessionName)
	return sess
}

func (g *sessionGate) identity(ctx echo.Context) Identity {
	sess := g.session(ctx)
	uname, _ := sess.Values[sessionStaffKey].(string)
	studentID, _ := sess.Values[sessionStudentKey].(string)
	return Identity{StaffUsername: uname, StudentID: studentID}
}

func (g *sessionGate) update(ctx echo.Context, key string, value string) error {
	sess := g.session(ctx)
	if value == "" {
		delete(sess.Values, key)
	} else {
		sess.Values[key] = value
	}
	return errors.Wrap(sess.Save(ctx.Request(), ctx.Response()), "saving session")
}

func (g *sessionGate) setStaff(ctx echo.Context, uname string) error {
	return g.update(ctx, sessionStaffKey, uname)
}

func (g *sessionGate) clearStaff(ctx echo.Context) error {
	return g.update(ctx, sessionStaffKey, "")
}

func (g *sessionGate) setStudent(ctx echo.Context, id string) error {
	return g.update(ctx, sessionStudentKey, id)
}

func (g *sessionGate) clearStudent(ctx echo.Context) error {
	return g.update(ctx, sessionStudentKey, "")
}

// requireStaff redirects to the staff login unless the session holds a known staff user.
func (g *sessionGate) requireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		uname := g.identity(ctx).StaffUsername
		if uname == "" {
			return ctx.Redirect(http.StatusFound, staffLoginURL)
		}
		usr, err := g.staffSvc.GetByUsername(uname)
		if err != nil {
			if errors.Cause(err) == staff.ErrNotFound {
				return ctx.Redirect(http.StatusFound, staffLoginURL)
			}
			return errors.Wrap(err, "finding staff user")
		}
		ctx.Set(contextStaffKey, usr)
		return next(ctx)
	}
}

// requireStudent redirects to the student login unless the session holds an existing student.
func (g *sessionGate) requireStudent(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := g.identity(ctx).StudentID
		if id == "" {
			return ctx.Redirect(http.StatusFound, studentLoginURL)
		}
		s, err := g.studentSvc.GetByID(id)
		if err != nil {
			if errors.Cause(err) == student.ErrNotFound {
				return ctx.Redirect(http.StatusFound, studentLoginURL)
			}
			return errors.Wrap(err, "finding student")
		}
		ctx.Set(contextStudentKey, s)
		return next(ctx)
	}
}

func getContextStaff(ctx echo.Context) (staff.User, bool) {
	usr, ok := ctx.Get(contextStaffKey).(staff.User)
	return usr, ok
}

func getContextStudent(ctx echo.Context) (student.Student, bool) {
	s, ok := ctx.Get(contextStudentKey).(student.Student)
	return s, ok
}
