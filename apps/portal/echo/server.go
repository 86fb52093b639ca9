package echoportal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/announcement"
	"github.com/trezcool/schoolportal/core/staff"
	"github.com/trezcool/schoolportal/core/student"
	"github.com/trezcool/schoolportal/core/teacher"
	"github.com/trezcool/schoolportal/core/upload"
	appfs "github.com/trezcool/schoolportal/fs"
)

type (
	Deps struct {
		Conf            *core.Config
		Logger          core.Logger
		Validator       *core.Validator
		StaffSvc        *staff.Service
		StudentSvc      *student.Service
		TeacherSvc      *teacher.Service
		AnnouncementSvc *announcement.Service
		UploadSvc       *upload.Service
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(ctx context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		deps     Deps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps Deps) (Server, error) {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	if err := s.setup(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *server) setup() error {
	conf := s.deps.Conf

	renderer, err := newTemplateRenderer(appfs.FS, conf.AppName)
	if err != nil {
		return errors.Wrap(err, "parsing templates")
	}

	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.Server.DisableRequestLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(middleware.BodyLimit(conf.Server.MaxUploadBytes))

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger)
	s.app.Validator = formValidator{s.deps.Validator}
	s.app.Renderer = renderer
	s.app.Debug = conf.Debug

	s.app.StaticFS("/static", echo.MustSubFS(appfs.FS, "static"))

	gate := newSessionGate(conf.SecretKey, s.deps.StaffSvc, s.deps.StudentSvc)

	registerPages(s.app, gate, s.deps.AnnouncementSvc)
	registerAuthAPI(s.app, gate, s.deps.StaffSvc, s.deps.StudentSvc, s.deps.TeacherSvc)
	registerStudentAPI(s.app, gate, s.deps.StudentSvc)
	registerTeacherAPI(s.app, gate, s.deps.TeacherSvc)
	registerAnnouncementAPI(s.app, gate, s.deps.AnnouncementSvc)
	registerUploadAPI(s.app, gate, s.deps.UploadSvc)
	return nil
}

// Start listens on the configured address. Listener failures are sent to Errors().
func (s *server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	if err := s.app.Start(s.deps.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errors
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
