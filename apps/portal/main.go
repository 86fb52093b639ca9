package main

import (
	"context"
	"fmt"
	"log"
	"os"

	echoportal "github.com/trezcool/schoolportal/apps/portal/echo"
	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/announcement"
	"github.com/trezcool/schoolportal/core/staff"
	"github.com/trezcool/schoolportal/core/student"
	"github.com/trezcool/schoolportal/core/teacher"
	"github.com/trezcool/schoolportal/core/upload"
	emailsvc "github.com/trezcool/schoolportal/services/email"
	logsvc "github.com/trezcool/schoolportal/services/logger"
	"github.com/trezcool/schoolportal/storage/database"
	filestore "github.com/trezcool/schoolportal/storage/files"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "PORTAL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	// set up storage
	db, err := database.Open(conf, dbLogger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
	}
	files, err := filestore.NewDiskStore(conf.UploadDir)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening upload directory: %v", err), err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug || conf.SendgridApiKey == "" {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	// =========================================================================
	// Start Portal Service

	server, err := echoportal.NewServer(
		echoportal.Deps{
			Conf:            conf,
			Logger:          logger,
			Validator:       core.NewValidator(),
			StaffSvc:        staff.NewService(db.Staff),
			StudentSvc:      student.NewService(db.Students),
			TeacherSvc:      teacher.NewService(db.Teachers, mailSvc, conf),
			AnnouncementSvc: announcement.NewService(db.Announcements, conf),
			UploadSvc:       upload.NewService(db.Uploads, files),
		},
	)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up server: %v", err), err)
	}

	go func() {
		logger.Info(fmt.Sprintf("Listening on %s", conf.Server.Address))
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
