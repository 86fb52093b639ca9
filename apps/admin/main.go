package main

import (
	"fmt"
	"log"
	"os"

	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/student"
	logsvc "github.com/trezcool/schoolportal/services/logger"
	"github.com/trezcool/schoolportal/storage/database"
	jsonrepos "github.com/trezcool/schoolportal/storage/database/jsonfile"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	// set up repos
	repo, err := jsonrepos.NewStudentRepository(conf.DataFile(database.StudentsFile), logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening students: %v", err), err)
	}

	// start CLI
	cli := commandLine{
		studentSvc: student.NewService(repo),
		out:        os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %v", err), err)
		}
		os.Exit(1)
	}
}
