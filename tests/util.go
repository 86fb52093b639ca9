package testutil

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/staff"
	"github.com/trezcool/schoolportal/core/student"
	"github.com/trezcool/schoolportal/core/teacher"
)

// NewConfig returns the TEST configuration with data and uploads kept under a fresh temp dir.
func NewConfig(t *testing.T) *core.Config {
	t.Helper()
	dir := t.TempDir()

	conf := core.NewConfig()
	conf.Debug = false
	conf.TestMode = true
	conf.DataDir = filepath.Join(dir, "data")
	conf.UploadDir = filepath.Join(dir, "uploads")
	conf.Server.DisableRequestLogs = true
	conf.SetDefaultFromEmail("School Portal <noreply@test.cd>")
	return conf
}

// Logger records every message it receives.
type Logger struct {
	mu       sync.Mutex
	Messages []string
}

var _ core.Logger = (*Logger)(nil)

func (l *Logger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, fmt.Sprintf("%s: %s", level, msg))
}

func (l *Logger) Debug(msg string, _ ...interface{}) { l.log("DEBUG", msg) }
func (l *Logger) Info(msg string, _ ...interface{})  { l.log("INFO", msg) }
func (l *Logger) Warn(msg string, _ ...interface{})  { l.log("WARN", msg) }
func (l *Logger) Error(msg string, _ ...interface{}) { l.log("ERROR", msg) }
func (l *Logger) Fatal(msg string, _ ...interface{}) { l.log("FATAL", msg) }

func CreateStudent(t *testing.T, repo student.Repository, fullname, class, pwd string) student.Student {
	t.Helper()
	s := student.Student{
		ID:       uuid.New().String(),
		FullName: fullname,
		Class:    class,
		Gender:   "Female",
		DOB:      "2015-03-14",
	}
	if pwd != "" {
		if err := s.SetPassword(pwd); err != nil {
			t.Fatalf("CreateStudent() failed: %v", err)
		}
	}
	s, err := repo.CreateStudent(s)
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return s
}

func CreateTeacher(t *testing.T, repo teacher.Repository, fullname, subject, class string) teacher.Teacher {
	t.Helper()
	tchr, err := repo.CreateTeacher(teacher.Teacher{
		ID:       uuid.New().String(),
		FullName: fullname,
		Subject:  subject,
		Email:    "teacher@test.cd",
		Class:    class,
	})
	if err != nil {
		t.Fatalf("CreateTeacher() failed: %v", err)
	}
	return tchr
}

func CreateStaffUser(t *testing.T, repo staff.Repository, uname, pwd string, createdAt ...time.Time) staff.User {
	t.Helper()
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := staff.User{Username: uname, CreatedAt: tstamp}
	if err := usr.SetPassword(pwd); err != nil {
		t.Fatalf("CreateStaffUser() failed: %v", err)
	}
	usr, err := repo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateStaffUser() failed: %v", err)
	}
	return usr
}
