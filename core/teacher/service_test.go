package teacher_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/schoolportal/core/teacher"
	emailsvc "github.com/trezcool/schoolportal/services/email"
	jsonrepos "github.com/trezcool/schoolportal/storage/database/jsonfile"
	"github.com/trezcool/schoolportal/tests"
)

func TestService(t *testing.T) {
	conf := testutil.NewConfig(t)
	repo, err := jsonrepos.NewTeacherRepository(conf.DataFile("teachers"), new(testutil.Logger))
	require.NoError(t, err)
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	svc := teacher.NewService(repo, mailSvc, conf)

	nt := teacher.NewTeacher{FullName: " Mary Kabila ", Subject: "Maths", Email: " Mary@School.CD ", Class: "Primary 2"}
	nt.Clean()
	mary, err := svc.Create(nt)
	require.NoError(t, err)
	assert.NotEmpty(t, mary.ID)
	assert.Equal(t, "mary@school.cd", mary.Email)

	john, err := svc.Create(teacher.NewTeacher{FullName: "John Ilunga", Subject: "English", Email: "john@school.cd"})
	require.NoError(t, err)

	t.Run("welcome mails", func(t *testing.T) {
		sent := mailSvc.SentMessages()
		if assert.Len(t, sent, 2) {
			assert.Equal(t, "mary@school.cd", sent[0].To[0].Address)
			assert.Equal(t, "Welcome to "+conf.AppName, sent[0].Subject)
			assert.Contains(t, sent[0].TextContent, "Maths (Primary 2)")
			assert.Contains(t, sent[1].TextContent, "English (no class yet)")
		}
	})

	t.Run("find by class", func(t *testing.T) {
		got, err := svc.FindByClass("Primary 2")
		require.NoError(t, err)
		assert.Equal(t, mary, got)

		_, err = svc.FindByClass("primary 2")
		assert.Equal(t, teacher.ErrNotFound, errors.Cause(err))

		// teachers without a class are never matched
		_, err = svc.FindByClass("")
		assert.Equal(t, teacher.ErrNotFound, errors.Cause(err))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(mary.ID))
		all, err := svc.QueryAll()
		require.NoError(t, err)
		assert.Equal(t, []teacher.Teacher{john}, all)
	})
}
