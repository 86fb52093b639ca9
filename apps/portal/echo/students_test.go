package echoportal

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_studentApi(t *testing.T) {
	app := setup(t)
	c := newClient(t, app)
	c.loginStaff("admin", "s3cret")

	checkPage(t, c.get("/students"), "Register Student")

	t.Run("missing fields", func(t *testing.T) {
		rec := c.postForm("/students", url.Values{"fullname": {"Awe Ngoy"}, "password": {"x"}})
		checkPage(t, rec, "please fill in all required fields", "class is required", "gender is required", "dob is required")

		all, err := app.db.Students.QueryAllStudents()
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	create := func(name, class string) {
		rec := c.postForm("/students", url.Values{
			"fullname": {name},
			"class":    {class},
			"gender":   {"Female"},
			"dob":      {"2015-03-14"},
			"password": {"pass"},
		})
		checkPage(t, rec, "Student Registered Successfully", name)
	}

	t.Run("create then list", func(t *testing.T) {
		create("Awe Ngoy", "Primary 3")
		create("King Lwamba", "Primary 4")
		checkPage(t, c.get("/students/list"), "Awe Ngoy", "King Lwamba", "Primary 4")
	})

	t.Run("search", func(t *testing.T) {
		rec := c.get("/students/list?search=LWAM")
		checkPage(t, rec, "King Lwamba")
		assert.NotContains(t, rec.Body.String(), "Awe Ngoy")
	})

	t.Run("passwords are not shown", func(t *testing.T) {
		all, err := app.db.Students.QueryAllStudents()
		require.NoError(t, err)
		rec := c.get("/students/list")
		for _, s := range all {
			assert.NotContains(t, rec.Body.String(), s.Password)
		}
	})

	t.Run("delete unknown id", func(t *testing.T) {
		checkRedirect(t, c.postForm("/students/delete", url.Values{"id": {"unknown"}}), "/students/list")
		all, err := app.db.Students.QueryAllStudents()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("delete", func(t *testing.T) {
		all, err := app.db.Students.QueryAllStudents()
		require.NoError(t, err)
		checkRedirect(t, c.postForm("/students/delete", url.Values{"id": {all[0].ID}}), "/students/list")

		rec := c.get("/students/list")
		checkPage(t, rec, "King Lwamba")
		assert.NotContains(t, rec.Body.String(), "Awe Ngoy")
	})
}

func Test_teacherApi(t *testing.T) {
	app := setup(t)
	c := newClient(t, app)
	c.loginStaff("admin", "s3cret")

	checkPage(t, c.get("/teachers"), "Register Teacher", "Primary 1", "Primary 6")

	t.Run("missing fields", func(t *testing.T) {
		checkPage(t, c.postForm("/teachers", url.Values{"fullname": {"Mary Kabila"}}), "subject is required", "email is required")
	})

	t.Run("create then list", func(t *testing.T) {
		rec := c.postForm("/teachers", url.Values{
			"fullname": {"Mary Kabila"},
			"subject":  {"Maths"},
			"email":    {"mary@school.cd"},
			"class":    {"Primary 2"},
		})
		checkPage(t, rec, "Teacher Registered Successfully", "Mary Kabila")
		checkPage(t, c.get("/teachers/list"), "Mary Kabila", "Maths", "mary@school.cd", "Primary 2")

		sent := app.mailSvc.SentMessages()
		if assert.Len(t, sent, 1) {
			assert.Equal(t, "mary@school.cd", sent[0].To[0].Address)
		}
	})

	t.Run("delete", func(t *testing.T) {
		all, err := app.db.Teachers.QueryAllTeachers()
		require.NoError(t, err)
		require.Len(t, all, 1)
		checkRedirect(t, c.postForm("/teachers/delete", url.Values{"id": {all[0].ID}}), "/teachers/list")
		checkPage(t, c.get("/teachers/list"), "No teachers registered yet.")
	})
}
