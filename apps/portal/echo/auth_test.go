package echoportal

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/schoolportal/tests"
)

func Test_gate_unauthenticated(t *testing.T) {
	app := setup(t)
	c := newClient(t, app)

	tests := []struct {
		name     string
		method   string
		path     string
		location string
	}{
		{name: "students list", method: http.MethodGet, path: "/students/list", location: "/login"},
		{name: "dashboard", method: http.MethodGet, path: "/dashboard", location: "/login"},
		{name: "student delete", method: http.MethodPost, path: "/students/delete", location: "/login"},
		{name: "teacher delete", method: http.MethodPost, path: "/teachers/delete", location: "/login"},
		{name: "upload delete", method: http.MethodPost, path: "/uploads/delete", location: "/login"},
		{name: "uploads", method: http.MethodGet, path: "/uploads", location: "/login"},
		{name: "announcements", method: http.MethodGet, path: "/admin/announcements", location: "/login"},
		{name: "results", method: http.MethodGet, path: "/results", location: "/login"},
		{name: "student dashboard", method: http.MethodGet, path: "/student-dashboard", location: "/student-login"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec *httptest.ResponseRecorder
			if tt.method == http.MethodPost {
				rec = c.postForm(tt.path, url.Values{"id": {"x"}})
			} else {
				rec = c.get(tt.path)
			}
			checkRedirect(t, rec, tt.location)
		})
	}
}

func Test_authApi_staff(t *testing.T) {
	app := setup(t)
	c := newClient(t, app)
	creds := url.Values{"username": {"admin"}, "password": {"s3cret"}}

	t.Run("register", func(t *testing.T) {
		checkPage(t, c.postForm("/register", creds), "Registration successful!")
		checkPage(t, c.postForm("/register", creds), "User already exists. Try logging in.")
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := c.postForm("/register", url.Values{"username": {"nopwd"}})
		checkPage(t, rec, "password is required")
		_, err := app.db.Staff.GetUserByUsername("nopwd")
		assert.Error(t, err)
	})

	t.Run("invalid login", func(t *testing.T) {
		rec := c.postForm("/login", url.Values{"username": {"admin"}, "password": {"wrong"}})
		checkPage(t, rec, "Invalid login.")
		checkRedirect(t, c.get("/dashboard"), "/login")
	})

	t.Run("login", func(t *testing.T) {
		checkRedirect(t, c.postForm("/login", creds), "/dashboard")
		checkPage(t, c.get("/dashboard"), "Admin Dashboard", "admin")
		checkPage(t, c.get("/results"), "Results")
		checkPage(t, c.get("/timetable"), "Timetable")
	})

	t.Run("logout", func(t *testing.T) {
		checkRedirect(t, c.get("/logout"), "/")
		checkRedirect(t, c.get("/students/list"), "/login")
	})
}

func Test_authApi_student(t *testing.T) {
	app := setup(t)
	awe := testutil.CreateStudent(t, app.db.Students, "Awe Ngoy", "Primary 3", "pass123")

	t.Run("wrong password leaves the session untouched", func(t *testing.T) {
		c := newClient(t, app)
		rec := c.postForm("/student-login", url.Values{"fullname": {"Awe Ngoy"}, "password": {"nope"}})
		checkPage(t, rec, "Invalid name or password.")
		assert.Empty(t, rec.Result().Cookies())
		checkRedirect(t, c.get("/student-dashboard"), "/student-login")
	})

	c := newClient(t, app)

	t.Run("case insensitive name", func(t *testing.T) {
		rec := c.postForm("/student-login", url.Values{"fullname": {"  awe ngoy "}, "password": {"pass123"}})
		checkRedirect(t, rec, "/student-dashboard")
	})

	t.Run("dashboard without class teacher", func(t *testing.T) {
		checkPage(t, c.get("/student-dashboard"),
			"Welcome, Awe Ngoy",
			"Primary 3",
			"Not assigned",
			`/uploads/results/Awe_Ngoy.pdf`,
			`/uploads/notes/Primary_3_notes.pdf`,
		)
	})

	t.Run("dashboard with class teacher", func(t *testing.T) {
		testutil.CreateTeacher(t, app.db.Teachers, "Mary Kabila", "Maths", "Primary 3")
		checkPage(t, c.get("/student-dashboard"), "Mary Kabila")
	})

	t.Run("staff pages stay closed", func(t *testing.T) {
		checkRedirect(t, c.get("/students/list"), "/login")
	})

	t.Run("deleted student is logged out", func(t *testing.T) {
		other := newClient(t, app)
		king := testutil.CreateStudent(t, app.db.Students, "King Lwamba", "Primary 4", "pass")
		checkRedirect(t, other.postForm("/student-login", url.Values{"fullname": {"King Lwamba"}, "password": {"pass"}}), "/student-dashboard")

		assert.NoError(t, app.db.Students.DeleteStudentsByID(king.ID))
		checkRedirect(t, other.get("/student-dashboard"), "/student-login")
		checkPage(t, c.get("/student-dashboard"), awe.FullName)
	})

	t.Run("logout", func(t *testing.T) {
		checkRedirect(t, c.get("/student-logout"), "/student-login")
		checkRedirect(t, c.get("/student-dashboard"), "/student-login")
	})
}
