package echoportal

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/announcement"
	"github.com/trezcool/schoolportal/core/staff"
	"github.com/trezcool/schoolportal/core/student"
	"github.com/trezcool/schoolportal/core/teacher"
	"github.com/trezcool/schoolportal/core/upload"
	emailsvc "github.com/trezcool/schoolportal/services/email"
	"github.com/trezcool/schoolportal/storage/database"
	filestore "github.com/trezcool/schoolportal/storage/files"
	"github.com/trezcool/schoolportal/tests"
)

type testApp struct {
	Server
	conf    *core.Config
	db      *database.DB
	mailSvc *emailsvc.ConsoleService
	logger  *testutil.Logger
}

func setup(t *testing.T) testApp {
	conf := testutil.NewConfig(t)
	logger := new(testutil.Logger)

	// set up DB & repos
	db, err := database.Open(conf, logger)
	require.NoError(t, err)
	files, err := filestore.NewDiskStore(conf.UploadDir)
	require.NoError(t, err)

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	// set up server
	srv, err := NewServer(Deps{
		Conf:            conf,
		Logger:          logger,
		Validator:       core.NewValidator(),
		StaffSvc:        staff.NewService(db.Staff),
		StudentSvc:      student.NewService(db.Students),
		TeacherSvc:      teacher.NewService(db.Teachers, mailSvc, conf),
		AnnouncementSvc: announcement.NewService(db.Announcements, conf),
		UploadSvc:       upload.NewService(db.Uploads, files),
	})
	require.NoError(t, err)

	return testApp{Server: srv, conf: conf, db: db, mailSvc: mailSvc, logger: logger}
}

// client carries the session cookie between requests, like a browser would.
type client struct {
	t       *testing.T
	app     http.Handler
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, app http.Handler) *client {
	return &client{t: t, app: app, cookies: make(map[string]*http.Cookie)}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c.app.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return rec
}

func (c *client) get(path string) *httptest.ResponseRecorder {
	return c.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (c *client) postForm(path string, data url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(data.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// postFile sends a multipart form. An empty filename leaves the file part out.
func (c *client) postFile(path string, fields url.Values, filename, content string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, vs := range fields {
		for _, v := range vs {
			require.NoError(c.t, w.WriteField(k, v))
		}
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(c.t, err)
		_, err = io.WriteString(part, content)
		require.NoError(c.t, err)
	}
	require.NoError(c.t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req)
}

// loginStaff registers then signs in a staff user.
func (c *client) loginStaff(uname, pwd string) {
	creds := url.Values{"username": {uname}, "password": {pwd}}
	c.postForm("/register", creds)
	rec := c.postForm("/login", creds)
	require.Equal(c.t, http.StatusFound, rec.Code)
	require.Equal(c.t, "/dashboard", rec.Header().Get("Location"))
}

func checkRedirect(t *testing.T, rec *httptest.ResponseRecorder, wantLocation string) {
	t.Helper()
	if assert.Equal(t, http.StatusFound, rec.Code) {
		assert.Equal(t, wantLocation, rec.Header().Get("Location"))
	}
}

func checkPage(t *testing.T, rec *httptest.ResponseRecorder, wantContains ...string) {
	t.Helper()
	assert.Equal(t, http.StatusOK, rec.Code)
	for _, s := range wantContains {
		assert.Contains(t, rec.Body.String(), s)
	}
}
