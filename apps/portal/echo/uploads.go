package echoportal

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/upload"
)

const uploadsURL = "/uploads"

type uploadApi struct {
	svc *upload.Service
}

func registerUploadAPI(e *echo.Echo, gate *sessionGate, svc *upload.Service) {
	api := uploadApi{svc: svc}

	// public
	e.GET("/student-portal", api.studentPortal)
	e.GET(uploadsURL+"/*", api.download)

	// staff
	e.GET(uploadsURL, api.query, gate.requireStaff)
	e.POST("/upload", api.create, gate.requireStaff)
	e.POST(uploadsURL+"/delete", api.destroy, gate.requireStaff)
	e.GET("/upload-category", api.categoryForm, gate.requireStaff)
	e.POST("/upload-category", api.createInCategory, gate.requireStaff)
}

// formFile opens the multipart file `name`. A missing file yields a nil reader.
func formFile(ctx echo.Context, name string) (io.ReadCloser, string, error) {
	fh, err := ctx.FormFile(name)
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, "", nil
		}
		return nil, "", errors.Wrap(err, "reading multipart form")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", errors.Wrap(err, "opening "+fh.Filename)
	}
	return f, fh.Filename, nil
}

// Handlers

func (api *uploadApi) query(ctx echo.Context) error {
	records, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying uploads")
	}
	return render(ctx, "uploads", records)
}

func (api *uploadApi) create(ctx echo.Context) error {
	f, name, err := formFile(ctx, "file")
	if err != nil {
		return err
	}
	nu := upload.NewUpload{OriginalName: name}
	if f != nil {
		defer f.Close()
		nu.Content = f
	}
	if usr, ok := getContextStaff(ctx); ok {
		nu.UploadedBy = usr.Username
	}

	if _, err = api.svc.Upload(nu); err != nil {
		return errors.Wrap(err, "uploading file")
	}
	return ctx.Redirect(http.StatusFound, uploadsURL)
}

func (api *uploadApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.FormValue("filename")); err != nil {
		return errors.Wrap(err, "deleting upload")
	}
	return ctx.Redirect(http.StatusFound, uploadsURL)
}

func (api *uploadApi) categoryForm(ctx echo.Context) error {
	return render(ctx, "upload_category", upload.Categories)
}

func (api *uploadApi) createInCategory(ctx echo.Context) error {
	category := ctx.FormValue("category")
	f, origName, err := formFile(ctx, "file")
	if err != nil {
		return err
	}
	nu := upload.NewUpload{OriginalName: origName}
	if f != nil {
		defer f.Close()
		nu.Content = f
	}
	if usr, ok := getContextStaff(ctx); ok {
		nu.UploadedBy = usr.Username
	}

	c, name, err := api.svc.UploadToCategory(category, nu)
	if err != nil {
		return errors.Wrap(err, "uploading file to category")
	}
	return renderMessage(
		ctx,
		"✅ File uploaded to "+c.Title(),
		name,
		link{"/upload-category", "⬅ Upload Another"},
		link{"/dashboard", "🏠 Dashboard"},
	)
}

func (api *uploadApi) studentPortal(ctx echo.Context) error {
	listings, err := api.svc.CategoryListings()
	if err != nil {
		return errors.Wrap(err, "listing categories")
	}
	return render(ctx, "student_portal", listings)
}

func (api *uploadApi) download(ctx echo.Context) error {
	filePath, name, err := api.svc.Download(ctx.Param("*"))
	if err != nil {
		if errors.Cause(err) == core.ErrNotFound {
			return echo.ErrNotFound
		}
		return errors.Wrap(err, "resolving download")
	}
	if name != "" {
		return ctx.Attachment(filePath, name)
	}
	return ctx.File(filePath)
}
