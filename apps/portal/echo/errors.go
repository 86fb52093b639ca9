package echoportal

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core"
	"github.com/trezcool/schoolportal/core/upload"
)

// userErrors are answered with their message as plain text (HTTP 200), like validation failures.
var userErrors = []error{
	upload.ErrInvalidCategory,
	upload.ErrNoFile,
	upload.ErrInvalidFilename,
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
func newAppHTTPErrorHandler(logger core.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message string

		cause := errors.Cause(err)
		switch origErr := cause.(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = fmt.Sprint(origErr.Message)
		case *core.ValidationError:
			code = http.StatusOK
			message = validationMessage(origErr)
		default:
			if isUserError(cause) {
				code = http.StatusOK
				message = cause.Error()
				break
			}

			// any other error is a server error
			code = http.StatusInternalServerError
			message = http.StatusText(http.StatusInternalServerError)

			var uname core.StaffUser
			if usr, ok := getContextStaff(ctx); ok {
				uname = core.StaffUser(usr.Username)
			}
			logger.Error(message, errors.Wrap(err, message), uname)

			if ctx.Echo().Debug {
				message = err.Error()
			}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.String(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}

func isUserError(err error) bool {
	for _, uErr := range userErrors {
		if err == uErr {
			return true
		}
	}
	return false
}

func validationMessage(vErr *core.ValidationError) string {
	lines := make([]string, 0, len(vErr.Fields)+1)
	if msg := vErr.Error(); msg != "" {
		lines = append(lines, msg)
	}
	for _, fErr := range vErr.Fields {
		lines = append(lines, fErr.Error)
	}
	return strings.Join(lines, "\n")
}
