package echoportal

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolportal/core"
)

// formValidator plugs core.Validator into echo.
type formValidator struct {
	v *core.Validator
}

func (fv formValidator) Validate(i interface{}) error {
	return fv.v.Struct(i)
}

// form is any bound request struct that normalizes its own input.
type form interface {
	Clean()
}

// bindForm binds the request into `data`, cleans and validates it.
func bindForm(ctx echo.Context, data form, name string) error {
	if err := ctx.Bind(data); err != nil {
		return errors.Wrap(err, "binding to "+name)
	}
	data.Clean()
	return ctx.Validate(data)
}
