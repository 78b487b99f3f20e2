package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
}

// jsonFieldName reports validation failures by their wire name.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// ReadAndValidateRequest binds the body into req, applies `default` tags and
// runs `validate` tags. The returned *AppError describes the first failure.
func ReadAndValidateRequest(c echo.Context, req interface{}) *AppError {
	if err := c.Bind(req); err != nil {
		return bindError(err)
	}

	if err := defaults.Set(req); err != nil {
		return InternalError("apply defaults").WithError(err)
	}

	if err := validate.StructCtx(c.Request().Context(), req); err != nil {
		return validationError(err)
	}

	return nil
}

func bindError(err error) *AppError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return BadRequestErrorf("Invalid input data: %v", he.Message).WithError(err)
	}
	return BadRequestErrorf("Invalid input data: %v", err).WithError(err)
}

func validationError(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		appErr := FieldError(fe.Field(), getErrorMessage(fe))
		appErr.Code = "ERR_" + strings.ToUpper(fe.Tag())
		return appErr
	}
	return BadRequestError(err.Error()).WithError(err)
}

func getErrorMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return fmt.Sprintf("Missing required field: %s", fe.Field())
	}
	return fmt.Sprintf("%s failed validation: %s", fe.Field(), fe.Tag())
}
