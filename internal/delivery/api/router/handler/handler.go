// Package handler holds the echo handlers of the back-office API.
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"backoffice/internal/delivery/api/response"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails(bindMessage(err)))
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func bindMessage(err error) string {
	var bindingErr *echo.BindingError
	if errors.As(err, &bindingErr) {
		return fmt.Sprintf("invalid value for %s", bindingErr.Field)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Internal != nil {
			return httpErr.Internal.Error()
		}

		return fmt.Sprint(httpErr.Message)
	}

	return err.Error()
}

// parseID reads a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("%s must be a positive integer", name)))
	}

	return id, nil
}

// listParams reads page, limit and search from the query string.
func listParams(c echo.Context, searchKey string) (usecase.ListParams, error) {
	var params usecase.ListParams

	err := echo.QueryParamsBinder(c).
		Int("page", &params.Page).
		Int("limit", &params.Limit).
		String(searchKey, &params.Search).
		BindError()
	if err != nil {
		return usecase.ListParams{}, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails(bindMessage(err)))
	}

	return params, nil
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "ok", map[string]string{"status": "healthy"})
}
