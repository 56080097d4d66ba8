package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "pushuplog/internal/errors"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// pathID parses the numeric id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, apperrors.NewValidationError("invalid id")
	}
	return uint(id), nil
}

// boolQuery parses an optional boolean query parameter, defaulting to false.
func boolQuery(c echo.Context, name string) bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	return err == nil && v
}

// pageParams parses skip and limit with their defaults.
func pageParams(c echo.Context) (int, int, error) {
	skip, limit := defaultSkip, defaultLimit
	if v := c.QueryParam("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, apperrors.NewValidationError("invalid skip parameter")
		}
		skip = n
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, apperrors.NewValidationError("invalid limit parameter")
		}
		limit = n
	}
	return skip, limit, nil
}
