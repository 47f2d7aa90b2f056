// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	domainerrors "autolot/internal/domain/errors"
	"autolot/internal/domain/repository"
	"autolot/internal/serializer"
	"autolot/internal/usecase"
)

// parseListQuery reads pagination, filter and join parameters shared by every
// list endpoint: skip, limit, repeated filter_key/filter_value pairs, join
// with repeated join_filter_key/join_filter_value pairs, plus the include and
// depth serialization controls.
func parseListQuery(c echo.Context) (usecase.ListInput, serializer.Options, error) {
	var input usecase.ListInput

	skip, err := intQueryParam(c, "skip", 0)
	if err != nil {
		return input, serializer.Options{}, err
	}
	limit, err := intQueryParam(c, "limit", 0)
	if err != nil {
		return input, serializer.Options{}, err
	}
	input.Skip = skip
	input.Limit = limit

	filter, err := zipFilterParams(c, "filter_key", "filter_value")
	if err != nil {
		return input, serializer.Options{}, err
	}
	input.Filter = filter

	if join := c.QueryParam("join"); join != "" {
		joinFilter, err := zipFilterParams(c, "join_filter_key", "join_filter_value")
		if err != nil {
			return input, serializer.Options{}, err
		}

		input.Joins = []repository.JoinSpec{{Relation: join, Filter: joinFilter}}
	}

	opts, err := parseSerializeOptions(c)
	if err != nil {
		return input, serializer.Options{}, err
	}

	return input, opts, nil
}

// parseSerializeOptions reads include and depth, used on both list and get
// endpoints. Depth defaults to one expansion level when includes are present.
func parseSerializeOptions(c echo.Context) (serializer.Options, error) {
	include := splitCommaParams(c.QueryParams()["include"])

	depth := 0
	if len(include) > 0 {
		depth = 1
	}
	depth, err := intQueryParam(c, "depth", depth)
	if err != nil {
		return serializer.Options{}, err
	}

	return serializer.Options{Depth: depth, Include: include}, nil
}

func intQueryParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a non-negative integer")
	}

	return value, nil
}

// zipFilterParams pairs repeated key/value query parameters into an equality
// filter. Values are coerced to int or bool when they parse as one, so typed
// columns compare naturally.
func zipFilterParams(c echo.Context, keyParam, valueParam string) (map[string]any, error) {
	keys := c.QueryParams()[keyParam]
	values := c.QueryParams()[valueParam]

	if len(keys) != len(values) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			keyParam + " and " + valueParam + " must be paired")
	}
	if len(keys) == 0 {
		return nil, nil
	}

	filter := make(map[string]any, len(keys))
	for i, key := range keys {
		filter[key] = coerceFilterValue(values[i])
	}

	return filter, nil
}

func coerceFilterValue(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}

	return raw
}

func splitCommaParams(params []string) []string {
	var out []string
	for _, param := range params {
		for _, part := range strings.Split(param, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}

	return out
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return id, nil
}
