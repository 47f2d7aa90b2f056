package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "autolot/internal/domain/errors"
)

func newListContext(t *testing.T, query string) echo.Context {
	t.Helper()

	req := httptest.NewRequest("GET", "/units?"+query, nil)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec)
}

func TestParseListQuery(t *testing.T) {
	t.Run("pagination, filters and joins", func(t *testing.T) {
		c := newListContext(t, "skip=10&limit=25"+
			"&filter_key=purchased&filter_value=true"+
			"&filter_key=buy_fee&filter_value=250"+
			"&join=vehicle&join_filter_key=make&join_filter_value=Honda")

		input, _, err := parseListQuery(c)
		require.NoError(t, err)

		assert.Equal(t, 10, input.Skip)
		assert.Equal(t, 25, input.Limit)
		assert.Equal(t, map[string]any{"purchased": true, "buy_fee": int64(250)}, input.Filter)

		require.Len(t, input.Joins, 1)
		assert.Equal(t, "vehicle", input.Joins[0].Relation)
		assert.Equal(t, map[string]any{"make": "Honda"}, input.Joins[0].Filter)
	})

	t.Run("defaults when no parameters", func(t *testing.T) {
		input, opts, err := parseListQuery(newListContext(t, ""))
		require.NoError(t, err)

		assert.Zero(t, input.Skip)
		assert.Zero(t, input.Limit)
		assert.Nil(t, input.Filter)
		assert.Nil(t, input.Joins)
		assert.Zero(t, opts.Depth)
	})

	t.Run("unpaired filter parameters rejected", func(t *testing.T) {
		_, _, err := parseListQuery(newListContext(t, "filter_key=purchased"))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("negative skip rejected", func(t *testing.T) {
		_, _, err := parseListQuery(newListContext(t, "skip=-1"))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestParseSerializeOptions(t *testing.T) {
	t.Run("include implies one expansion level", func(t *testing.T) {
		opts, err := parseSerializeOptions(newListContext(t, "include=units,users"))
		require.NoError(t, err)

		assert.Equal(t, 1, opts.Depth)
		assert.Equal(t, []string{"units", "users"}, opts.Include)
	})

	t.Run("explicit depth wins", func(t *testing.T) {
		opts, err := parseSerializeOptions(newListContext(t, "include=units&depth=3"))
		require.NoError(t, err)

		assert.Equal(t, 3, opts.Depth)
	})

	t.Run("repeated include parameters merge", func(t *testing.T) {
		opts, err := parseSerializeOptions(newListContext(t, "include=units&include=store"))
		require.NoError(t, err)

		assert.Equal(t, []string{"units", "store"}, opts.Include)
	})
}

func TestPathID(t *testing.T) {
	c := newListContext(t, "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	id, err := pathID(c)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	c.SetParamValues("zero")
	_, err = pathID(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
