package handlers_test

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMonetizationLink(t *testing.T) {
	t.Run("creates with zero counters and a derived slug", func(t *testing.T) {
		router, mock := newTestApp(t, nil)

		mock.ExpectExec("INSERT INTO monetization_links").
			WithArgs("Amazon Associates", "TikTok", "Kitchen Gadget Review", "kitchen-gadget-review",
				"https://amzn.to/abc123", "Video", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(11, 1))

		res := doJSON(t, router, http.MethodPost, "/api/monetization/links", map[string]interface{}{
			"program":      "Amazon Associates",
			"platform":     "TikTok",
			"name":         "Kitchen Gadget Review",
			"url":          "https://amzn.to/abc123",
			"content_type": "Video",
		})

		require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
		var link map[string]interface{}
		decodeBody(t, res, &link)
		assert.Equal(t, float64(11), link["id"])
		assert.Equal(t, "kitchen-gadget-review", link["slug"])
		assert.Equal(t, float64(0), link["clicks"])
		assert.Equal(t, float64(0), link["conversions"])
		assert.Equal(t, float64(0), link["earnings"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid URL rejected", func(t *testing.T) {
		router, mock := newTestApp(t, nil)

		res := doJSON(t, router, http.MethodPost, "/api/monetization/links", map[string]interface{}{
			"program":      "ClickBank",
			"platform":     "Blog",
			"name":         "Broken",
			"url":          "not a url",
			"content_type": "Post",
		})

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetMonetizationLinks(t *testing.T) {
	router, mock := newTestApp(t, nil)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "program", "platform", "name", "slug", "url", "content_type",
		"clicks", "conversions", "earnings", "created_at", "updated_at",
	}).
		AddRow(1, "Amazon Associates", "YouTube", "Top Pick", "top-pick", "https://amzn.to/x", "Review", 500, 20, 145.20, now, now)

	mock.ExpectQuery("SELECT (.+) FROM monetization_links ORDER BY earnings DESC").
		WillReturnRows(rows)

	res := doJSON(t, router, http.MethodGet, "/api/monetization/links", nil)

	require.Equal(t, http.StatusOK, res.Code)
	var links []map[string]interface{}
	decodeBody(t, res, &links)
	require.Len(t, links, 1)
	assert.Equal(t, 145.20, links[0]["earnings"])
}

func TestUpdateMonetizationLink(t *testing.T) {
	t.Run("updates only the provided counters", func(t *testing.T) {
		router, mock := newTestApp(t, nil)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE monetization_links SET updated_at = ?, clicks = ?, earnings = ? WHERE id = ?")).
			WithArgs(sqlmock.AnyArg(), int64(750), 200.10, "4").
			WillReturnResult(sqlmock.NewResult(0, 1))

		res := doJSON(t, router, http.MethodPut, "/api/monetization/links/4", map[string]interface{}{
			"clicks":   750,
			"earnings": 200.10,
		})

		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
		var body map[string]interface{}
		decodeBody(t, res, &body)
		assert.Equal(t, float64(1), body["changed"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative counters rejected", func(t *testing.T) {
		router, mock := newTestApp(t, nil)

		res := doJSON(t, router, http.MethodPut, "/api/monetization/links/4", map[string]interface{}{
			"clicks": -1,
		})

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
