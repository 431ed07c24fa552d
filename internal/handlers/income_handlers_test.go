package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIncomeEvent(t *testing.T) {
	t.Run("defaults event date to now when omitted", func(t *testing.T) {
		router, mock := newTestApp(t, nil)

		mock.ExpectExec("INSERT INTO income_events").
			WithArgs(sqlmock.AnyArg(), "vine", "ETV for March batch", 312.45, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(21, 1))

		before := time.Now()
		res := doJSON(t, router, http.MethodPost, "/api/income-events", map[string]interface{}{
			"source":      "vine",
			"description": "ETV for March batch",
			"amount":      312.45,
		})

		require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
		var event map[string]interface{}
		decodeBody(t, res, &event)
		assert.Equal(t, float64(21), event["id"])

		eventDate, err := time.Parse(time.RFC3339Nano, event["event_date"].(string))
		require.NoError(t, err)
		assert.False(t, eventDate.Before(before.Truncate(time.Second)), "event_date should default to now")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("negative amounts pass through as refunds", func(t *testing.T) {
		router, mock := newTestApp(t, nil)

		mock.ExpectExec("INSERT INTO income_events").
			WithArgs(sqlmock.AnyArg(), "resale", "", -19.99, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(22, 1))

		res := doJSON(t, router, http.MethodPost, "/api/income-events", map[string]interface{}{
			"source": "resale",
			"amount": -19.99,
		})

		require.Equal(t, http.StatusCreated, res.Code, res.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing source rejected", func(t *testing.T) {
		router, mock := newTestApp(t, nil)

		res := doJSON(t, router, http.MethodPost, "/api/income-events", map[string]interface{}{
			"amount": 10,
		})

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetIncomeEvents(t *testing.T) {
	router, mock := newTestApp(t, nil)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "event_date", "source", "description", "amount", "created_at"}).
		AddRow(2, now, "resale", "Sold lamp", 45.0, now).
		AddRow(1, now.AddDate(0, 0, -3), "vine", "Review batch", 100.0, now)

	mock.ExpectQuery("SELECT (.+) FROM income_events ORDER BY event_date DESC").
		WillReturnRows(rows)

	res := doJSON(t, router, http.MethodGet, "/api/income-events", nil)

	require.Equal(t, http.StatusOK, res.Code)
	var events []map[string]interface{}
	decodeBody(t, res, &events)
	require.Len(t, events, 2)
	assert.Equal(t, "resale", events[0]["source"])
	assert.Equal(t, 45.0, events[0]["amount"])
}
