package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vinevault/vinevault-golang/internal/ai"
	"github.com/vinevault/vinevault-golang/internal/handlers"
	"github.com/vinevault/vinevault-golang/internal/routes"
)

// newTestApp wires the real router against a mocked database and the given
// generation-service client. A nil aiService gets a client pointing at a dead
// address, so any accidental call fails fast.
func newTestApp(t *testing.T, aiService *ai.AIService) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	if aiService == nil {
		aiService = ai.NewAIService("http://127.0.0.1:1", "mistral", time.Second)
	}

	app := &handlers.Handlers{DB: db, AIService: aiService}
	return routes.SetupRouter(app), mock
}

// doJSON performs a request with an optional JSON body and returns the
// recorded response.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

// decodeBody unmarshals a recorded JSON response into out.
func decodeBody(t *testing.T, res *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), out))
}
