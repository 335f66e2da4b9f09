package ping_get_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"driversync/internal/handlers/rest/ping_get"
	"driversync/pkg/logger"
)

func TestPingGetHandler(t *testing.T) {
	t.Parallel()

	handler := ping_get.New(logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "unexpected status code")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{"message": "pong"}, body)
}
