package chatHandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtlmac/internal/api/chat"
	chatService "rtlmac/internal/api/chat/service"
	"rtlmac/internal/middleware"
	"rtlmac/pkg/fanniemae"
	"rtlmac/pkg/intent"
	"rtlmac/pkg/utils"
)

func newTestApp() *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := chatService.New(logger, intent.NewClassifier(), fanniemae.NewMock(), nil, utils.New())
	handler := New(logger, validator.New(), middleware.New(logger), svc)

	app := fiber.New()
	router := app.Group("/api/v1")
	handler.Start(router)

	return app
}

func postQuery(t *testing.T, app *fiber.App, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/query", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestQueryEndpoint(t *testing.T) {
	app := newTestApp()

	resp := postQuery(t, app, chat.QueryRequest{Message: "What are the loan limits in CA?"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result chat.QueryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.True(t, result.Success)
	assert.Equal(t, "loan_limits", result.QueryType)
	assert.Contains(t, result.Content, "Conforming Loan Limits")
	assert.NotNil(t, result.Data)
}

func TestQueryEndpointUnknownIntent(t *testing.T) {
	app := newTestApp()

	resp := postQuery(t, app, chat.QueryRequest{Message: "tell me a joke"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result chat.QueryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.Equal(t, "general", result.QueryType)
	assert.Contains(t, result.Content, "Welcome to RTLMAC")
}

func TestQueryEndpointEmptyMessage(t *testing.T) {
	app := newTestApp()

	resp := postQuery(t, app, chat.QueryRequest{Message: ""})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCatalogEndpoint(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/catalog", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var catalog chat.CatalogResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&catalog))
	assert.Len(t, catalog.Categories, 16)
}

func TestWebSocketRouteRequiresUpgrade(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/ws", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}
