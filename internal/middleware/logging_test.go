package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtlmac/pkg/log"
)

func TestSanitizeRequestBody(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		contains string
		excludes string
	}{
		{
			name:     "password redacted everywhere",
			path:     "/api/v1/anything",
			body:     `{"password":"hunter2","message":"hi"}`,
			contains: `"password":"[SECRET]"`,
			excludes: "hunter2",
		},
		{
			name:     "ssn last four redacted on chat routes",
			path:     "/api/v1/chat/query",
			body:     `{"message":"look up loan","ssn_last4":"6789"}`,
			contains: `"ssn_last4":"[SECRET]"`,
			excludes: "6789",
		},
		{
			name:     "non-json body replaced",
			path:     "/api/v1/chat/query",
			body:     "not json at all",
			contains: "[non-JSON body]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sanitized := sanitizeRequestBody(tt.path, tt.body)
			assert.Contains(t, sanitized, tt.contains)
			if tt.excludes != "" {
				assert.NotContains(t, sanitized, tt.excludes)
			}
		})
	}
}

func TestLoggerConfigRedactsLoggedBodies(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	var buf bytes.Buffer
	logger := log.NewLogger()
	logger.SetOutput(&buf)

	app := fiber.New()
	app.Use(NewRequestIDMiddleware())
	app.Use(LoggerConfig())
	app.Post("/api/v1/chat/query", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	body := `{"message":"look up loan","ssn_last4":"SECRETVALUE123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	logged := buf.String()
	assert.Contains(t, logged, "[SECRET]")
	assert.NotContains(t, logged, "SECRETVALUE123")
}
