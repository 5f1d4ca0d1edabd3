package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newRateLimitedApp(reqRate float64, burst int) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := &middleware{
		rateLimitter: newRateLimiter(rate.Limit(reqRate), burst),
		log:          logger,
	}

	app := fiber.New()
	app.Use(m.NewRateLimiter)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	app := newRateLimitedApp(50, 100)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRateLimiterRejectsWhenExhausted(t *testing.T) {
	app := newRateLimitedApp(0, 0)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, ErrTooManyRequests.Error(), body["error"])
}
