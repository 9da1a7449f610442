package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

func send(t *testing.T, handler fiber.Handler) (int, envelope) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestJsonResponse(t *testing.T) {
	code, body := send(t, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusCreated, true, "Saved", map[string]string{"key": "exam.open"})
	})

	assert.Equal(t, fiber.StatusCreated, code)
	assert.True(t, body.Status)
	assert.Equal(t, "Saved", body.Message)
	assert.Equal(t, map[string]string{"key": "exam.open"}, body.Data)
}

func TestValidationErrorResponse(t *testing.T) {
	code, body := send(t, func(c *fiber.Ctx) error {
		return ValidationErrorResponse(c, map[string]string{"studentId": "학생 ID가 필요합니다"})
	})

	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.False(t, body.Status)
	assert.Equal(t, "Validation failed!", body.Message)
	assert.Equal(t, "학생 ID가 필요합니다", body.Data["studentId"])
}
