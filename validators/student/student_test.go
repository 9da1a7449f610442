package studentValidator

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runji/models"
)

type response struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

func newApp(validator fiber.Handler, local string) *fiber.App {
	app := fiber.New()
	app.Post("/", validator, func(c *fiber.Ctx) error {
		return c.JSON(c.Locals(local))
	})
	return app
}

func post(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	app := newApp(Login(), LocalLogin)

	status, raw := post(t, app, `{"studentId":"","studentName":""}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, status)

	var res response
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.False(t, res.Status)
	assert.Equal(t, "Validation failed!", res.Message)
	assert.Equal(t, "학생 ID를 입력해주세요", res.Data["studentId"])
	assert.Equal(t, "이름을 입력해주세요", res.Data["studentName"])
}

func TestLoginPassesPayload(t *testing.T) {
	app := newApp(Login(), LocalLogin)

	status, raw := post(t, app, `{"studentId":"s-001","studentName":"김하늘"}`)
	require.Equal(t, fiber.StatusOK, status)

	var got models.Login
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, models.Login{StudentID: "s-001", StudentName: "김하늘"}, got)
}

func TestSubmitTestRejectsEmptyStudent(t *testing.T) {
	app := newApp(SubmitTest(), LocalSubmitTest)

	status, raw := post(t, app, `{"studentId":"","studentName":"","examId":1,"answers":[]}`)
	require.Equal(t, fiber.StatusUnprocessableEntity, status)

	var res response
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, "학생 ID가 필요합니다", res.Data["studentId"])
	assert.Equal(t, "이름이 필요합니다", res.Data["studentName"])
}

func TestSubmitUnitTestPassesPayload(t *testing.T) {
	app := newApp(SubmitUnitTest(), LocalSubmitUnitTest)

	status, raw := post(t, app, `{"studentId":"s-001","studentName":"김하늘","unitName":"방어 작용","answers":[{"questionNumber":301,"answer":"4"}]}`)
	require.Equal(t, fiber.StatusOK, status)

	var got models.SubmitUnitTest
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "방어 작용", got.UnitName)
	require.Len(t, got.Answers, 1)
	assert.Equal(t, 301, got.Answers[0].QuestionNumber)
}

func TestMalformedBody(t *testing.T) {
	app := newApp(SubmitUnitTest(), LocalSubmitUnitTest)

	status, raw := post(t, app, `{"studentId":`)
	require.Equal(t, fiber.StatusBadRequest, status)

	var res response
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, "Invalid request body!", res.Message)
}
