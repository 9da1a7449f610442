package studentValidator

import (
	"errors"

	"runji/middleware"
	"runji/models"
	"runji/validators"

	"github.com/gofiber/fiber/v2"
)

// Locals keys holding the validated payloads.
const (
	LocalLogin          = "validatedLogin"
	LocalSubmitTest     = "validatedSubmitTest"
	LocalSubmitUnitTest = "validatedSubmitUnitTest"
)

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Login)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validators.Login(reqData); err != nil {
			return validationFailed(c, err)
		}

		c.Locals(LocalLogin, reqData)
		return c.Next()
	}
}

// SubmitTest validator middleware
func SubmitTest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.SubmitTest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validators.SubmitTest(reqData); err != nil {
			return validationFailed(c, err)
		}

		c.Locals(LocalSubmitTest, reqData)
		return c.Next()
	}
}

// SubmitUnitTest validator middleware
func SubmitUnitTest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.SubmitUnitTest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validators.SubmitUnitTest(reqData); err != nil {
			return validationFailed(c, err)
		}

		c.Locals(LocalSubmitUnitTest, reqData)
		return c.Next()
	}
}

func validationFailed(c *fiber.Ctx, err error) error {
	var errs validators.ValidationErrors
	if errors.As(err, &errs) {
		return middleware.ValidationErrorResponse(c, errs)
	}
	return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
}
