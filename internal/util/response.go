package util

import (
	"runtime/debug"

	"career-recommender/internal/config"

	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code    int
	Message string
	Data    any
	Meta    any
}

type OrderedSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Meta    any    `json:"meta,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponseFormat struct {
	Code    int
	Message string
	Details any
}

type OrderedErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Trace   string `json:"trace,omitempty"`
}

// SuccessResponse sends the standard success JSON envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(OrderedSuccessResponse{
		Success: true,
		Message: params.Message,
		Data:    params.Data,
		Meta:    params.Meta,
	})
}

// ErrorResponse sends the standard error JSON envelope. The underlying error
// string goes into details; a stack trace is added outside production.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		Error: params.Message,
	}
	if params.Details != nil {
		response.Details = params.Details
	}
	if len(errs) > 0 && errs[0] != nil {
		response.Details = errs[0].Error()
		if config.LoadAppConfig().Env != "production" {
			response.Trace = string(debug.Stack())
		}
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(response)
}
