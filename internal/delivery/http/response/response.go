// Package response writes the JSON envelope shared by every endpoint:
// {"answer": ...} on success, {"message": ...} on failure.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AnswerResponse wraps a successful result.
type AnswerResponse struct {
	Answer any `json:"answer"`
}

// MessageResponse carries a failure. Message is a string, or a list of
// "field: message" entries for validation failures.
type MessageResponse struct {
	Message any    `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Answer writes {"answer": answer}.
func Answer(c echo.Context, statusCode int, answer any) error {
	return c.JSON(statusCode, AnswerResponse{Answer: answer})
}

// Message writes {"message": message}.
func Message(c echo.Context, statusCode int, errorCode string, message any) error {
	return c.JSON(statusCode, MessageResponse{Message: message, Code: errorCode})
}

// InternalServerError never exposes the cause to the client.
func InternalServerError(c echo.Context) error {
	return Message(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later")
}
