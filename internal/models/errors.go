package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across services and handlers.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyLiked       = "ALREADY_LIKED"
	CodeNotLiked           = "NOT_LIKED"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError represents a custom application error.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewInvalidCredentialsError() *AppError {
	return &AppError{Code: CodeInvalidCredentials, Message: "Invalid Credentials"}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

func NewAlreadyLikedError() *AppError {
	return &AppError{Code: CodeAlreadyLiked, Message: "The post is already liked by this user"}
}

func NewNotLikedError() *AppError {
	return &AppError{Code: CodeNotLiked, Message: "The post has not yet been liked by this user"}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Server Error", Err: err}
}

// validationBody is the wire shape for validation failures: a list of {msg} objects.
type validationBody struct {
	Errors []msgItem `json:"errors"`
}

type msgItem struct {
	Msg string `json:"msg"`
}

// RespondWithError writes the wire representation of err with the given status.
// Validation and credential failures render as {"errors":[{"msg":...}]},
// internal errors as a plain-text "Server Error" body (existing clients
// expect the bare string), everything else as {"msg":...}.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	appErr, ok := err.(*AppError)
	if !ok {
		appErr = NewInternalError(err)
		status = fiber.StatusInternalServerError
	}

	switch appErr.Code {
	case CodeValidation, CodeInvalidCredentials:
		return c.Status(status).JSON(validationBody{Errors: []msgItem{{Msg: appErr.Message}}})
	case CodeInternal:
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error")
	default:
		return c.Status(status).JSON(fiber.Map{"msg": appErr.Message})
	}
}
