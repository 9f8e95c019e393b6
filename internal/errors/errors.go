package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	// Authentication errors
	ErrCodeUnauthenticated   = "UNAUTHENTICATED"
	ErrCodeInvalidCredential = "INVALID_CREDENTIAL"

	// Authorization errors
	ErrCodeForbidden = "FORBIDDEN"

	// Validation errors
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeMalformedID = "MALFORMED_ID"

	// Resource errors
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeAlreadyDeleted = "ALREADY_DELETED"
	ErrCodeWrongParent    = "WRONG_PARENT"

	// Business rule errors
	ErrCodeAlreadyMember     = "ALREADY_MEMBER"
	ErrCodeAlreadyInvited    = "ALREADY_INVITED"
	ErrCodeUnknownRecipient  = "UNKNOWN_RECIPIENT"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeLastMemberRemoval = "LAST_MEMBER_REMOVAL"

	// Service errors
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// NewAPIErrorWithDetails creates a new APIError with details
func NewAPIErrorWithDetails(code, message string, details interface{}) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// Unauthenticated sends a 401 response for a missing credential
func Unauthenticated(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied. No token provided."
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeUnauthenticated, message))
}

// InvalidCredential sends a 401 response for a bad or expired credential
func InvalidCredential(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid token."
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeInvalidCredential, message))
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "You are not authorized to perform this action."
	}
	RespondWithError(c, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found."
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, message))
}

// MalformedID sends a 400 response for an unusable path identifier
func MalformedID(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid ID."
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeMalformedID, message))
}

// AlreadyDeleted sends a 400 response distinguishing "existed, now gone"
// from plain not-found
func AlreadyDeleted(c *gin.Context, message string) {
	if message == "" {
		message = "This resource is already deleted."
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeAlreadyDeleted, message))
}

// WrongParent sends a 400 response for a path/parent mismatch
func WrongParent(c *gin.Context, message string) {
	if message == "" {
		message = "This resource does not belong to the parent in the path."
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeWrongParent, message))
}

// BadRequest sends a 400 validation response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request."
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeValidation, message))
}

// BadRequestWithDetails sends a 400 validation response naming the
// offending fields
func BadRequestWithDetails(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusBadRequest, NewAPIErrorWithDetails(ErrCodeValidation, message, details))
}

// BusinessRule sends a 400 response with a business-rule error code
func BusinessRule(c *gin.Context, code, message string) {
	RespondWithError(c, http.StatusBadRequest, NewAPIError(code, message))
}

// InternalError sends a 500 response with no internal detail
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error."
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}
