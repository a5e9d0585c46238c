package response

import "github.com/gin-gonic/gin"

// Error codes used across the service layer
const (
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeInvalidColumn  = "INVALID_COLUMN"
	ErrCodeMalformedInput = "MALFORMED_INPUT"
	ErrCodeSyncFailure    = "SYNC_FAILURE"
	ErrCodeAlreadyExists  = "ALREADY_EXISTS"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// AppError is the error type services return across the handler
// boundary. Code selects the HTTP status; Details is internal context
// that never reaches the response body.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"-"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return e.Code + ": " + e.Message + " (" + e.Details + ")"
	}
	return e.Code + ": " + e.Message
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// SuccessResponse is the success envelope
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   ErrorObj `json:"error"`
}

// ErrorObj carries the error code and message in an ErrorResponse
type ErrorObj struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendSuccess writes a success envelope with the given status code
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// SendError writes an error envelope with the given status code
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   ErrorObj{Code: code, Message: message},
	})
}
