package apperror

import "net/http"

// AppError is the error shape handlers push into the gin context; the
// error middleware turns it into the JSON envelope. Category and Detail
// are set for dispatch failures so the client can show the right message.
type AppError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Err      error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// Dispatch builds an error for a failed mail dispatch, carrying the
// category and a detail string safe for direct user display.
func Dispatch(code int, category, message, detail string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: category,
		Detail:   detail,
	}
}
