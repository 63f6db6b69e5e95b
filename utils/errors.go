package utils

// CustomError carries an HTTP status code alongside the message
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError is a helper to build a CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}
