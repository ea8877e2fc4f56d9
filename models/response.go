package models

// APIResponse is the envelope every service call and HTTP response uses.
// Build it with OK or Fail so Success is never left implicit.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func OK[T any](message string, data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Message: message, Data: data}
}

func Fail[T any](message string) APIResponse[T] {
	return APIResponse[T]{Success: false, Message: message}
}
