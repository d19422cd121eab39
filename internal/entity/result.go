package entity

import "errors"

// Result is the uniform outcome of every workflow call.
type Result struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
}

func OK(data interface{}) Result {
	return Result{Success: true, Data: data}
}

// ResultFromError maps the error taxonomy onto a failed Result. Unknown
// errors become fallback so store internals never reach the caller.
func ResultFromError(err error, fallback string) Result {
	var validationErr *ValidationError
	var persistenceErr *PersistenceError

	switch {
	case err == nil:
		return Result{Success: true}
	case errors.As(err, &validationErr):
		return Result{Error: validationErr.Message, Fields: validationErr.Fields}
	case errors.Is(err, ErrEventNotFound):
		return Result{Error: "Event not found"}
	case errors.As(err, &persistenceErr):
		return Result{Error: persistenceErr.Message}
	default:
		return Result{Error: fallback}
	}
}
