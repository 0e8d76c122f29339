package api

// Result is the normalized, never-failing view of a call: a tagged success
// or failure the UI can render without inspecting error types.
type Result[T any] struct {
	Success bool
	Data    T
	Error   string
	Status  int
	Fields  []FieldError
	Err     error
}

// Settle folds the (value, error) pair of any Client method into a Result.
func Settle[T any](v T, err error) Result[T] {
	if err == nil {
		return Result[T]{Success: true, Data: v}
	}
	r := Result[T]{Data: v, Err: err, Error: err.Error()}
	if e, ok := AsError(err); ok {
		r.Error = e.Display()
		r.Status = e.Status
		r.Fields = e.Fields
	}
	return r
}
