package commands

// UserError is a corrective message for the invoking session. These are not
// system failures, just refused input; they never mutate state and never
// escape past the handler.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}
