package commands

import (
	"errors"
	"fmt"
)

// ErrNoHandler is returned by [Context.RunSelf] when the resolved command has
// no handler bound. Dispatch treats it as a silent failure rather than a
// reportable error.
var ErrNoHandler = errors.New("command has no handler")

// RegistrationError reports misuse of the registration API: a duplicate
// name/alias, a malformed name, or an invalid argument schema. It is only
// ever returned while a command tree is being built; runtime dispatch
// failures are reported to the Sender instead.
type RegistrationError struct {
	msg string
}

func (e *RegistrationError) Error() string { return e.msg }

func registrationErrorf(format string, args ...any) error {
	return &RegistrationError{msg: fmt.Sprintf(format, args...)}
}
