package ctdf

import "errors"

// Error kinds. Every error returned by the timetable wraps exactly one of these so callers can
// branch with errors.Is without knowing the concrete entity.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)

var (
	ErrStationNotFound = &kindError{msg: "station not found", kind: ErrNotFound}
	ErrLineNotFound    = &kindError{msg: "line not found", kind: ErrNotFound}
	ErrVehicleNotFound = &kindError{msg: "transportation vehicle not found", kind: ErrNotFound}
	ErrStopNotFound    = &kindError{msg: "stop not found", kind: ErrNotFound}

	ErrLineAlreadyServed = &kindError{msg: "line already served", kind: ErrAlreadyExists}

	ErrListenerAlreadyRegistered = &kindError{msg: "listener already registered", kind: ErrInvalidArgument}
	ErrListenerNotRegistered     = &kindError{msg: "listener is not registered", kind: ErrInvalidArgument}
	ErrListenerNotComparable     = &kindError{msg: "listener is not comparable", kind: ErrInvalidArgument}
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}
