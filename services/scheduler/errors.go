package scheduler

import (
	"errors"
	"fmt"
)

// SchedulerError carries a machine-readable code the HTTP layer maps to a
// status.
type SchedulerError struct {
	Code    string
	Message string
}

func (e *SchedulerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

const (
	CodeSessionNotFound = "sessionNotFound"
	CodeFlow            = "flowError"
	CodePastDate        = "pastDate"
	CodeSlot            = "slotError"
	CodeValidation      = "validationError"
	CodeSubmitInFlight  = "submitInFlight"
	CodeDispatch        = "dispatchError"
)

func NewSessionNotFoundError(sessionID string) error {
	return &SchedulerError{Code: CodeSessionNotFound, Message: fmt.Sprintf("session %s not found or expired", sessionID)}
}

func NewFlowError(msg string) error {
	return &SchedulerError{Code: CodeFlow, Message: msg}
}

func NewPastDateError(date string) error {
	return &SchedulerError{Code: CodePastDate, Message: fmt.Sprintf("date %s is in the past", date)}
}

func NewSlotError(msg string) error {
	return &SchedulerError{Code: CodeSlot, Message: msg}
}

func NewValidationError(field string) error {
	return &SchedulerError{Code: CodeValidation, Message: fmt.Sprintf("missing or invalid field: %s", field)}
}

func NewSubmitInFlightError() error {
	return &SchedulerError{Code: CodeSubmitInFlight, Message: "a submission is already in flight"}
}

func NewDispatchError(err error) error {
	return &SchedulerError{Code: CodeDispatch, Message: fmt.Sprintf("could not deliver the booking request: %v", err)}
}

// CodeOf extracts the scheduler error code, or "" for foreign errors.
func CodeOf(err error) string {
	var se *SchedulerError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
