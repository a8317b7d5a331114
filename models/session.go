package models

import "time"

// FlowState is the scheduling wizard's current step. Exactly one state is
// held at a time; transitions are enforced by the scheduler service.
type FlowState string

const (
	FlowSelectingDateTime FlowState = "selecting_datetime"
	FlowEnteringDetails   FlowState = "entering_details"
	FlowSubmitting        FlowState = "submitting"
	FlowConfirmed         FlowState = "confirmed"
	FlowSubmissionFailed  FlowState = "submission_failed"
)

// SlotStatus tracks the slot resolver's progress for the selected date.
// "ready" with zero slots means the day genuinely has no availability, which
// is distinct from a resolve still in flight or a failed resolve.
type SlotStatus string

const (
	SlotsNotRequested SlotStatus = "not_requested"
	SlotsLoading      SlotStatus = "loading"
	SlotsReady        SlotStatus = "ready"
	SlotsFailed       SlotStatus = "failed"
)

// SchedulingSession holds the full state of one visitor's booking attempt.
// Sessions live in the session cache with a TTL; nothing is persisted until
// a booking is confirmed.
type SchedulingSession struct {
	SessionID string      `json:"sessionId"`
	Cursor    MonthCursor `json:"cursor"`

	SelectedDate string `json:"selectedDate,omitempty"` // DateLayout, empty = unset
	SelectedTime string `json:"selectedTime,omitempty"` // slot label, empty = unset

	SlotStatus SlotStatus `json:"slotStatus"`
	Slots      []string   `json:"slots,omitempty"`
	SlotsFor   string     `json:"slotsFor,omitempty"` // date the slot set was resolved for
	ResolveSeq int        `json:"resolveSeq"`         // bumped per date selection; stale resolves are discarded

	Flow           FlowState      `json:"flow"`
	Contact        ContactDetails `json:"contact"`
	ConfirmedEmail string         `json:"confirmedEmail,omitempty"`
	BookingID      string         `json:"bookingId,omitempty"`
	LastError      string         `json:"lastError,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// HasSelection reports whether both a date and a time have been chosen.
func (s *SchedulingSession) HasSelection() bool {
	return s.SelectedDate != "" && s.SelectedTime != ""
}
