package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"bookcall/services/scheduler"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{scheduler.NewSessionNotFoundError("s1"), http.StatusNotFound},
		{scheduler.NewValidationError("email"), http.StatusBadRequest},
		{scheduler.NewPastDateError("2026-03-09"), http.StatusBadRequest},
		{scheduler.NewFlowError("wrong step"), http.StatusConflict},
		{scheduler.NewSlotError("not resolved"), http.StatusConflict},
		{scheduler.NewSubmitInFlightError(), http.StatusConflict},
		{scheduler.NewDispatchError(errors.New("smtp down")), http.StatusBadGateway},
		{errors.New("redis exploded"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}
