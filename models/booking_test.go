package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactDetailsValidate(t *testing.T) {
	valid := ContactDetails{
		FullName:    "Ada Lovelace",
		Email:       "ada@example.com",
		Phone:       "+1 555 0100",
		Description: "Scaling our data pipeline",
	}
	assert.Empty(t, valid.Validate())

	cases := []struct {
		field  string
		mutate func(*ContactDetails)
	}{
		{"fullName", func(c *ContactDetails) { c.FullName = "   " }},
		{"email", func(c *ContactDetails) { c.Email = "" }},
		{"email", func(c *ContactDetails) { c.Email = "ada@" }},
		{"email", func(c *ContactDetails) { c.Email = "ada example@com" }},
		{"phone", func(c *ContactDetails) { c.Phone = "" }},
		{"description", func(c *ContactDetails) { c.Description = " " }},
	}
	for _, tc := range cases {
		c := valid
		tc.mutate(&c)
		assert.Equal(t, tc.field, c.Validate())
	}
}

func TestBookingPayloadSummary(t *testing.T) {
	p := BookingPayload{
		ContactName:  "Ada Lovelace",
		ContactEmail: "ada@example.com",
		ContactPhone: "+1 555 0100",
		Date:         "2026-03-20",
		Time:         "09:00 AM",
		Details:      "Scaling our data pipeline",
	}
	summary := p.Summary()
	for _, want := range []string{"Ada Lovelace", "ada@example.com", "2026-03-20", "09:00 AM", "Scaling our data pipeline"} {
		assert.True(t, strings.Contains(summary, want), want)
	}
}

func TestSessionHasSelection(t *testing.T) {
	s := SchedulingSession{}
	assert.False(t, s.HasSelection())
	s.SelectedDate = "2026-03-20"
	assert.False(t, s.HasSelection())
	s.SelectedTime = "09:00 AM"
	assert.True(t, s.HasSelection())
}
