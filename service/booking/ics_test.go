package booking

import (
	"strings"
	"testing"

	"github.com/interviewbook/interviewbook-server/cmd/models"
)

func TestRenderICS(t *testing.T) {
	b := &models.Booking{
		CandidateName:   "Ada Lovelace",
		RoleApplied:     "Backend Engineer",
		BookingDate:     "2026-09-07",
		BookingTime:     "09:30",
		DurationMinutes: 30,
	}

	ics := RenderICS(b)
	lines := strings.Split(ics, "\r\n")

	want := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"DTSTART:20260907T093000",
		"SUMMARY:Interview - Backend Engineer",
		"DESCRIPTION:Interview booking for Ada Lovelace",
		"DURATION:PT30M",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), ics)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}
