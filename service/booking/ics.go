package booking

import (
	"fmt"
	"strings"

	"github.com/interviewbook/interviewbook-server/cmd/models"
)

// RenderICS produces a single-event iCalendar file for a booking. The
// timestamp is a floating local time, matching what the confirmation page
// always offered: no timezone conversion is applied to booking times.
func RenderICS(b *models.Booking) string {
	dateStr := strings.ReplaceAll(b.BookingDate, "-", "")
	timeStr := strings.ReplaceAll(b.BookingTime, ":", "") + "00"

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		fmt.Sprintf("DTSTART:%sT%s", dateStr, timeStr),
		fmt.Sprintf("SUMMARY:Interview - %s", b.RoleApplied),
		fmt.Sprintf("DESCRIPTION:Interview booking for %s", b.CandidateName),
		fmt.Sprintf("DURATION:PT%dM", b.DurationMinutes),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n")
}
