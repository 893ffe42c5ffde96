package mailer

import (
	"strings"
	"testing"
)

func TestRenderConfirmationWithMeetingLink(t *testing.T) {
	body, err := RenderConfirmation(confirmationData{
		CandidateName: "Ada Lovelace",
		Date:          "Monday, September 7, 2026",
		Time:          "09:30",
		Role:          "Backend Engineer",
		MeetingLink:   "https://meet.example.com/abc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Ada Lovelace",
		"Monday, September 7, 2026",
		"09:30",
		"Backend Engineer",
		"https://meet.example.com/abc",
		"Video Meeting Link",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("confirmation body missing %q", want)
		}
	}
}

func TestRenderConfirmationWithoutMeetingLink(t *testing.T) {
	body, err := RenderConfirmation(confirmationData{
		CandidateName: "Ada Lovelace",
		Date:          "Monday, September 7, 2026",
		Time:          "09:30",
		Role:          "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(body, "Video Meeting Link") {
		t.Error("meeting link section must be omitted when no link is configured")
	}
}

func TestRenderConfirmationEscapesHTML(t *testing.T) {
	body, err := RenderConfirmation(confirmationData{
		CandidateName: `<script>alert("x")</script>`,
		Date:          "Monday, September 7, 2026",
		Time:          "09:30",
		Role:          "Backend Engineer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(body, "<script>") {
		t.Error("candidate-supplied fields must be HTML-escaped")
	}
}

func TestFormatLongDate(t *testing.T) {
	if got := formatLongDate("2026-09-07"); got != "Monday, September 7, 2026" {
		t.Errorf("formatLongDate = %q", got)
	}
	// Unparseable input falls through unchanged.
	if got := formatLongDate("garbage"); got != "garbage" {
		t.Errorf("formatLongDate(garbage) = %q", got)
	}
}
