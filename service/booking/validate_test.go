package booking

import (
	"strings"
	"testing"
)

func validRequest() createBookingRequest {
	return createBookingRequest{
		CandidateName:  "Ada Lovelace",
		CandidateEmail: "ada@example.com",
		CandidatePhone: "+233201234567",
		RoleApplied:    "Backend Engineer",
		Notes:          "Prefers mornings",
		BookingDate:    "2026-09-07",
		BookingTime:    "09:30",
	}
}

func TestValidateBookingRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*createBookingRequest)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r *createBookingRequest) {},
			wantErr: false,
		},
		{
			name:    "optional fields empty",
			mutate:  func(r *createBookingRequest) { r.CandidatePhone = ""; r.Notes = "" },
			wantErr: false,
		},
		{
			name:    "missing name",
			mutate:  func(r *createBookingRequest) { r.CandidateName = "" },
			wantErr: true,
		},
		{
			name:    "missing email",
			mutate:  func(r *createBookingRequest) { r.CandidateEmail = "" },
			wantErr: true,
		},
		{
			name:    "malformed email",
			mutate:  func(r *createBookingRequest) { r.CandidateEmail = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "missing role",
			mutate:  func(r *createBookingRequest) { r.RoleApplied = "" },
			wantErr: true,
		},
		{
			name:    "name too long",
			mutate:  func(r *createBookingRequest) { r.CandidateName = strings.Repeat("a", 101) },
			wantErr: true,
		},
		{
			name:    "phone too long",
			mutate:  func(r *createBookingRequest) { r.CandidatePhone = strings.Repeat("1", 21) },
			wantErr: true,
		},
		{
			name:    "notes too long",
			mutate:  func(r *createBookingRequest) { r.Notes = strings.Repeat("n", 1001) },
			wantErr: true,
		},
		{
			name:    "notes at limit",
			mutate:  func(r *createBookingRequest) { r.Notes = strings.Repeat("n", 1000) },
			wantErr: false,
		},
		{
			name:    "bad date format",
			mutate:  func(r *createBookingRequest) { r.BookingDate = "07/09/2026" },
			wantErr: true,
		},
		{
			name:    "bad time format",
			mutate:  func(r *createBookingRequest) { r.BookingTime = "9.30am" },
			wantErr: true,
		},
		{
			name:    "missing date",
			mutate:  func(r *createBookingRequest) { r.BookingDate = "" },
			wantErr: true,
		},
		{
			name:    "missing time",
			mutate:  func(r *createBookingRequest) { r.BookingTime = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := validateBookingRequest(&req)
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestValidStatusTarget(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"completed", true},
		{"cancelled", true},
		{"no-show", true},
		{"scheduled", false},
		{"deleted", false},
		{"", false},
		{"Cancelled", false},
	}

	for _, tt := range tests {
		if got := validStatusTarget(tt.status); got != tt.want {
			t.Errorf("validStatusTarget(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
