package availability

import (
	"reflect"
	"testing"
	"time"

	"github.com/interviewbook/interviewbook-server/cmd/models"
)

func rule(day int, start, end string, duration int, active bool) models.AvailabilitySlot {
	return models.AvailabilitySlot{
		DayOfWeek:           day,
		StartTime:           start,
		EndTime:             end,
		SlotDurationMinutes: duration,
		IsActive:            active,
	}
}

// 2026-09-07 is a Monday.
var (
	monday     = "2026-09-07"
	mondayDow  = 1
	before     = time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	noBookings = map[string]bool{}
)

func times(slots []TimeSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Time
	}
	return out
}

func TestResolveSlotsFullDay(t *testing.T) {
	rules := []models.AvailabilitySlot{rule(mondayDow, "09:00", "17:00", 30, true)}

	slots := ResolveSlots(monday, before, rules, false, noBookings)

	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	if slots[0].Time != "09:00" {
		t.Errorf("first slot = %s, want 09:00", slots[0].Time)
	}
	if last := slots[len(slots)-1].Time; last != "16:30" {
		t.Errorf("last slot = %s, want 16:30", last)
	}
	for _, s := range slots {
		if s.Time == "17:00" {
			t.Error("17:00 must never be emitted for a 17:00 end time")
		}
		if !s.Available {
			t.Errorf("slot %s should be available with no bookings", s.Time)
		}
	}
}

func TestResolveSlotsTrailingRemainderDropped(t *testing.T) {
	rules := []models.AvailabilitySlot{rule(mondayDow, "09:00", "17:10", 30, true)}

	slots := ResolveSlots(monday, before, rules, false, noBookings)

	if last := slots[len(slots)-1].Time; last != "16:30" {
		t.Errorf("last slot = %s, want 16:30 (trailing 10 minutes dropped)", last)
	}
	for _, s := range slots {
		if s.Time == "17:00" {
			t.Error("partial 17:00 slot must not be emitted")
		}
	}
}

func TestResolveSlotsBlockedDate(t *testing.T) {
	rules := []models.AvailabilitySlot{rule(mondayDow, "09:00", "17:00", 30, true)}

	if slots := ResolveSlots(monday, before, rules, true, noBookings); len(slots) != 0 {
		t.Errorf("blocked date must yield no slots, got %d", len(slots))
	}
}

func TestResolveSlotsPastDate(t *testing.T) {
	rules := []models.AvailabilitySlot{rule(mondayDow, "09:00", "17:00", 30, true)}
	after := time.Date(2026, 9, 8, 8, 0, 0, 0, time.Local)

	if slots := ResolveSlots(monday, after, rules, false, noBookings); len(slots) != 0 {
		t.Errorf("past date must yield no slots, got %d", len(slots))
	}
}

func TestResolveSlotsNoMatchingWeekday(t *testing.T) {
	rules := []models.AvailabilitySlot{rule(3, "09:00", "17:00", 30, true)}

	if slots := ResolveSlots(monday, before, rules, false, noBookings); len(slots) != 0 {
		t.Errorf("weekday with no rule must yield no slots, got %d", len(slots))
	}
}

func TestResolveSlotsInactiveRuleIgnored(t *testing.T) {
	rules := []models.AvailabilitySlot{rule(mondayDow, "09:00", "17:00", 30, false)}

	if slots := ResolveSlots(monday, before, rules, false, noBookings); len(slots) != 0 {
		t.Errorf("inactive rule must yield no slots, got %d", len(slots))
	}
}

func TestResolveSlotsSameDayPastSuppression(t *testing.T) {
	rules := []models.AvailabilitySlot{rule(mondayDow, "10:30", "11:30", 30, true)}
	// 10:31 on the target date itself.
	now := time.Date(2026, 9, 7, 10, 31, 0, 0, time.Local)

	slots := ResolveSlots(monday, now, rules, false, noBookings)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].Time != "10:30" || slots[0].Available {
		t.Errorf("10:30 must be present but unavailable at 10:31, got %+v", slots[0])
	}
	if slots[1].Time != "11:00" || !slots[1].Available {
		t.Errorf("11:00 must remain available at 10:31, got %+v", slots[1])
	}
}

func TestResolveSlotsEqualTimeCountsAsPast(t *testing.T) {
	rules := []models.AvailabilitySlot{rule(mondayDow, "10:30", "11:00", 30, true)}
	now := time.Date(2026, 9, 7, 10, 30, 0, 0, time.Local)

	slots := ResolveSlots(monday, now, rules, false, noBookings)
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if slots[0].Available {
		t.Error("a slot at exactly now must be unavailable")
	}
}

func TestResolveSlotsBookedTimes(t *testing.T) {
	rules := []models.AvailabilitySlot{rule(mondayDow, "09:00", "11:00", 30, true)}
	booked := map[string]bool{"09:30": true}

	slots := ResolveSlots(monday, before, rules, false, booked)

	want := map[string]bool{"09:00": true, "09:30": false, "10:00": true, "10:30": true}
	for _, s := range slots {
		if s.Available != want[s.Time] {
			t.Errorf("slot %s available = %v, want %v", s.Time, s.Available, want[s.Time])
		}
	}

	// A cancelled booking no longer occupies the slot.
	slots = ResolveSlots(monday, before, rules, false, noBookings)
	for _, s := range slots {
		if !s.Available {
			t.Errorf("slot %s should be free again once its booking is cancelled", s.Time)
		}
	}
}

func TestResolveSlotsIdempotent(t *testing.T) {
	rules := []models.AvailabilitySlot{
		rule(mondayDow, "09:00", "12:00", 30, true),
		rule(mondayDow, "14:00", "16:00", 60, true),
	}
	booked := map[string]bool{"10:00": true}

	first := ResolveSlots(monday, before, rules, false, booked)
	second := ResolveSlots(monday, before, rules, false, booked)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs must produce identical output:\n%v\n%v", first, second)
	}
}

func TestResolveSlotsMultipleRulesSortedAscending(t *testing.T) {
	rules := []models.AvailabilitySlot{
		rule(mondayDow, "14:00", "16:00", 60, true),
		rule(mondayDow, "09:00", "10:00", 30, true),
	}

	got := times(ResolveSlots(monday, before, rules, false, noBookings))
	want := []string{"09:00", "09:30", "14:00", "15:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("slots = %v, want %v", got, want)
	}
}

func TestResolveSlotsOverlappingRulesEmitDuplicates(t *testing.T) {
	rules := []models.AvailabilitySlot{
		rule(mondayDow, "09:00", "10:00", 30, true),
		rule(mondayDow, "09:00", "10:00", 30, true),
	}

	got := times(ResolveSlots(monday, before, rules, false, noBookings))
	want := []string{"09:00", "09:00", "09:30", "09:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("overlapping rules emit independently, got %v, want %v", got, want)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"09:00:00", 540, false},
		{"9:00", 540, false},
		{"25:00", 0, true},
		{"09:60", 0, true},
		{"09-00", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
