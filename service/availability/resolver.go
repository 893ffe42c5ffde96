package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/interviewbook/interviewbook-server/cmd/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// TimeSlot is one candidate interview slot on a given date.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ResolveSlots expands the weekly slots matching date's weekday into concrete
// times and marks each one available or taken. It is a pure function of its
// inputs; callers re-run it per request since bookings change underneath.
//
// Rules: a date before today, a blocked date, or a weekday with no active
// slot yields nothing. Each active slot emits times stepping by its duration
// while the full period still fits before end_time; a trailing remainder is
// dropped. A time is unavailable when a non-cancelled booking holds it, or
// when date is today and the time is at or before now. Overlapping slots for
// the same weekday emit independently, duplicates included.
func ResolveSlots(date string, now time.Time, rules []models.AvailabilitySlot, blocked bool, booked map[string]bool) []TimeSlot {
	if blocked {
		return nil
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil
	}

	today := now.Format(dateLayout)
	if date < today {
		return nil
	}
	isToday := date == today
	nowTime := now.Format(timeLayout)

	weekday := int(day.Weekday())

	var slots []TimeSlot
	for _, rule := range rules {
		if !rule.IsActive || rule.DayOfWeek != weekday {
			continue
		}

		start, err := ParseTimeOfDay(rule.StartTime)
		if err != nil {
			continue
		}
		end, err := ParseTimeOfDay(rule.EndTime)
		if err != nil {
			continue
		}
		if rule.SlotDurationMinutes <= 0 {
			continue
		}

		for m := start; m+rule.SlotDurationMinutes <= end; m += rule.SlotDurationMinutes {
			t := formatMinutes(m)
			available := !booked[t]
			if isToday && t <= nowTime {
				available = false
			}
			slots = append(slots, TimeSlot{Time: t, Available: available})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Time < slots[j].Time
	})

	return slots
}

// ParseTimeOfDay converts "HH:MM" (or "HH:MM:SS") to minutes since midnight.
func ParseTimeOfDay(s string) (int, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
