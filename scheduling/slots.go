package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

// MaxRangeDays caps the date-range slot query, guarding against unbounded
// computation.
const MaxRangeDays = 14

// DateLayout is the calendar-date wire format used throughout the API.
const DateLayout = "2006-01-02"

// AvailableSlot is a derived, bookable time window. Never persisted;
// recomputed on every query.
type AvailableSlot struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Display string    `json:"display"`
}

// minuteRange is a wall-clock range expressed as minutes from midnight.
type minuteRange struct {
	start int
	end   int
}

// parseClock parses a strict "HH:mm" value into minutes from midnight.
func parseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("time '%s' is not in HH:mm format", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("time '%s' is not in HH:mm format", s)
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time '%s' is out of range", s)
	}
	return h*60 + m, nil
}

// ValidateWeeklyAvailability checks day keys, range formats and ordering,
// timezone and slot duration. Called on every availability write so the
// calculator can assume well-formed input.
func ValidateWeeklyAvailability(a models.WeeklyAvailability) error {
	if a.SlotDurationMinutes <= 0 {
		return fmt.Errorf("slotDurationMinutes must be a positive integer")
	}
	if _, err := time.LoadLocation(a.Timezone); err != nil {
		return fmt.Errorf("unknown timezone '%s'", a.Timezone)
	}
	for day, ranges := range a.Days {
		if !isDayName(day) {
			return fmt.Errorf("unknown day-of-week '%s'", day)
		}
		for _, r := range ranges {
			start, err := parseClock(r.Start)
			if err != nil {
				return err
			}
			end, err := parseClock(r.End)
			if err != nil {
				return err
			}
			if start >= end {
				return fmt.Errorf("range %s-%s on %s: start must be before end", r.Start, r.End, day)
			}
		}
	}
	return nil
}

func isDayName(day string) bool {
	for _, d := range models.DayNames {
		if d == day {
			return true
		}
	}
	return false
}

// mergeRanges sorts ranges by start and merges overlapping or adjacent ones
// into disjoint ranges, so overlapping input ranges behave as their union.
func mergeRanges(ranges []minuteRange) []minuteRange {
	if len(ranges) == 0 {
		return nil
	}
	sorted := make([]minuteRange, len(ranges))
	copy(sorted, ranges)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].start < sorted[j-1].start; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	merged := []minuteRange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.start <= last.end {
			if r.end > last.end {
				last.end = r.end
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// ComputeSlots derives the free, bookable slots for one calendar date from a
// mentor's weekly availability, their unavailable-date set and the current
// confirmed bookings. Pure: same inputs, same output.
func ComputeSlots(avail models.WeeklyAvailability, unavailable map[string]bool, bookings []models.Booking, target time.Time) ([]AvailableSlot, error) {
	loc, err := time.LoadLocation(avail.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone '%s'", avail.Timezone)
	}

	local := target.In(loc)
	if unavailable[local.Format(DateLayout)] {
		return nil, nil
	}

	dayRanges := avail.Days[strings.ToLower(local.Weekday().String())]
	if len(dayRanges) == 0 {
		return nil, nil
	}

	ranges := make([]minuteRange, 0, len(dayRanges))
	for _, r := range dayRanges {
		start, err := parseClock(r.Start)
		if err != nil {
			return nil, err
		}
		end, err := parseClock(r.End)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, minuteRange{start: start, end: end})
	}

	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	duration := avail.SlotDurationMinutes

	var slots []AvailableSlot
	for _, r := range mergeRanges(ranges) {
		// trailing remainders shorter than one slot duration are discarded
		for s := r.start; s+duration <= r.end; s += duration {
			start := midnight.Add(time.Duration(s) * time.Minute)
			end := midnight.Add(time.Duration(s+duration) * time.Minute)
			if overlapsConfirmed(bookings, start, end) {
				continue
			}
			slots = append(slots, AvailableSlot{
				Start:   start,
				End:     end,
				Display: start.In(loc).Format("15:04") + " - " + end.In(loc).Format("15:04"),
			})
		}
	}
	return slots, nil
}

// overlapsConfirmed reports whether [start,end) overlaps any confirmed
// booking, partial overlaps included.
func overlapsConfirmed(bookings []models.Booking, start, end time.Time) bool {
	for _, b := range bookings {
		if b.Status != models.BookingStatusConfirmed {
			continue
		}
		if start.Before(b.EndTime.Time()) && b.StartTime.Time().Before(end) {
			return true
		}
	}
	return false
}

// ComputeSlotRange maps each date in [startDate, endDate] (inclusive, at most
// MaxRangeDays days) to its slot list, omitting dates with no slots.
func ComputeSlotRange(avail models.WeeklyAvailability, unavailable map[string]bool, bookings []models.Booking, startDate, endDate string) (map[string][]AvailableSlot, error) {
	loc, err := time.LoadLocation(avail.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone '%s'", avail.Timezone)
	}
	start, err := time.ParseInLocation(DateLayout, startDate, loc)
	if err != nil {
		return nil, fmt.Errorf("startDate '%s' is not in YYYY-MM-DD format", startDate)
	}
	end, err := time.ParseInLocation(DateLayout, endDate, loc)
	if err != nil {
		return nil, fmt.Errorf("endDate '%s' is not in YYYY-MM-DD format", endDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("endDate must not be before startDate")
	}
	if end.After(start.AddDate(0, 0, MaxRangeDays-1)) {
		return nil, fmt.Errorf("date range exceeds the maximum of %d days", MaxRangeDays)
	}

	result := make(map[string][]AvailableSlot)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		slots, err := ComputeSlots(avail, unavailable, bookings, d)
		if err != nil {
			return nil, err
		}
		if len(slots) > 0 {
			result[d.Format(DateLayout)] = slots
		}
	}
	return result, nil
}
