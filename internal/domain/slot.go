package domain

import "time"

// TimeSlots returns the bookable start times for any day: every half hour
// from opening to closing, closing included. The grid is fixed; there is no
// per-artist or per-day schedule.
func TimeSlots() []string {
	open, _ := time.Parse(TimeFormat, OpeningTime)
	close, _ := time.Parse(TimeFormat, ClosingTime)

	slots := make([]string, 0)
	for t := open; !t.After(close); t = t.Add(SlotIntervalMinutes * time.Minute) {
		slots = append(slots, t.Format(TimeFormat))
	}
	return slots
}

// IsValidSlot reports whether t is one of the fixed slot start times.
func IsValidSlot(t string) bool {
	for _, slot := range TimeSlots() {
		if slot == t {
			return true
		}
	}
	return false
}

// IsDateSelectable reports whether a date may be chosen for an appointment:
// any date from today onward, with no upper bound. There is deliberately no
// availability or overlap check at this layer; the backend owns conflict
// handling.
func IsDateSelectable(date, now time.Time) bool {
	return !isDateInPast(date, now)
}

// isDateInPast compares calendar dates only, ignoring time of day.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
