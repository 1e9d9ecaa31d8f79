package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking slot grid. The salon takes appointments on a fixed half-hour
// grid from opening to closing, closing slot included.
const (
	OpeningTime         = "09:00"
	ClosingTime         = "18:00"
	SlotIntervalMinutes = 30
)
