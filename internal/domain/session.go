package domain

import "time"

// Session carries a user's answers and draw between requests.
type Session struct {
	ID        string       `json:"id"`
	Context   *UserContext `json:"context,omitempty"`
	Draw      *DrawResult  `json:"draw,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// UsageStatus is the monthly allowance state of one user.
type UsageStatus struct {
	Allowed         bool      `json:"allowed"`
	LastReadingDate string    `json:"last_reading_date,omitempty"` // YYYY-MM-DD
	SigilType       string    `json:"sigil_type,omitempty"`
	NextAvailable   time.Time `json:"next_available,omitempty"`
}

// UsageDateLayout is the format of UsageStatus.LastReadingDate.
const UsageDateLayout = "2006-01-02"

// SameMonth reports whether a and b fall in the same calendar month of a's
// location.
func SameMonth(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// NextMonth returns the first instant of the month after t.
func NextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}
