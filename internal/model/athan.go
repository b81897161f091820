package model

type Prayer struct {
	Name   string // “FAJR”, “DHUHR”, …
	Time   string // “5:12”
	Period string // “AM” or “PM”
	Next   bool
}

type AthanPageData struct {
	City    string
	Date    string // “AUGUST 5, 2025”
	Sunrise string
	Prayers []Prayer
	Next    string // “Next: Asr at 3:30 PM”
}

type CalendarDay struct {
	Date  string // “5/8”
	Times []string
}

type CalendarPageData struct {
	City    string
	Month   string // “AUGUST 2025”
	Headers []string
	Days    []CalendarDay
}
