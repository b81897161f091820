// Package prayer estimates the daily prayer times shown on the site and on
// the hall screens. The estimate is a fixed base table shifted by a seasonal
// sinusoid; it is not an astronomical calculation.
package prayer

import (
	"math"
	"time"
)

// Name identifies one entry of a day's schedule.
type Name string

const (
	Fajr    Name = "fajr"
	Sunrise Name = "sunrise"
	Dhuhr   Name = "dhuhr"
	Asr     Name = "asr"
	Maghrib Name = "maghrib"
	Isha    Name = "isha"
)

// Order is the chronological order of the five prayers within a day.
// Sunrise is not a prayer and never takes part in next-prayer selection.
var Order = [5]Name{Fajr, Dhuhr, Asr, Maghrib, Isha}

var labels = map[Name]string{
	Fajr:    "Fajr",
	Sunrise: "Sunrise",
	Dhuhr:   "Dhuhr",
	Asr:     "Asr",
	Maghrib: "Maghrib",
	Isha:    "Isha",
}

// Label returns the display label, e.g. "Maghrib".
func (n Name) Label() string {
	if l, ok := labels[n]; ok {
		return l
	}
	return string(n)
}

// Entry is one computed time of day.
type Entry struct {
	Name   Name   `json:"name"`
	Label  string `json:"label"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
}

// Minutes returns the entry as minutes since midnight.
func (e Entry) Minutes() int {
	return e.Hour*60 + e.Minute
}

// Clock returns the entry formatted for display ("5:15 AM").
func (e Entry) Clock() string {
	return FormatTime(e.Hour, e.Minute)
}

// Schedule holds the computed times for one date. Prayers is always in
// Order.
type Schedule struct {
	Date    time.Time
	Sunrise Entry
	Prayers [5]Entry
}

// Entry looks up a prayer (or sunrise) by name.
func (s Schedule) Entry(name Name) (Entry, bool) {
	if name == Sunrise {
		return s.Sunrise, true
	}
	for _, p := range s.Prayers {
		if p.Name == name {
			return p, true
		}
	}
	return Entry{}, false
}

// DayOfYear returns the number of whole days between midnight of December 31
// of the previous year and t, so January 1 is day 1. The difference is taken
// in t's location.
func DayOfYear(t time.Time) int {
	start := time.Date(t.Year(), time.January, 0, 0, 0, 0, 0, t.Location())
	return int(t.Sub(start) / (24 * time.Hour))
}

// SeasonalAdjustment returns the offset in minutes applied to every base
// time on the given day of year: sin((d-80)·2π/365)·15, bounded to ±15.
func SeasonalAdjustment(dayOfYear int) float64 {
	return math.Sin(float64(dayOfYear-80)*2*math.Pi/365) * 15
}

// ComputeTime shifts a base clock time by the seasonal adjustment for date.
// The fractional minute is floored after the modulo, never rounded.
func ComputeTime(baseHour, baseMinute int, date time.Time) (hour, minute int) {
	total := float64(baseHour*60+baseMinute) + SeasonalAdjustment(DayOfYear(date))

	hour = int(math.Floor(total/60)) % 24
	if hour < 0 {
		hour += 24
	}
	minute = int(math.Floor(math.Mod(total, 60)))
	if minute < 0 {
		minute += 60
	}
	return hour, minute
}

// Estimator computes schedules from one base-time table. It holds no clock
// and no cached results; callers re-invoke it to follow the passage of time.
type Estimator struct {
	table Table
}

func NewEstimator(table Table) *Estimator {
	return &Estimator{table: table}
}

func (e *Estimator) Table() Table {
	return e.table
}

// Schedule computes the five prayers and sunrise for date.
func (e *Estimator) Schedule(date time.Time) Schedule {
	s := Schedule{
		Date:    date,
		Sunrise: compute(Sunrise, e.table.Sunrise, date),
	}
	for i, name := range Order {
		s.Prayers[i] = compute(name, e.table.base(name), date)
	}
	return s
}

// Next computes today's schedule and selects the next prayer after now.
func (e *Estimator) Next(now time.Time) NextResult {
	return NextPrayer(e.Schedule(now), now)
}

// Month computes one schedule per day of the given month, each at local
// midnight in loc.
func (e *Estimator) Month(year int, month time.Month, loc *time.Location) []Schedule {
	if loc == nil {
		loc = time.Local
	}
	days := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	out := make([]Schedule, 0, days)
	for day := 1; day <= days; day++ {
		out = append(out, e.Schedule(time.Date(year, month, day, 0, 0, 0, 0, loc)))
	}
	return out
}

func compute(name Name, base BaseTime, date time.Time) Entry {
	h, m := ComputeTime(base.Hour, base.Minute, date)
	return Entry{Name: name, Label: name.Label(), Hour: h, Minute: m}
}
