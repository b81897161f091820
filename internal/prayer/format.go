package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatTime renders a 24h clock value on a 12h clock: "1:05 PM". Hour 0
// and hour 12 both display as 12.
func FormatTime(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}

// ParseClock reads either a 12h clock with an AM/PM suffix ("4:00 PM") or a
// 24h clock ("16:00").
func ParseClock(s string) (BaseTime, error) {
	raw := strings.TrimSpace(s)
	clock, modifier, hasModifier := strings.Cut(raw, " ")

	hs, ms, ok := strings.Cut(clock, ":")
	if !ok || len(ms) != 2 {
		return BaseTime{}, &InvalidInputError{Field: "time", Value: s, Reason: "expected h:mm"}
	}
	hour, err := strconv.Atoi(hs)
	if err != nil {
		return BaseTime{}, &InvalidInputError{Field: "time", Value: s, Reason: "hour is not a number"}
	}
	minute, err := strconv.Atoi(ms)
	if err != nil || minute < 0 || minute > 59 {
		return BaseTime{}, &InvalidInputError{Field: "time", Value: s, Reason: "minute out of range"}
	}

	if !hasModifier {
		if hour < 0 || hour > 23 {
			return BaseTime{}, &InvalidInputError{Field: "time", Value: s, Reason: "hour out of range"}
		}
		return BaseTime{Hour: hour, Minute: minute}, nil
	}

	if hour < 1 || hour > 12 {
		return BaseTime{}, &InvalidInputError{Field: "time", Value: s, Reason: "hour out of range"}
	}
	switch strings.ToUpper(strings.TrimSpace(modifier)) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return BaseTime{}, &InvalidInputError{Field: "time", Value: s, Reason: "suffix must be AM or PM"}
	}
	return BaseTime{Hour: hour, Minute: minute}, nil
}

// DateLayout is the calendar date format accepted by the HTTP API.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date at midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, &InvalidInputError{Field: "date", Value: s, Reason: "expected YYYY-MM-DD"}
	}
	return t, nil
}
