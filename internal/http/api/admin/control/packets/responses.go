package packets

import (
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

// returned by the timetable endpoints, times in 24h "05:15" form
type TimetableResponse struct {
	Fajr    string `json:"fajr"`
	Sunrise string `json:"sunrise"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

func NewTimetableResponse(t prayer.Table) TimetableResponse {
	return TimetableResponse{
		Fajr:    t.Fajr.String(),
		Sunrise: t.Sunrise.String(),
		Dhuhr:   t.Dhuhr.String(),
		Asr:     t.Asr.String(),
		Maghrib: t.Maghrib.String(),
		Isha:    t.Isha.String(),
	}
}
