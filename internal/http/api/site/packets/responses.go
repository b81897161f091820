package packets

// RESPONSES FOR /api/site/*

import (
	"time"

	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

type EntryResponse struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Time   string `json:"time"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
}

func NewEntryResponse(e prayer.Entry) EntryResponse {
	return EntryResponse{
		Name:   string(e.Name),
		Label:  e.Label,
		Time:   e.Clock(),
		Hour:   e.Hour,
		Minute: e.Minute,
	}
}

type ScheduleResponse struct {
	Date       string          `json:"date"`
	DayOfYear  int             `json:"day_of_year"`
	Adjustment float64         `json:"adjustment_minutes"`
	Sunrise    EntryResponse   `json:"sunrise"`
	Prayers    []EntryResponse `json:"prayers"`
}

func NewScheduleResponse(s prayer.Schedule) ScheduleResponse {
	day := prayer.DayOfYear(s.Date)
	out := ScheduleResponse{
		Date:       s.Date.Format(prayer.DateLayout),
		DayOfYear:  day,
		Adjustment: prayer.SeasonalAdjustment(day),
		Sunrise:    NewEntryResponse(s.Sunrise),
		Prayers:    make([]EntryResponse, 0, len(s.Prayers)),
	}
	for _, p := range s.Prayers {
		out.Prayers = append(out.Prayers, NewEntryResponse(p))
	}
	return out
}

type NextPrayerResponse struct {
	Display  string        `json:"display"`
	Next     EntryResponse `json:"next"`
	Current  EntryResponse `json:"current"`
	Tomorrow bool          `json:"tomorrow"`
	At       string        `json:"at"`
}

func NewNextPrayerResponse(r prayer.NextResult) NextPrayerResponse {
	return NextPrayerResponse{
		Display:  r.Display,
		Next:     NewEntryResponse(r.Next),
		Current:  NewEntryResponse(r.Current),
		Tomorrow: r.Tomorrow,
		At:       r.At.Format(time.RFC3339),
	}
}

type CalendarResponse struct {
	City  string             `json:"city"`
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Days  []ScheduleResponse `json:"days"`
}

type ApplicationResponse struct {
	Reference string `json:"reference"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
}

type ProjectResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Budget      int64   `json:"budget"`
	Currency    string  `json:"currency"`
	Progress    int     `json:"progress"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Volunteers  int     `json:"volunteers"`
}

func NewProjectResponse(p model.Project) ProjectResponse {
	out := ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		Budget:      p.Budget,
		Currency:    p.Currency,
		Progress:    p.Progress,
		StartDate:   p.StartDate.Format(prayer.DateLayout),
		ImageURL:    p.ImageURL,
		Volunteers:  p.Volunteers,
	}
	if p.EndDate != nil {
		end := p.EndDate.Format(prayer.DateLayout)
		out.EndDate = &end
	}
	return out
}

type ProjectListResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Total      int               `json:"total"`
	HasMore    bool              `json:"has_more"`
	NextOffset int               `json:"next_offset"`
}

type SlideResponse struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Caption  *string `json:"caption,omitempty"`
	ImageURL string  `json:"image_url"`
	Position int     `json:"position"`
}

func NewSlideResponse(s model.Slide) SlideResponse {
	return SlideResponse{
		ID:       s.ID,
		Title:    s.Title,
		Caption:  s.Caption,
		ImageURL: s.ImageURL,
		Position: s.Position,
	}
}
