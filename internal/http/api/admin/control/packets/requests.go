package packets

import (
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

// body for PUT /api/admin/timetable; each time is "5:15 AM" or "05:15"
type TimetableRequest struct {
	Fajr    string `json:"fajr" binding:"required,clock"`
	Sunrise string `json:"sunrise" binding:"required,clock"`
	Dhuhr   string `json:"dhuhr" binding:"required,clock"`
	Asr     string `json:"asr" binding:"required,clock"`
	Maghrib string `json:"maghrib" binding:"required,clock"`
	Isha    string `json:"isha" binding:"required,clock"`
}

// Table parses the request into a base table. It does not check the order of
// the prayers; see prayer.Table.Validate.
func (r TimetableRequest) Table() (prayer.Table, error) {
	var t prayer.Table
	for _, f := range []struct {
		raw string
		dst *prayer.BaseTime
	}{
		{r.Fajr, &t.Fajr},
		{r.Sunrise, &t.Sunrise},
		{r.Dhuhr, &t.Dhuhr},
		{r.Asr, &t.Asr},
		{r.Maghrib, &t.Maghrib},
		{r.Isha, &t.Isha},
	} {
		b, err := prayer.ParseClock(f.raw)
		if err != nil {
			return prayer.Table{}, err
		}
		*f.dst = b
	}
	return t, nil
}

// query for GET /api/admin/applications
type ApplicationQuery struct {
	Kind string `form:"kind" binding:"omitempty,application_kind"`
}

// body for POST /api/admin/projects
type CreateProjectRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Category    string  `json:"category" binding:"required,project_category,ne=all"`
	Description string  `json:"description" binding:"required,max=5000"`
	Budget      int64   `json:"budget" binding:"min=0"`
	Currency    string  `json:"currency" binding:"omitempty,len=3,uppercase"`
	Progress    int     `json:"progress" binding:"min=0,max=100"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url"`
	Volunteers  int     `json:"volunteers" binding:"min=0"`
}

// body for PUT /api/admin/projects/:id/progress
type UpdateProgressRequest struct {
	Progress   *int `json:"progress" binding:"required,min=0,max=100"`
	Volunteers *int `json:"volunteers" binding:"required,min=0"`
}
