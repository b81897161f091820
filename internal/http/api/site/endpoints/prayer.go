package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/api/site/packets"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

// PrayerModule mounts the estimator endpoints (/prayer/today, /prayer/next, /prayer/calendar)
func PrayerModule(provider *prayer.Provider, loc *time.Location, city string) api.Module {
	ctl := newPrayerController(provider, loc, city)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/prayer/today", ctl.today)
		c.PUBLIC_GET("/prayer/next", ctl.next)
		c.PUBLIC_GET("/prayer/calendar", ctl.calendar)
	})
}

type PrayerController struct {
	provider *prayer.Provider
	loc      *time.Location
	city     string
	now      func() time.Time
}

func newPrayerController(provider *prayer.Provider, loc *time.Location, city string) *PrayerController {
	if loc == nil {
		loc = time.Local
	}
	return &PrayerController{provider: provider, loc: loc, city: city, now: time.Now}
}

// GET /api/site/prayer/today?date=YYYY-MM-DD
func (p *PrayerController) today(ctx *gin.Context) (any, *api.APIError) {
	date := p.now().In(p.loc)
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := prayer.ParseDate(raw, p.loc)
		if err != nil {
			return nil, api.BadRequest(err.Error())
		}
		date = parsed
	}
	return packets.NewScheduleResponse(p.provider.Estimator().Schedule(date)), nil
}

// GET /api/site/prayer/next?at=RFC3339
func (p *PrayerController) next(ctx *gin.Context) (any, *api.APIError) {
	at := p.now()
	if raw := ctx.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, api.BadRequest("invalid at: expected RFC3339 timestamp")
		}
		at = parsed
	}
	return packets.NewNextPrayerResponse(p.provider.Estimator().Next(at.In(p.loc))), nil
}

// GET /api/site/prayer/calendar?year=&month=
func (p *PrayerController) calendar(ctx *gin.Context) (any, *api.APIError) {
	year, month, err := p.month(ctx)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	days := p.provider.Estimator().Month(year, month, p.loc)
	resp := packets.CalendarResponse{
		City:  p.city,
		Year:  year,
		Month: int(month),
		Days:  make([]packets.ScheduleResponse, 0, len(days)),
	}
	for _, s := range days {
		resp.Days = append(resp.Days, packets.NewScheduleResponse(s))
	}
	return resp, nil
}

// month binds the year/month query, defaulting to the current month.
func (p *PrayerController) month(ctx *gin.Context) (int, time.Month, error) {
	var query packets.CalendarQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return 0, 0, err
	}

	now := p.now().In(p.loc)
	year, month := now.Year(), now.Month()
	if query.Year != nil {
		year = *query.Year
	}
	if query.Month != nil {
		month = time.Month(*query.Month)
	}
	return year, month, nil
}
