package endpoints

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

var calendarHeaders = []string{"Date", "Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// IntegrationsModule mounts the screen pages (/athan, /calendar). The engine
// must have the pages from the templates package set as its HTML renderer.
func IntegrationsModule(provider *prayer.Provider, loc *time.Location, city string) api.Module {
	ctl := newPrayerController(provider, loc, city)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PAGE("/athan", ctl.athanPage)
		c.PAGE("/calendar", ctl.calendarPage)
	})
}

// GET /integrations/athan?date=YYYY-MM-DD
func (p *PrayerController) athanPage(ctx *gin.Context) {
	now := p.now().In(p.loc)
	date := now
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := prayer.ParseDate(raw, p.loc)
		if err != nil {
			ctx.String(http.StatusBadRequest, err.Error())
			return
		}
		date = parsed
	}

	schedule := p.provider.Estimator().Schedule(date)

	// the next prayer only exists on today's page
	var next prayer.NextResult
	isToday := sameDay(date, now)
	if isToday {
		next = prayer.NextPrayer(schedule, now)
	}

	prayers := make([]model.Prayer, 0, len(schedule.Prayers))
	for _, e := range schedule.Prayers {
		clock, period, _ := strings.Cut(e.Clock(), " ")
		prayers = append(prayers, model.Prayer{
			Name:   strings.ToUpper(e.Label),
			Time:   clock,
			Period: period,
			Next:   isToday && e.Name == next.Next.Name,
		})
	}

	ctx.HTML(http.StatusOK, "athan.html", model.AthanPageData{
		City:    strings.ToUpper(p.city),
		Date:    strings.ToUpper(date.Format("January 2, 2006")),
		Sunrise: schedule.Sunrise.Clock(),
		Prayers: prayers,
		Next:    next.Display,
	})
}

// GET /integrations/calendar?year=&month=
func (p *PrayerController) calendarPage(ctx *gin.Context) {
	year, month, err := p.month(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	schedules := p.provider.Estimator().Month(year, month, p.loc)
	days := make([]model.CalendarDay, 0, len(schedules))
	for _, s := range schedules {
		times := make([]string, 0, len(s.Prayers))
		for _, e := range s.Prayers {
			times = append(times, e.Clock())
		}
		days = append(days, model.CalendarDay{
			Date:  fmt.Sprintf("%d/%d", s.Date.Day(), int(s.Date.Month())),
			Times: times,
		})
	}

	ctx.HTML(http.StatusOK, "calendar.html", model.CalendarPageData{
		City:    strings.ToUpper(p.city),
		Month:   strings.ToUpper(time.Date(year, month, 1, 0, 0, 0, 0, p.loc).Format("January 2006")),
		Headers: calendarHeaders,
		Days:    days,
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
