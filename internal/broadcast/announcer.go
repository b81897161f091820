package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

// Announcement is the retained message screens read to show the next
// prayer.
type Announcement struct {
	City     string    `json:"city"`
	Date     string    `json:"date"`
	Display  string    `json:"display"`
	Next     string    `json:"next"`
	Time     string    `json:"time"`
	At       time.Time `json:"at"`
	Current  string    `json:"current"`
	Tomorrow bool      `json:"tomorrow"`
}

// Announcer recomputes the next prayer on every tick and publishes it when
// the display text changes.
type Announcer struct {
	Provider  *prayer.Provider
	Publisher Publisher
	Topic     string
	City      string
	Location  *time.Location
	Interval  time.Duration
	// Now defaults to time.Now
	Now func() time.Time

	last string
}

func (a *Announcer) now() time.Time {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	if a.Location != nil {
		return now().In(a.Location)
	}
	return now()
}

// Tick computes the announcement for the current instant. published reports
// whether it differed from the previous one and was sent.
func (a *Announcer) Tick() (ann Announcement, published bool, err error) {
	now := a.now()
	next := a.Provider.Estimator().Next(now)

	ann = Announcement{
		City:     a.City,
		Date:     now.Format(prayer.DateLayout),
		Display:  next.Display,
		Next:     next.Next.Label,
		Time:     next.Next.Clock(),
		At:       next.At,
		Current:  next.Current.Label,
		Tomorrow: next.Tomorrow,
	}
	if ann.Display == a.last {
		return ann, false, nil
	}

	payload, err := json.Marshal(ann)
	if err != nil {
		return ann, false, fmt.Errorf("encode announcement: %w", err)
	}
	if err := a.Publisher.Publish(a.Topic, true, payload); err != nil {
		return ann, false, err
	}
	a.last = ann.Display
	return ann, true, nil
}

// Run ticks once immediately and then on every Interval until ctx is done.
func (a *Announcer) Run(ctx context.Context) {
	interval := a.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if ann, published, err := a.Tick(); err != nil {
			log.Error().Err(err).Str("topic", a.Topic).Msg("failed to announce next prayer")
		} else if published {
			log.Info().Str("topic", a.Topic).Str("display", ann.Display).Msg("next prayer announced")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
