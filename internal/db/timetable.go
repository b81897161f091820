package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

// base times are stored as "HH:MM" strings; computed times never are
type timetableRow struct {
	Fajr    string `db:"fajr"`
	Sunrise string `db:"sunrise"`
	Dhuhr   string `db:"dhuhr"`
	Asr     string `db:"asr"`
	Maghrib string `db:"maghrib"`
	Isha    string `db:"isha"`
}

func (r timetableRow) table() (prayer.Table, error) {
	var t prayer.Table
	fields := []struct {
		dst *prayer.BaseTime
		src string
	}{
		{&t.Fajr, r.Fajr},
		{&t.Sunrise, r.Sunrise},
		{&t.Dhuhr, r.Dhuhr},
		{&t.Asr, r.Asr},
		{&t.Maghrib, r.Maghrib},
		{&t.Isha, r.Isha},
	}
	for _, f := range fields {
		b, err := prayer.ParseClock(f.src)
		if err != nil {
			return prayer.Table{}, fmt.Errorf("stored timetable: %w", err)
		}
		*f.dst = b
	}
	return t, nil
}

func (s *pgStore) GetTimetable(ctx context.Context) (prayer.Table, error) {
	var row timetableRow
	const q = `
	SELECT fajr, sunrise, dhuhr, asr, maghrib, isha
	  FROM timetables
	 WHERE name = 'default';`

	if err := s.db.GetContext(ctx, &row, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return prayer.Table{}, ErrNotFound
		}
		log.Error().Err(err).Msg("GetTimetable failed")
		return prayer.Table{}, err
	}
	return row.table()
}

func (s *pgStore) SaveTimetable(ctx context.Context, t prayer.Table, updatedBy int) error {
	const q = `
	INSERT INTO timetables (name, fajr, sunrise, dhuhr, asr, maghrib, isha, updated_by, updated_at)
	VALUES ('default', $1, $2, $3, $4, $5, $6, $7, now())
	ON CONFLICT (name) DO UPDATE
	   SET fajr = EXCLUDED.fajr,
	       sunrise = EXCLUDED.sunrise,
	       dhuhr = EXCLUDED.dhuhr,
	       asr = EXCLUDED.asr,
	       maghrib = EXCLUDED.maghrib,
	       isha = EXCLUDED.isha,
	       updated_by = EXCLUDED.updated_by,
	       updated_at = now();`

	_, err := s.db.ExecContext(ctx, q,
		t.Fajr.String(), t.Sunrise.String(), t.Dhuhr.String(),
		t.Asr.String(), t.Maghrib.String(), t.Isha.String(),
		updatedBy,
	)
	if err != nil {
		log.Error().Err(err).Int("user_id", updatedBy).Msg("SaveTimetable failed")
	}
	return err
}
