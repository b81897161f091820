package prayer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"january first midnight", date(2025, time.January, 1, 0, 0), 1},
		{"january first late", date(2025, time.January, 1, 23, 59), 1},
		{"equinox common year", date(2025, time.March, 21, 12, 0), 80},
		{"equinox leap year", date(2024, time.March, 20, 0, 0), 80},
		{"last day common year", date(2025, time.December, 31, 0, 0), 365},
		{"last day leap year", date(2024, time.December, 31, 0, 0), 366},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayOfYear(tt.at))
		})
	}
}

func TestSeasonalAdjustment_BoundedAndPeriodic(t *testing.T) {
	assert.Equal(t, 0.0, SeasonalAdjustment(80))
	assert.InDelta(t, 15.0, SeasonalAdjustment(171), 0.01)
	assert.InDelta(t, -15.0, SeasonalAdjustment(353), 0.01)

	for d := 1; d <= 366; d++ {
		adj := SeasonalAdjustment(d)
		assert.GreaterOrEqual(t, adj, -15.0)
		assert.LessOrEqual(t, adj, 15.0)
		assert.InDelta(t, adj, SeasonalAdjustment(d+365), 1e-9)
	}
}

func TestComputeTime(t *testing.T) {
	tests := []struct {
		name       string
		hour, min  int
		on         time.Time
		wantHour   int
		wantMinute int
	}{
		{"no adjustment at day 80", 5, 15, date(2025, time.March, 21, 0, 0), 5, 15},
		{"small positive offset floors", 5, 15, date(2025, time.March, 22, 0, 0), 5, 15},
		{"small negative offset floors down", 5, 15, date(2025, time.March, 20, 0, 0), 5, 14},
		{"near maximum floors instead of rounding", 5, 15, date(2025, time.June, 20, 0, 0), 5, 29},
		{"negative total wraps to previous hour", 0, 5, date(2025, time.December, 19, 0, 0), 23, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := ComputeTime(tt.hour, tt.min, tt.on)
			assert.Equal(t, tt.wantHour, h)
			assert.Equal(t, tt.wantMinute, m)
		})
	}
}

func TestSchedule_RoundTripAtEquinox(t *testing.T) {
	est := NewEstimator(DefaultTable)
	s := est.Schedule(date(2025, time.March, 21, 0, 0))

	want := []string{"5:15 AM", "12:15 PM", "3:30 PM", "6:15 PM", "7:30 PM"}
	for i, p := range s.Prayers {
		assert.Equal(t, Order[i], p.Name)
		assert.Equal(t, want[i], FormatTime(p.Hour, p.Minute))
	}
	assert.Equal(t, "6:00 AM", s.Sunrise.Clock())
	assert.Equal(t, "Maghrib", s.Prayers[3].Label)

	e, ok := s.Entry(Asr)
	require.True(t, ok)
	assert.Equal(t, 15*60+30, e.Minutes())

	_, ok = s.Entry(Name("tahajjud"))
	assert.False(t, ok)
}

func TestMonth(t *testing.T) {
	est := NewEstimator(DefaultTable)

	march := est.Month(2025, time.March, time.UTC)
	require.Len(t, march, 31)
	for i, s := range march {
		assert.Equal(t, i+1, s.Date.Day())
	}
	assert.Equal(t, "5:15 AM", march[20].Prayers[0].Clock())

	assert.Len(t, est.Month(2024, time.February, time.UTC), 29)
	assert.Len(t, est.Month(2025, time.February, nil), 28)
}

func TestTableValidate(t *testing.T) {
	require.NoError(t, DefaultTable.Validate())
	require.NoError(t, EventsPageTable.Validate())

	bad := DefaultTable
	bad.Asr = BaseTime{11, 0}
	err := bad.Validate()
	var inv *InvalidInputError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, "asr", inv.Field)

	bad = DefaultTable
	bad.Isha = BaseTime{24, 0}
	assert.Error(t, bad.Validate())
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "timetable.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dhuhr: \"12:30 PM\"\nasr: \"16:00\"\n"), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, EventsPageTable, table)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("fajr: \"late\"\n"), 0o644))
	_, err = LoadTable(bad)
	assert.Error(t, err)

	_, err = LoadTable(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
