package prayer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BaseTime is an unadjusted clock time from the base table.
type BaseTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// String returns the 24h form "05:15".
func (b BaseTime) String() string {
	return fmt.Sprintf("%02d:%02d", b.Hour, b.Minute)
}

func (b *BaseTime) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b BaseTime) MarshalYAML() (any, error) {
	return b.String(), nil
}

// Table is the set of base times the estimator shifts each day.
type Table struct {
	Fajr    BaseTime `yaml:"fajr" json:"fajr"`
	Sunrise BaseTime `yaml:"sunrise" json:"sunrise"`
	Dhuhr   BaseTime `yaml:"dhuhr" json:"dhuhr"`
	Asr     BaseTime `yaml:"asr" json:"asr"`
	Maghrib BaseTime `yaml:"maghrib" json:"maghrib"`
	Isha    BaseTime `yaml:"isha" json:"isha"`
}

// DefaultTable is the table used by the home page calculator.
var DefaultTable = Table{
	Fajr:    BaseTime{5, 15},
	Sunrise: BaseTime{6, 0},
	Dhuhr:   BaseTime{12, 15},
	Asr:     BaseTime{15, 30},
	Maghrib: BaseTime{18, 15},
	Isha:    BaseTime{19, 30},
}

// EventsPageTable is the fixed table the events pages displayed. It differs
// from DefaultTable at dhuhr and asr.
var EventsPageTable = Table{
	Fajr:    BaseTime{5, 15},
	Sunrise: BaseTime{6, 0},
	Dhuhr:   BaseTime{12, 30},
	Asr:     BaseTime{16, 0},
	Maghrib: BaseTime{18, 15},
	Isha:    BaseTime{19, 30},
}

func (t Table) base(name Name) BaseTime {
	switch name {
	case Fajr:
		return t.Fajr
	case Sunrise:
		return t.Sunrise
	case Dhuhr:
		return t.Dhuhr
	case Asr:
		return t.Asr
	case Maghrib:
		return t.Maghrib
	default:
		return t.Isha
	}
}

// Validate checks every base time is a real clock value and that the five
// prayers are in chronological order.
func (t Table) Validate() error {
	prev := -1
	for _, name := range append([]Name{Sunrise}, Order[:]...) {
		b := t.base(name)
		if b.Hour < 0 || b.Hour > 23 || b.Minute < 0 || b.Minute > 59 {
			return &InvalidInputError{Field: string(name), Value: b.String(), Reason: "not a clock time"}
		}
		if name == Sunrise {
			continue
		}
		m := b.Hour*60 + b.Minute
		if m <= prev {
			return &InvalidInputError{Field: string(name), Value: b.String(), Reason: "out of chronological order"}
		}
		prev = m
	}
	return nil
}

// LoadTable reads a YAML base table. Omitted entries keep their DefaultTable
// value.
//
//	fajr: "5:15 AM"
//	dhuhr: "12:30"
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read timetable %q: %w", path, err)
	}
	t := DefaultTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("parse timetable %q: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}
