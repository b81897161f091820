package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Kinds of application the site accepts.
const (
	ApplicationMember   = "member"
	ApplicationFamily   = "family"
	ApplicationZakath   = "zakath"
	ApplicationMarriage = "marriage"
	ApplicationJanaza   = "janaza"
)

var ApplicationKinds = []string{
	ApplicationMember,
	ApplicationFamily,
	ApplicationZakath,
	ApplicationMarriage,
	ApplicationJanaza,
}

func IsApplicationKind(kind string) bool {
	for _, k := range ApplicationKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Fields carries the kind-specific answers of an application form. It is
// stored as a JSON document.
type Fields map[string]string

func (f Fields) Value() (driver.Value, error) {
	if f == nil {
		return "{}", nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (f *Fields) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = Fields{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("fields: unsupported source type")
	}
	return json.Unmarshal(raw, f)
}

type Application struct {
	ID        int       `db:"id"         json:"id"`
	Reference string    `db:"reference"  json:"reference"`
	Kind      string    `db:"kind"       json:"kind"`
	FullName  string    `db:"full_name"  json:"full_name"`
	Email     string    `db:"email"      json:"email"`
	Phone     string    `db:"phone"      json:"phone"`
	Address   *string   `db:"address"    json:"address,omitempty"`
	Fields    Fields    `db:"fields"     json:"fields"`
	ClientIP  string    `db:"client_ip"  json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
