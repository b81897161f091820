package model

import "time"

var ProjectCategories = []string{"construction", "renovation", "education", "community"}

// Project is a community project shown on the ongoing-projects page.
type Project struct {
	ID          int        `db:"id"          json:"id"`
	Title       string     `db:"title"       json:"title"`
	Category    string     `db:"category"    json:"category"`
	Description string     `db:"description" json:"description"`
	Budget      int64      `db:"budget"      json:"budget"`
	Currency    string     `db:"currency"    json:"currency"`
	Progress    int        `db:"progress"    json:"progress"`
	StartDate   time.Time  `db:"start_date"  json:"start_date"`
	EndDate     *time.Time `db:"end_date"    json:"end_date,omitempty"`
	ImageURL    *string    `db:"image_url"   json:"image_url,omitempty"`
	Volunteers  int        `db:"volunteers"  json:"volunteers"`
	CreatedBy   int        `db:"created_by"  json:"created_by"`
	CreatedAt   time.Time  `db:"created_at"  json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"  json:"updated_at"`
}

// Slide is one image of the home page hero slider.
type Slide struct {
	ID        int       `db:"id"         json:"id"`
	Title     string    `db:"title"      json:"title"`
	Caption   *string   `db:"caption"    json:"caption,omitempty"`
	ImageURL  string    `db:"image_url"  json:"image_url"`
	Position  int       `db:"position"   json:"position"`
	CreatedBy int       `db:"created_by" json:"created_by"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// IsProjectCategory reports whether category is one of ProjectCategories.
func IsProjectCategory(category string) bool {
	for _, c := range ProjectCategories {
		if c == category {
			return true
		}
	}
	return false
}
