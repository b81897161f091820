package packets

// REQUESTS FOR /api/site/*

// body for POST /api/site/forms/:kind
type ApplicationRequest struct {
	FullName string            `json:"full_name" binding:"required,max=200"`
	Email    string            `json:"email" binding:"required,email"`
	Phone    string            `json:"phone" binding:"required,min=7,max=30"`
	Address  *string           `json:"address" binding:"omitempty,max=500"`
	Fields   map[string]string `json:"fields" binding:"omitempty,max=30,dive,keys,required,max=64,endkeys,max=2000"`
}

// query for GET /api/site/projects
type ProjectQuery struct {
	Category string `form:"category" binding:"omitempty,project_category"`
	Search   string `form:"search" binding:"omitempty,max=100"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=50"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

// query for GET /api/site/prayer/calendar and /integrations/calendar;
// omitted values default to the current month
type CalendarQuery struct {
	Year  *int `form:"year" binding:"omitempty,min=1,max=9999"`
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
}
