// exposes a Store interface that is passed to API controllers
package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

// DefaultPageSize is the number of projects shown before "load more".
const DefaultPageSize = 6

// ProjectFilter narrows ListProjects. An empty or "all" category matches
// every project; Search matches title or description, case-insensitively.
type ProjectFilter struct {
	Category string
	Search   string
	Limit    int
	Offset   int
}

func (f ProjectFilter) normalized() ProjectFilter {
	if f.Category == "all" {
		f.Category = ""
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

type NewProject struct {
	Title       string
	Category    string
	Description string
	Budget      int64
	Currency    string
	Progress    int
	StartDate   time.Time
	EndDate     *time.Time
	ImageURL    *string
	Volunteers  int
}

type Store interface {
	// users
	CreateUser(ctx context.Context, email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	UpdateUserProfile(ctx context.Context, id int, email string, name *string) error

	// base-time table; ErrNotFound until an admin saves one
	GetTimetable(ctx context.Context) (prayer.Table, error)
	SaveTimetable(ctx context.Context, table prayer.Table, updatedBy int) error

	// application forms
	CreateApplication(ctx context.Context, app model.Application) (model.Application, error)
	ListApplications(ctx context.Context, kind string) ([]model.Application, error)

	// projects
	CreateProject(ctx context.Context, p NewProject, createdBy int) (model.Project, error)
	GetProject(ctx context.Context, id int) (model.Project, error)
	ListProjects(ctx context.Context, filter ProjectFilter) ([]model.Project, int, error)
	UpdateProjectProgress(ctx context.Context, id, progress, volunteers int) error
	DeleteProject(ctx context.Context, id int) error

	// hero slides
	CreateSlide(ctx context.Context, title string, caption *string, imageURL string, createdBy int) (model.Slide, error)
	ListSlides(ctx context.Context) ([]model.Slide, error)
	DeleteSlide(ctx context.Context, id int) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
