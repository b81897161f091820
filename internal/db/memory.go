package db

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Nixie-Tech-LLC/minaret/internal/model"
	"github.com/Nixie-Tech-LLC/minaret/internal/prayer"
)

// memoryStore keeps everything in process. It backs the server when no
// DATABASE_URL is configured and the handler tests.
type memoryStore struct {
	mu sync.RWMutex

	seq          int
	users        map[int]model.User
	timetable    *prayer.Table
	applications []model.Application
	projects     map[int]model.Project
	slides       map[int]model.Slide
}

var _ Store = (*memoryStore)(nil)

func NewMemoryStore() Store {
	return &memoryStore{
		users:    make(map[int]model.User),
		projects: make(map[int]model.Project),
		slides:   make(map[int]model.Slide),
	}
}

func (m *memoryStore) nextID() int {
	m.seq++
	return m.seq
}

func (m *memoryStore) CreateUser(_ context.Context, email, hashedPassword string, name *string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return 0, errors.New("email already registered")
		}
	}
	now := time.Now()
	id := m.nextID()
	m.users[id] = model.User{
		ID:             id,
		Email:          email,
		HashedPassword: hashedPassword,
		Name:           name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return id, nil
}

func (m *memoryStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryStore) GetUserByID(_ context.Context, id int) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *memoryStore) UpdateUserProfile(_ context.Context, id int, email string, name *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	u.Email, u.Name, u.UpdatedAt = email, name, time.Now()
	m.users[id] = u
	return nil
}

func (m *memoryStore) GetTimetable(_ context.Context) (prayer.Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.timetable == nil {
		return prayer.Table{}, ErrNotFound
	}
	return *m.timetable, nil
}

func (m *memoryStore) SaveTimetable(_ context.Context, t prayer.Table, _ int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.timetable = &t
	return nil
}

func (m *memoryStore) CreateApplication(_ context.Context, app model.Application) (model.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	app.ID = m.nextID()
	app.CreatedAt = time.Now()
	if app.Fields == nil {
		app.Fields = model.Fields{}
	}
	m.applications = append(m.applications, app)
	return app, nil
}

func (m *memoryStore) ListApplications(_ context.Context, kind string) ([]model.Application, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []model.Application{}
	for i := len(m.applications) - 1; i >= 0; i-- {
		if kind == "" || m.applications[i].Kind == kind {
			out = append(out, m.applications[i])
		}
	}
	return out, nil
}

func (m *memoryStore) CreateProject(_ context.Context, p NewProject, createdBy int) (model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	out := model.Project{
		ID:          m.nextID(),
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		Budget:      p.Budget,
		Currency:    p.Currency,
		Progress:    p.Progress,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		ImageURL:    p.ImageURL,
		Volunteers:  p.Volunteers,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.projects[out.ID] = out
	return out, nil
}

func (m *memoryStore) GetProject(_ context.Context, id int) (model.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.projects[id]
	if !ok {
		return model.Project{}, ErrNotFound
	}
	return p, nil
}

func (m *memoryStore) ListProjects(_ context.Context, filter ProjectFilter) ([]model.Project, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f := filter.normalized()
	search := strings.ToLower(strings.TrimSpace(f.Search))

	matched := []model.Project{}
	for _, p := range m.projects {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].StartDate.Equal(matched[j].StartDate) {
			return matched[i].StartDate.Before(matched[j].StartDate)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	if f.Offset >= total {
		return []model.Project{}, total, nil
	}
	end := f.Offset + f.Limit
	if end > total {
		end = total
	}
	return matched[f.Offset:end], total, nil
}

func (m *memoryStore) UpdateProjectProgress(_ context.Context, id, progress, volunteers int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return ErrNotFound
	}
	p.Progress, p.Volunteers, p.UpdatedAt = progress, volunteers, time.Now()
	m.projects[id] = p
	return nil
}

func (m *memoryStore) DeleteProject(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return ErrNotFound
	}
	delete(m.projects, id)
	return nil
}

func (m *memoryStore) CreateSlide(_ context.Context, title string, caption *string, imageURL string, createdBy int) (model.Slide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	position := 0
	for _, s := range m.slides {
		if s.Position >= position {
			position = s.Position + 1
		}
	}
	out := model.Slide{
		ID:        m.nextID(),
		Title:     title,
		Caption:   caption,
		ImageURL:  imageURL,
		Position:  position,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	m.slides[out.ID] = out
	return out, nil
}

func (m *memoryStore) ListSlides(_ context.Context) ([]model.Slide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Slide, 0, len(m.slides))
	for _, s := range m.slides {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryStore) DeleteSlide(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.slides[id]; !ok {
		return ErrNotFound
	}
	delete(m.slides, id)
	return nil
}
