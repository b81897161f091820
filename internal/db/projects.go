package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/model"
)

const projectColumns = `
	id, title, category, description, budget, currency, progress,
	start_date, end_date, image_url, volunteers, created_by, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *pgStore) CreateProject(ctx context.Context, p NewProject, createdBy int) (model.Project, error) {
	var out model.Project
	q := `
	INSERT INTO projects
	  (title, category, description, budget, currency, progress, start_date, end_date,
	   image_url, volunteers, created_by, created_at, updated_at)
	VALUES
	  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
	RETURNING` + projectColumns + `;`

	err := s.db.GetContext(ctx, &out, q,
		p.Title, p.Category, p.Description, p.Budget, p.Currency, p.Progress,
		p.StartDate, p.EndDate, p.ImageURL, p.Volunteers, createdBy,
	)
	if err != nil {
		log.Error().Err(err).Str("title", p.Title).Msg("CreateProject failed")
		return model.Project{}, err
	}
	return out, nil
}

func (s *pgStore) GetProject(ctx context.Context, id int) (model.Project, error) {
	var out model.Project
	q := `SELECT` + projectColumns + ` FROM projects WHERE id = $1;`
	if err := s.db.GetContext(ctx, &out, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, ErrNotFound
		}
		log.Error().Err(err).Int("project_id", id).Msg("GetProject failed")
		return model.Project{}, err
	}
	return out, nil
}

// ListProjects returns one page of matching projects and the total number
// of matches.
func (s *pgStore) ListProjects(ctx context.Context, filter ProjectFilter) ([]model.Project, int, error) {
	f := filter.normalized()
	search := likeEscaper.Replace(strings.TrimSpace(f.Search))

	const where = `
	 WHERE ($1 = '' OR category = $1)
	   AND ($2 = '' OR title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')`

	var total int
	if err := s.db.GetContext(ctx, &total, `SELECT count(*) FROM projects`+where, f.Category, search); err != nil {
		log.Error().Err(err).Msg("ListProjects count failed")
		return nil, 0, err
	}

	out := []model.Project{}
	q := `SELECT` + projectColumns + ` FROM projects` + where + `
	 ORDER BY start_date, id
	 LIMIT $3 OFFSET $4;`
	if err := s.db.SelectContext(ctx, &out, q, f.Category, search, f.Limit, f.Offset); err != nil {
		log.Error().Err(err).Msg("ListProjects failed")
		return nil, 0, err
	}
	return out, total, nil
}

func (s *pgStore) UpdateProjectProgress(ctx context.Context, id, progress, volunteers int) error {
	res, err := s.db.ExecContext(ctx, `
	UPDATE projects
	   SET progress = $2, volunteers = $3, updated_at = now()
	 WHERE id = $1;`, id, progress, volunteers)
	if err != nil {
		log.Error().Err(err).Int("project_id", id).Msg("UpdateProjectProgress failed")
		return err
	}
	return expectOneRow(res)
}

func (s *pgStore) DeleteProject(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("project_id", id).Msg("DeleteProject failed")
		return err
	}
	return expectOneRow(res)
}
