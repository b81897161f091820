package db

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/model"
)

// CreateSlide appends a slide after the current last one.
func (s *pgStore) CreateSlide(ctx context.Context, title string, caption *string, imageURL string, createdBy int) (model.Slide, error) {
	var out model.Slide
	const q = `
	INSERT INTO slides (title, caption, image_url, position, created_by, created_at)
	VALUES ($1, $2, $3, (SELECT COALESCE(MAX(position), -1) + 1 FROM slides), $4, now())
	RETURNING id, title, caption, image_url, position, created_by, created_at;`

	if err := s.db.GetContext(ctx, &out, q, title, caption, imageURL, createdBy); err != nil {
		log.Error().Err(err).Msg("CreateSlide failed")
		return model.Slide{}, err
	}
	return out, nil
}

func (s *pgStore) ListSlides(ctx context.Context) ([]model.Slide, error) {
	out := []model.Slide{}
	const q = `
	SELECT id, title, caption, image_url, position, created_by, created_at
	  FROM slides
	 ORDER BY position, id;`
	if err := s.db.SelectContext(ctx, &out, q); err != nil {
		log.Error().Err(err).Msg("ListSlides failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeleteSlide(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM slides WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("slide_id", id).Msg("DeleteSlide failed")
		return err
	}
	return expectOneRow(res)
}
