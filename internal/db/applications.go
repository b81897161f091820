package db

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/minaret/internal/model"
)

func (s *pgStore) CreateApplication(ctx context.Context, app model.Application) (model.Application, error) {
	var out model.Application
	const q = `
	INSERT INTO applications
	  (reference, kind, full_name, email, phone, address, fields, client_ip, created_at)
	VALUES
	  ($1, $2, $3, $4, $5, $6, $7, $8, now())
	RETURNING id, reference, kind, full_name, email, phone, address, fields, client_ip, created_at;`

	err := s.db.GetContext(ctx, &out, q,
		app.Reference, app.Kind, app.FullName, app.Email, app.Phone,
		app.Address, app.Fields, app.ClientIP,
	)
	if err != nil {
		log.Error().Err(err).Str("kind", app.Kind).Msg("CreateApplication failed")
		return model.Application{}, err
	}
	return out, nil
}

// ListApplications returns the newest applications first. An empty kind
// lists every kind.
func (s *pgStore) ListApplications(ctx context.Context, kind string) ([]model.Application, error) {
	out := []model.Application{}
	const q = `
	SELECT id, reference, kind, full_name, email, phone, address, fields, client_ip, created_at
	  FROM applications
	 WHERE ($1 = '' OR kind = $1)
	 ORDER BY created_at DESC, id DESC;`

	if err := s.db.SelectContext(ctx, &out, q, kind); err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("ListApplications failed")
		return nil, err
	}
	return out, nil
}
