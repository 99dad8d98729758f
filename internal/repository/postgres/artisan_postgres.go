package postgres

import (
	"context"
	"database/sql"

	"craftapi/internal/model"
	"craftapi/internal/repository"
)

// ArtisanPostgres is a PostgreSQL implementation of repository.ArtisanRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ArtisanPostgres struct {
	db *sql.DB
}

// NewArtisanPostgres creates a new ArtisanPostgres repository.
func NewArtisanPostgres(db *sql.DB) *ArtisanPostgres {
	return &ArtisanPostgres{db: db}
}

var _ repository.ArtisanRepository = (*ArtisanPostgres)(nil)

// Create inserts a new artisan row and returns the stored record.
func (r *ArtisanPostgres) Create(ctx context.Context, a *model.Artisan) (*model.Artisan, error) {
	const q = `
		INSERT INTO artisans (id, name, craft_type, contact, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, craft_type, contact, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Name,
		a.CraftType,
		a.Contact,
		a.CreatedAt,
	)
	var out model.Artisan
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.CraftType,
		&out.Contact,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single artisan by its ID.
func (r *ArtisanPostgres) FindByID(ctx context.Context, id string) (*model.Artisan, error) {
	const q = `
		SELECT id, name, craft_type, contact, created_at
		FROM artisans
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var a model.Artisan
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.CraftType,
		&a.Contact,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns artisans using LIMIT/OFFSET pagination and a total count.
func (r *ArtisanPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Artisan], error) {
	const qCount = `SELECT COUNT(*) FROM artisans`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, name, craft_type, contact, created_at
		FROM artisans
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Artisan, 0)
	for rows.Next() {
		var a model.Artisan
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.CraftType,
			&a.Contact,
			&a.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Artisan]{
		Items: items,
		Total: total,
	}, nil
}

// Update overwrites the mutable profile fields and returns the stored record.
func (r *ArtisanPostgres) Update(ctx context.Context, a *model.Artisan) (*model.Artisan, error) {
	const q = `
		UPDATE artisans
		SET name = $2, craft_type = $3, contact = $4
		WHERE id = $1
		RETURNING id, name, craft_type, contact, created_at
	`
	row := r.db.QueryRowContext(ctx, q, a.ID, a.Name, a.CraftType, a.Contact)
	var out model.Artisan
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.CraftType,
		&out.Contact,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}
