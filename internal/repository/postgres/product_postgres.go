package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"craftapi/internal/model"
	"craftapi/internal/repository"
)

// ProductPostgres is a PostgreSQL implementation of repository.ProductRepository.
// Tags and marketing packs are stored as JSONB columns and converted at the
// scan boundary so the rest of the code only deals with domain types.
type ProductPostgres struct {
	db *sql.DB
}

// NewProductPostgres creates a new ProductPostgres repository.
func NewProductPostgres(db *sql.DB) *ProductPostgres {
	return &ProductPostgres{db: db}
}

var _ repository.ProductRepository = (*ProductPostgres)(nil)

const productColumns = `id, artisan_id, description, materials, dimensions, tags,
		image_path, image_content_type, enhanced_image_path, marketing_pack, created_at, updated_at`

// Create inserts a new product row and returns the stored record.
func (r *ProductPostgres) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	tags, err := marshalTags(p.Tags)
	if err != nil {
		return nil, err
	}

	const q = `
		INSERT INTO products (id, artisan_id, description, materials, dimensions, tags,
			image_path, image_content_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + productColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.ArtisanID,
		p.Description,
		p.Materials,
		p.Dimensions,
		tags,
		p.ImagePath,
		p.ImageContentType,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return scanProduct(row)
}

// FindByID fetches a single product by its ID.
func (r *ProductPostgres) FindByID(ctx context.Context, id string) (*model.Product, error) {
	const q = `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`
	return scanProduct(r.db.QueryRowContext(ctx, q, id))
}

// ListByArtisan returns one artisan's products using LIMIT/OFFSET pagination and a total count.
func (r *ProductPostgres) ListByArtisan(ctx context.Context, artisanID string, pq repository.PageQuery) (*repository.PageResult[model.Product], error) {
	const qCount = `SELECT COUNT(*) FROM products WHERE artisan_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, artisanID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + productColumns + `
		FROM products
		WHERE artisan_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, artisanID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Product]{
		Items: items,
		Total: total,
	}, nil
}

// UpdateTags replaces the confirmed tag list of a product.
func (r *ProductPostgres) UpdateTags(ctx context.Context, id string, tags []string) error {
	b, err := marshalTags(tags)
	if err != nil {
		return err
	}
	const q = `UPDATE products SET tags = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, b, time.Now().UTC())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// UpdateMarketingPack stores the generated marketing pack on a product.
func (r *ProductPostgres) UpdateMarketingPack(ctx context.Context, id string, pack *model.MarketingPack) error {
	b, err := json.Marshal(pack)
	if err != nil {
		return fmt.Errorf("marshal marketing pack: %w", err)
	}
	const q = `UPDATE products SET marketing_pack = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, b, time.Now().UTC())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// UpdateEnhancedImage stores the storage path of the styled image.
func (r *ProductPostgres) UpdateEnhancedImage(ctx context.Context, id string, path string) error {
	const q = `UPDATE products SET enhanced_image_path = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, path, time.Now().UTC())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a product by ID. It does not return an error if the row does not exist.
func (r *ProductPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM products WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// requireRow maps "zero rows updated" onto sql.ErrNoRows so the service
// layer can translate it to its not-found sentinel.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*model.Product, error) {
	var (
		p       model.Product
		tagsRaw []byte
		packRaw []byte
	)
	if err := row.Scan(
		&p.ID,
		&p.ArtisanID,
		&p.Description,
		&p.Materials,
		&p.Dimensions,
		&tagsRaw,
		&p.ImagePath,
		&p.ImageContentType,
		&p.EnhancedImagePath,
		&packRaw,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(tagsRaw) > 0 {
		if err := json.Unmarshal(tagsRaw, &p.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	if len(packRaw) > 0 {
		p.MarketingPack = &model.MarketingPack{}
		if err := json.Unmarshal(packRaw, p.MarketingPack); err != nil {
			return nil, fmt.Errorf("unmarshal marketing pack: %w", err)
		}
	}
	return &p, nil
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return b, nil
}
