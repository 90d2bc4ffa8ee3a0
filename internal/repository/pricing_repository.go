package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tmhigienizacao/site-api/internal/domain"
	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

// PricingRepository manages pricing category persistence. Items are stored as JSONB.
type PricingRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.PricingCategory, error)
	GetByID(ctx context.Context, id string) (*domain.PricingCategory, error)
	Create(ctx context.Context, cat *domain.PricingCategory) error
	Update(ctx context.Context, id string, patch domain.PricingCategoryPatch) (*domain.PricingCategory, error)
	Delete(ctx context.Context, id string) error
}

type pricingRepository struct {
	pool *pgxpool.Pool
}

// NewPricingRepository builds the repository.
func NewPricingRepository(pool *pgxpool.Pool) PricingRepository {
	return &pricingRepository{pool: pool}
}

const pricingColumns = `id, category, items, active, created_at`

func (r *pricingRepository) List(ctx context.Context, activeOnly bool) ([]domain.PricingCategory, error) {
	query := `SELECT ` + pricingColumns + ` FROM pricing_categories`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.PricingCategory{}
	for rows.Next() {
		cat, err := scanPricing(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *cat)
	}
	return result, rows.Err()
}

func (r *pricingRepository) GetByID(ctx context.Context, id string) (*domain.PricingCategory, error) {
	query := `SELECT ` + pricingColumns + ` FROM pricing_categories WHERE id=$1`
	cat, err := scanPricing(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return cat, nil
}

func (r *pricingRepository) Create(ctx context.Context, cat *domain.PricingCategory) error {
	const query = `
        INSERT INTO pricing_categories (id, category, items, active, created_at)
        VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		cat.ID,
		cat.Category,
		cat.Items,
		cat.Active,
		cat.CreatedAt,
	)
	return err
}

func (r *pricingRepository) Update(ctx context.Context, id string, patch domain.PricingCategoryPatch) (*domain.PricingCategory, error) {
	query := `
        UPDATE pricing_categories SET
            category = COALESCE($1, category),
            items = COALESCE($2, items),
            active = COALESCE($3, active)
        WHERE id=$4
        RETURNING ` + pricingColumns

	var items any
	if patch.Items != nil {
		items = patch.Items
	}
	cat, err := scanPricing(r.pool.QueryRow(ctx, query, patch.Category, items, patch.Active, id))
	if err != nil {
		return nil, notFound(err)
	}
	return cat, nil
}

func (r *pricingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM pricing_categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanPricing(row pgx.Row) (*domain.PricingCategory, error) {
	var cat domain.PricingCategory
	if err := row.Scan(&cat.ID, &cat.Category, &cat.Items, &cat.Active, &cat.CreatedAt); err != nil {
		return nil, err
	}
	if cat.Items == nil {
		cat.Items = []domain.PricingItem{}
	}
	return &cat, nil
}
