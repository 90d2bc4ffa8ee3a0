package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tmhigienizacao/site-api/internal/domain"
	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

// TestimonialRepository manages testimonial persistence.
type TestimonialRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Testimonial, error)
	GetByID(ctx context.Context, id string) (*domain.Testimonial, error)
	Create(ctx context.Context, t *domain.Testimonial) error
	Update(ctx context.Context, id string, patch domain.TestimonialPatch) (*domain.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

type testimonialRepository struct {
	pool *pgxpool.Pool
}

// NewTestimonialRepository builds the repository.
func NewTestimonialRepository(pool *pgxpool.Pool) TestimonialRepository {
	return &testimonialRepository{pool: pool}
}

const testimonialColumns = `id, name, location, rating, text, active, created_at`

func (r *testimonialRepository) List(ctx context.Context, activeOnly bool) ([]domain.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	return result, rows.Err()
}

func (r *testimonialRepository) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id=$1`
	t, err := scanTestimonial(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *testimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	const query = `
        INSERT INTO testimonials (id, name, location, rating, text, active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		t.ID,
		t.Name,
		t.Location,
		t.Rating,
		t.Text,
		t.Active,
		t.CreatedAt,
	)
	return err
}

func (r *testimonialRepository) Update(ctx context.Context, id string, patch domain.TestimonialPatch) (*domain.Testimonial, error) {
	query := `
        UPDATE testimonials SET
            name = COALESCE($1, name),
            location = COALESCE($2, location),
            rating = COALESCE($3, rating),
            text = COALESCE($4, text),
            active = COALESCE($5, active)
        WHERE id=$6
        RETURNING ` + testimonialColumns

	t, err := scanTestimonial(r.pool.QueryRow(ctx, query,
		patch.Name,
		patch.Location,
		patch.Rating,
		patch.Text,
		patch.Active,
		id,
	))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanTestimonial(row pgx.Row) (*domain.Testimonial, error) {
	var t domain.Testimonial
	if err := row.Scan(&t.ID, &t.Name, &t.Location, &t.Rating, &t.Text, &t.Active, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
