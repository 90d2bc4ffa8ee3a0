package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tmhigienizacao/site-api/internal/domain"
	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

// ServiceRepository defines persistence access for services.
type ServiceRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) error
	Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository returns a Postgres-backed implementation.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

const serviceColumns = `id, title, description, icon, features, active, created_at`

func (r *serviceRepository) List(ctx context.Context, activeOnly bool) ([]domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Service{}
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *svc)
	}
	return result, rows.Err()
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id=$1`
	svc, err := scanService(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return svc, nil
}

func (r *serviceRepository) Create(ctx context.Context, svc *domain.Service) error {
	const query = `
        INSERT INTO services (id, title, description, icon, features, active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		svc.ID,
		svc.Title,
		svc.Description,
		svc.Icon,
		svc.Features,
		svc.Active,
		svc.CreatedAt,
	)
	return err
}

func (r *serviceRepository) Update(ctx context.Context, id string, patch domain.ServicePatch) (*domain.Service, error) {
	query := `
        UPDATE services SET
            title = COALESCE($1, title),
            description = COALESCE($2, description),
            icon = COALESCE($3, icon),
            features = COALESCE($4, features),
            active = COALESCE($5, active)
        WHERE id=$6
        RETURNING ` + serviceColumns

	var features any
	if patch.Features != nil {
		features = patch.Features
	}
	svc, err := scanService(r.pool.QueryRow(ctx, query,
		patch.Title,
		patch.Description,
		patch.Icon,
		features,
		patch.Active,
		id,
	))
	if err != nil {
		return nil, notFound(err)
	}
	return svc, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *serviceRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&n)
	return n, err
}

func scanService(row pgx.Row) (*domain.Service, error) {
	var svc domain.Service
	if err := row.Scan(
		&svc.ID,
		&svc.Title,
		&svc.Description,
		&svc.Icon,
		&svc.Features,
		&svc.Active,
		&svc.CreatedAt,
	); err != nil {
		return nil, err
	}
	if svc.Features == nil {
		svc.Features = []string{}
	}
	return &svc, nil
}

// notFound translates pgx's missing-row error into the repository sentinel.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return err
}
