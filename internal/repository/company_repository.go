package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tmhigienizacao/site-api/internal/domain"
)

// CompanyInfoRepository persists the company info singleton.
type CompanyInfoRepository interface {
	// Get returns ErrNotFound when nothing has been stored yet.
	Get(ctx context.Context) (*domain.CompanyInfo, error)
	Replace(ctx context.Context, info domain.CompanyInfo) error
}

type companyInfoRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyInfoRepository builds the repository.
func NewCompanyInfoRepository(pool *pgxpool.Pool) CompanyInfoRepository {
	return &companyInfoRepository{pool: pool}
}

func (r *companyInfoRepository) Get(ctx context.Context) (*domain.CompanyInfo, error) {
	const query = `
        SELECT name, location, phone, whatsapp, email, address, working_hours
        FROM company_info WHERE singleton = TRUE`
	var info domain.CompanyInfo
	if err := r.pool.QueryRow(ctx, query).Scan(
		&info.Name,
		&info.Location,
		&info.Phone,
		&info.WhatsApp,
		&info.Email,
		&info.Address,
		&info.WorkingHours,
	); err != nil {
		return nil, notFound(err)
	}
	return &info, nil
}

func (r *companyInfoRepository) Replace(ctx context.Context, info domain.CompanyInfo) error {
	const query = `
        INSERT INTO company_info (singleton, name, location, phone, whatsapp, email, address, working_hours)
        VALUES (TRUE, $1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (singleton) DO UPDATE SET
            name = EXCLUDED.name,
            location = EXCLUDED.location,
            phone = EXCLUDED.phone,
            whatsapp = EXCLUDED.whatsapp,
            email = EXCLUDED.email,
            address = EXCLUDED.address,
            working_hours = EXCLUDED.working_hours`
	_, err := r.pool.Exec(ctx, query,
		info.Name,
		info.Location,
		info.Phone,
		info.WhatsApp,
		info.Email,
		info.Address,
		info.WorkingHours,
	)
	return err
}
