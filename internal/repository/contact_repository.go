package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tmhigienizacao/site-api/internal/domain"
	apperrors "github.com/tmhigienizacao/site-api/pkg/util"
)

// ContactRepository stores leads from the contact form.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	// ListNewestFirst returns every contact ordered by created_at descending.
	ListNewestFirst(ctx context.Context) ([]domain.Contact, error)
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository builds the repository.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

const contactColumns = `id, name, phone, email, service, message, source, status, created_at`

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	const query = `
        INSERT INTO contacts (id, name, phone, email, service, message, source, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		contact.ID,
		contact.Name,
		contact.Phone,
		contact.Email,
		contact.Service,
		contact.Message,
		contact.Source,
		contact.Status,
		contact.CreatedAt,
	)
	return err
}

func (r *contactRepository) ListNewestFirst(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Contact{}
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *contact)
	}
	return result, rows.Err()
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	contact, err := scanContact(r.pool.QueryRow(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return contact, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	query := `UPDATE contacts SET status=$1 WHERE id=$2 RETURNING ` + contactColumns
	contact, err := scanContact(r.pool.QueryRow(ctx, query, status, id))
	if err != nil {
		return nil, notFound(err)
	}
	return contact, nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var contact domain.Contact
	if err := row.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Phone,
		&contact.Email,
		&contact.Service,
		&contact.Message,
		&contact.Source,
		&contact.Status,
		&contact.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &contact, nil
}
