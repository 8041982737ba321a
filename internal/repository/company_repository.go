package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/driveport-backend/internal/model"
)

var ErrDuplicateEmail = errors.New("company with this email already exists")

// CompanyRepository handles company data access.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

const companyColumns = `id, name, email, password_hash, logo_url, status, admin_notes, reviewed_at, reviewed_by, created_at`

func scanCompany(row interface{ Scan(...any) error }) (*model.Company, error) {
	c := &model.Company{}
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.LogoURL,
		&c.Status, &c.AdminNotes, &c.ReviewedAt, &c.ReviewedBy, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID retrieves a company by its ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id int) (*model.Company, error) {
	return scanCompany(r.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
}

// GetByEmail retrieves a company by its unique email.
func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (*model.Company, error) {
	return scanCompany(r.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE email = $1`, email))
}

// ListByStatus retrieves companies with pagination, optionally filtered by status.
// Pass status=nil to list all.
func (r *CompanyRepository) ListByStatus(ctx context.Context, status *model.CompanyStatus, limit, offset int) ([]model.Company, int, error) {
	countQuery := `SELECT COUNT(*) FROM companies`
	query := `SELECT ` + companyColumns + ` FROM companies`
	var countArgs, args []any
	argIdx := 1

	if status != nil {
		countQuery += ` WHERE status = $1`
		query += ` WHERE status = $1`
		countArgs = append(countArgs, *status)
		args = append(args, *status)
		argIdx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, *c)
	}
	return companies, total, rows.Err()
}

// Create inserts a new company in pending status.
func (r *CompanyRepository) Create(ctx context.Context, c *model.Company) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO companies (name, email, password_hash, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		c.Name, c.Email, c.PasswordHash, c.Status,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// UpdateReview records an admin review decision on a company.
func (r *CompanyRepository) UpdateReview(ctx context.Context, id int, status model.CompanyStatus, adminNotes, reviewedBy string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE companies
		 SET status = $1, admin_notes = NULLIF($2, ''), reviewed_at = NOW(), reviewed_by = $3
		 WHERE id = $4`,
		status, adminNotes, reviewedBy, id)
	return err
}

// UpdateLogo stores the uploaded logo URL on the company profile.
func (r *CompanyRepository) UpdateLogo(ctx context.Context, id int, logoURL string) error {
	_, err := r.pool.Exec(ctx, `UPDATE companies SET logo_url = $1 WHERE id = $2`, logoURL, id)
	return err
}

// Delete permanently removes a company and everything it owns.
func (r *CompanyRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}
