package repository

import (
	"context"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
)

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, name, email string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type customerRepository struct {
	DB DBTX
}

func NewCustomerRepo(db DBTX) CustomerRepository {
	return &customerRepository{DB: db}
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO customers (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.DB.QueryRowContext(dbCtx, query, customer.Name, customer.Email, customer.Password).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		return logQueryError(ctx, query, err, customer.Name, customer.Email, Redacted)
	}

	return nil
}

func (r *customerRepository) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, email, password, created_at FROM customers WHERE email = $1`

	customer := &models.Customer{}

	err := r.DB.QueryRowContext(dbCtx, query, email).Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Password, &customer.CreatedAt)
	if err != nil {
		return nil, logQueryError(ctx, query, err, email)
	}

	return customer, nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, id int64, name, email string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE customers SET name = $1, email = $2 WHERE id = $3`

	result, err := r.DB.ExecContext(dbCtx, query, name, email, id)
	if err != nil {
		return logQueryError(ctx, query, err, name, email, id)
	}

	return checkAffected(result)
}

func (r *customerRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE customers SET password = $1 WHERE id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, passwordHash, id)
	if err != nil {
		return logQueryError(ctx, query, err, Redacted, id)
	}

	return checkAffected(result)
}
