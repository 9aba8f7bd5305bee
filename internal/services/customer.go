package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/jewelry-storefront/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type CustomerService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.Customer, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	UpdateCustomer(ctx context.Context, id int64, req *models.UpdateCustomerRequest) error
	UpdatePassword(ctx context.Context, id int64, req *models.UpdatePasswordRequest) error
}

type customerService struct {
	repo   repository.CustomerRepository
	jwtKey []byte
	now    func() time.Time
}

func NewCustomerService(repo repository.CustomerRepository, jwtKey []byte) CustomerService {
	return &customerService{repo: repo, jwtKey: jwtKey, now: time.Now}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *customerService) Signup(ctx context.Context, req *models.SignupRequest) (*models.Customer, error) {

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.InternalError("Failed to secure password").WithError(err)
	}

	customer := &models.Customer{
		Name:     strings.TrimSpace(req.Name),
		Email:    normalizeEmail(req.Email),
		Password: string(hashed),
	}

	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.EmailInUseError("Email already in use").WithError(err)
		}
		return nil, appErrors.DatabaseError("Database error").WithError(err)
	}

	return customer, nil
}

func (s *customerService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {

	if len(s.jwtKey) == 0 {
		return nil, appErrors.InternalError("Token signing is not configured")
	}

	customer, err := s.repo.GetCustomerByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.UnauthorizedError("Invalid email or password")
		}
		return nil, appErrors.DatabaseError("Database error").WithError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(req.Password)); err != nil {
		return nil, appErrors.UnauthorizedError("Invalid email or password")
	}

	now := s.now()
	expiresAt := now.Add(tokenTTL)

	claims := &models.Claims{
		UserID: customer.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to issue token").WithError(err)
	}

	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt, Customer: customer}, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id int64, req *models.UpdateCustomerRequest) error {

	err := s.repo.UpdateCustomer(ctx, id, strings.TrimSpace(req.Name), normalizeEmail(req.Email))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return appErrors.NotFoundError("Customer not found").WithError(err)
		case repository.IsUniqueViolation(err):
			return appErrors.EmailInUseError("Email already in use").WithError(err)
		default:
			return appErrors.DatabaseError("Database error").WithError(err)
		}
	}

	return nil
}

func (s *customerService) UpdatePassword(ctx context.Context, id int64, req *models.UpdatePasswordRequest) error {

	if req.NewPassword != req.ConfirmPassword || len(req.NewPassword) < 6 {
		return appErrors.ValidationError("Passwords do not match or are too short (min 6 chars)")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.InternalError("Failed to secure password").WithError(err)
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Customer not found").WithError(err)
		}
		return appErrors.DatabaseError("Database error").WithError(err)
	}

	return nil
}
