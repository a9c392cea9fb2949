package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/pkg/apperror"
	"github.com/mkamau/tillpoint/pkg/pagination"
)

// CustomerService handles customer accounts and store credit top-ups
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomer registers a customer by phone number with zero credit
func (s *CustomerService) CreateCustomer(ctx context.Context, phoneNumber string) (*entity.Customer, error) {
	if phoneNumber == "" {
		return nil, apperror.NewBadRequestError("Phone number is required")
	}

	existing, err := s.customerRepo.GetByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Customer with this phone number already exists")
	}

	customer := &entity.Customer{
		PhoneNumber: phoneNumber,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// FindByPhone looks up a customer by exact phone number
func (s *CustomerService) FindByPhone(ctx context.Context, phoneNumber string) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with pagination and optional phone search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// AddCredit tops up a customer's store credit at the counter. The amount
// must be positive; redemption happens only through checkout.
func (s *CustomerService) AddCredit(ctx context.Context, id uuid.UUID, amount float64) (*entity.Customer, error) {
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Credit amount must be positive")
	}

	if _, err := s.GetCustomer(ctx, id); err != nil {
		return nil, err
	}

	if err := s.customerRepo.AdjustCredit(ctx, id, amount); err != nil {
		return nil, err
	}

	return s.GetCustomer(ctx, id)
}
