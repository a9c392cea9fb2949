package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/pkg/apperror"
	"github.com/mkamau/tillpoint/pkg/pagination"
	"github.com/mkamau/tillpoint/pkg/utils"
)

// EmployeeService handles employee account management
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// CreateEmployeeInput represents the create employee input
type CreateEmployeeInput struct {
	Username string
	FullName string
	Password string
	Role     enum.Role
}

// CreateEmployee creates a new employee account
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	if !input.Role.Valid() {
		return nil, apperror.NewBadRequestError("Invalid role")
	}

	existing, err := s.employeeRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already taken")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	employee := &entity.Employee{
		Username:     input.Username,
		FullName:     input.FullName,
		PasswordHash: hash,
		Role:         input.Role,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// UpdateEmployeeInput represents the update employee input. Nil fields are
// left unchanged.
type UpdateEmployeeInput struct {
	FullName *string
	Password *string
	Role     *enum.Role
}

// UpdateEmployee updates an employee's profile, role or password
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uuid.UUID, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		employee.FullName = *input.FullName
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, apperror.NewBadRequestError("Invalid role")
		}
		employee.Role = *input.Role
	}
	if input.Password != nil {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		employee.PasswordHash = hash
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// DeleteEmployee soft-deletes an employee account
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetEmployee(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

// ListEmployees lists employees with pagination
func (s *EmployeeService) ListEmployees(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Employee], error) {
	employees, total, err := s.employeeRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(employees, pag), nil
}
