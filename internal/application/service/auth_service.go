package service

import (
	"context"

	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/pkg/apperror"
	"github.com/mkamau/tillpoint/pkg/utils"
)

// AuthService handles employee authentication
type AuthService struct {
	employeeRepo repository.EmployeeRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(employeeRepo repository.EmployeeRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		jwtManager:   jwtManager,
	}
}

// LoginOutput represents a successful authentication
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Employee     *entity.Employee
}

// Login authenticates an employee by username and password. Unknown
// usernames and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginOutput, error) {
	employee, err := s.employeeRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, employee.PasswordHash) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(employee.ID, employee.Username, employee.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(employee.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Employee:     employee,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	employeeID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(employee.ID, employee.Username, employee.Role)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(employee.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		Employee:     employee,
	}, nil
}
