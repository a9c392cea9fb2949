package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkamau/tillpoint/internal/application/service"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/pkg/apperror"
	"github.com/mkamau/tillpoint/pkg/utils"
)

func newAuthService(t *testing.T) (*service.AuthService, *repository.MockEmployeeRepository) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockEmployeeRepository(ctrl)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return service.NewAuthService(repo, jwtManager), repo
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("cashier123")
	require.NoError(t, err)

	employee := &entity.Employee{
		ID:           uuid.New(),
		Username:     "cashier",
		FullName:     "Jane Doe",
		PasswordHash: hash,
		Role:         enum.RoleCashier,
	}

	t.Run("Success", func(t *testing.T) {
		svc, repo := newAuthService(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "cashier").Return(employee, nil)

		out, err := svc.Login(context.Background(), "cashier", "cashier123")
		require.NoError(t, err)
		assert.NotEmpty(t, out.AccessToken)
		assert.NotEmpty(t, out.RefreshToken)
		assert.Equal(t, employee.ID, out.Employee.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, repo := newAuthService(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "cashier").Return(employee, nil)

		_, err := svc.Login(context.Background(), "cashier", "wrong")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperror.GetAppError(err).Code)
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		svc, repo := newAuthService(t)
		repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		_, err := svc.Login(context.Background(), "ghost", "whatever")
		require.Error(t, err)
		// Same message as a wrong password so usernames cannot be probed
		assert.Equal(t, apperror.ErrInvalidCredentials.Message, apperror.GetAppError(err).Message)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	employee := &entity.Employee{
		ID:       uuid.New(),
		Username: "cashier",
		Role:     enum.RoleCashier,
	}

	t.Run("Success", func(t *testing.T) {
		jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
		ctrl := gomock.NewController(t)
		repo := repository.NewMockEmployeeRepository(ctrl)
		svc := service.NewAuthService(repo, jwtManager)

		refreshToken, err := jwtManager.GenerateRefreshToken(employee.ID)
		require.NoError(t, err)

		repo.EXPECT().GetByID(gomock.Any(), employee.ID).Return(employee, nil)

		out, err := svc.RefreshToken(context.Background(), refreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, out.AccessToken)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, err := svc.RefreshToken(context.Background(), "not-a-token")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperror.GetAppError(err).Code)
	})
}
