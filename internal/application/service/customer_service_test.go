package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkamau/tillpoint/internal/application/service"
	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/domain/repository"
	"github.com/mkamau/tillpoint/pkg/apperror"
)

func newCustomerService(t *testing.T) (*service.CustomerService, *repository.MockCustomerRepository) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockCustomerRepository(ctrl)
	return service.NewCustomerService(repo), repo
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, repo := newCustomerService(t)
		repo.EXPECT().GetByPhone(gomock.Any(), "0712345678").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, customer *entity.Customer) error {
				customer.ID = uuid.New()
				return nil
			})

		customer, err := svc.CreateCustomer(context.Background(), "0712345678")
		require.NoError(t, err)
		assert.Equal(t, "0712345678", customer.PhoneNumber)
		assert.Zero(t, customer.StoreCredit)
	})

	t.Run("DuplicatePhone", func(t *testing.T) {
		svc, repo := newCustomerService(t)
		repo.EXPECT().GetByPhone(gomock.Any(), "0712345678").
			Return(&entity.Customer{ID: uuid.New(), PhoneNumber: "0712345678"}, nil)

		_, err := svc.CreateCustomer(context.Background(), "0712345678")
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
	})

	t.Run("EmptyPhone", func(t *testing.T) {
		svc, _ := newCustomerService(t)

		_, err := svc.CreateCustomer(context.Background(), "")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	})
}

func TestCustomerService_AddCredit(t *testing.T) {
	customerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, repo := newCustomerService(t)
		repo.EXPECT().GetByID(gomock.Any(), customerID).
			Return(&entity.Customer{ID: customerID, StoreCredit: 10}, nil)
		repo.EXPECT().AdjustCredit(gomock.Any(), customerID, 25.0).Return(nil)
		repo.EXPECT().GetByID(gomock.Any(), customerID).
			Return(&entity.Customer{ID: customerID, StoreCredit: 35}, nil)

		customer, err := svc.AddCredit(context.Background(), customerID, 25.0)
		require.NoError(t, err)
		assert.InDelta(t, 35.0, customer.StoreCredit, 1e-9)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		svc, _ := newCustomerService(t)

		for _, amount := range []float64{0, -5} {
			_, err := svc.AddCredit(context.Background(), customerID, amount)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
		}
	})

	t.Run("UnknownCustomer", func(t *testing.T) {
		svc, repo := newCustomerService(t)
		repo.EXPECT().GetByID(gomock.Any(), customerID).Return(nil, nil)

		_, err := svc.AddCredit(context.Background(), customerID, 25.0)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	})
}

func TestCustomerService_FindByPhone(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		svc, repo := newCustomerService(t)
		repo.EXPECT().GetByPhone(gomock.Any(), "0712345678").
			Return(&entity.Customer{ID: uuid.New(), PhoneNumber: "0712345678"}, nil)

		customer, err := svc.FindByPhone(context.Background(), "0712345678")
		require.NoError(t, err)
		assert.Equal(t, "0712345678", customer.PhoneNumber)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, repo := newCustomerService(t)
		repo.EXPECT().GetByPhone(gomock.Any(), "0000000000").Return(nil, nil)

		_, err := svc.FindByPhone(context.Background(), "0000000000")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	})
}
