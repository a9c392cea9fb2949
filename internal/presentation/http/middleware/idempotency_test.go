package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamau/tillpoint/internal/domain/entity"
	"github.com/mkamau/tillpoint/internal/presentation/http/middleware"
)

// memoryIdempotencyRepo is an in-memory IdempotencyRepository for tests.
type memoryIdempotencyRepo struct {
	mu             sync.Mutex
	keys           map[string]*entity.IdempotencyKey
	getErr         error
	deleteExpCalls int
}

func newMemoryIdempotencyRepo() *memoryIdempotencyRepo {
	return &memoryIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *memoryIdempotencyRepo) GetByKey(_ context.Context, key string, employeeID uuid.UUID) (*entity.IdempotencyKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	ikey, ok := r.keys[key+"/"+employeeID.String()]
	if !ok {
		return nil, nil
	}
	return ikey, nil
}

func (r *memoryIdempotencyRepo) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[ikey.Key+"/"+ikey.EmployeeID.String()] = ikey
	return nil
}

func (r *memoryIdempotencyRepo) DeleteExpired(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteExpCalls++
	return nil
}

func (r *memoryIdempotencyRepo) deleteExpiredCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deleteExpCalls
}

// newIdempotencyRouter builds a router with the middleware in front of a
// handler whose responses are scripted per attempt.
func newIdempotencyRouter(repo *memoryIdempotencyRepo, employeeID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("employee_id", employeeID)
		c.Next()
	})
	router.Use(middleware.IdempotencyRequired(middleware.IdempotencyConfig{Repo: repo}))
	router.POST("/checkout", handler)
	return router
}

func postCheckout(router *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	if key != "" {
		req.Header.Set(middleware.IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyRequired_RetryAfterFailureReachesHandler(t *testing.T) {
	repo := newMemoryIdempotencyRepo()
	attempts := 0
	router := newIdempotencyRouter(repo, uuid.New(), func(c *gin.Context) {
		attempts++
		if attempts == 1 {
			c.JSON(500, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(201, gin.H{"success": true, "message": "Checkout completed"})
	})

	first := postCheckout(router, "till-7-receipt-42")
	require.Equal(t, 500, first.Code)

	// The failure must not be cached: the same key retried runs the
	// handler again and completes the sale.
	second := postCheckout(router, "till-7-receipt-42")
	require.Equal(t, 201, second.Code)
	assert.Equal(t, 2, attempts)
	assert.Empty(t, second.Header().Get("X-Idempotency-Replayed"))

	// The success is cached: a third attempt replays it without running
	// the handler.
	third := postCheckout(router, "till-7-receipt-42")
	assert.Equal(t, 201, third.Code)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, "true", third.Header().Get("X-Idempotency-Replayed"))
	assert.JSONEq(t, second.Body.String(), third.Body.String())
}

func TestIdempotencyRequired_MissingKeyRejected(t *testing.T) {
	repo := newMemoryIdempotencyRepo()
	attempts := 0
	router := newIdempotencyRouter(repo, uuid.New(), func(c *gin.Context) {
		attempts++
		c.JSON(201, gin.H{"success": true})
	})

	w := postCheckout(router, "")
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, 0, attempts)
}

func TestIdempotencyRequired_LookupFailureFailsClosed(t *testing.T) {
	repo := newMemoryIdempotencyRepo()
	repo.getErr = errors.New("connection refused")
	attempts := 0
	router := newIdempotencyRouter(repo, uuid.New(), func(c *gin.Context) {
		attempts++
		c.JSON(201, gin.H{"success": true})
	})

	// If the dedupe check is unavailable the request must not proceed,
	// otherwise a retry could charge twice.
	w := postCheckout(router, "till-7-receipt-42")
	assert.Equal(t, 500, w.Code)
	assert.Equal(t, 0, attempts)
}

func TestIdempotencyRequired_KeysAreScopedPerEmployee(t *testing.T) {
	repo := newMemoryIdempotencyRepo()
	attempts := 0
	handler := func(c *gin.Context) {
		attempts++
		c.JSON(201, gin.H{"success": true})
	}

	routerA := newIdempotencyRouter(repo, uuid.New(), handler)
	routerB := newIdempotencyRouter(repo, uuid.New(), handler)

	first := postCheckout(routerA, "shared-key")
	require.Equal(t, 201, first.Code)

	// A different employee reusing the same key string is a new request.
	second := postCheckout(routerB, "shared-key")
	assert.Equal(t, 201, second.Code)
	assert.Equal(t, 2, attempts)
	assert.Empty(t, second.Header().Get("X-Idempotency-Replayed"))
}

func TestStartIdempotencyCleanup_PurgesOnInterval(t *testing.T) {
	repo := newMemoryIdempotencyRepo()

	middleware.StartIdempotencyCleanup(repo, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return repo.deleteExpiredCalls() >= 2
	}, time.Second, 5*time.Millisecond)
}
