// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/infrastructure/remote"
	"github.com/your-org/storefront/internal/mockapi"
	"github.com/your-org/storefront/internal/pkg/errs"
)

func newCartFixture(t *testing.T) (*Service, *mockapi.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := mockapi.NewServer()
	ts := httptest.NewServer(api.Handler())
	t.Cleanup(ts.Close)

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	client := remote.NewClient(ts.URL, 5*time.Second, log)
	return NewService(client, log), api
}

func TestGetByUserWithoutCartReturnsNil(t *testing.T) {
	svc, _ := newCartFixture(t)

	c, err := svc.GetByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestGetByUserRequiresUser(t *testing.T) {
	svc, _ := newCartFixture(t)

	_, err := svc.GetByUser(context.Background(), "")
	assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestAddToCartCreatesCartAndAdoptsServerID(t *testing.T) {
	svc, api := newCartFixture(t)
	p := &product.Product{ID: "p1", Price: decimal.NewFromInt(159000)}

	created, err := svc.AddToCart(context.Background(), p, nil, "u1")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, StatusActive, created.Status)
	require.Len(t, created.Items, 1)
	assert.Equal(t, 1, created.Items[0].Quantity)
	assert.True(t, created.TotalAmount.Equal(decimal.NewFromInt(159000)))
	assert.Equal(t, 1, api.Count(mockapi.CollectionCart))

	// The created cart is now discoverable by user
	found, err := svc.GetByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}

func TestAddToCartMergesExistingLine(t *testing.T) {
	svc, api := newCartFixture(t)
	p := &product.Product{ID: "p1", Price: decimal.NewFromInt(1000)}

	created, err := svc.AddToCart(context.Background(), p, nil, "u1")
	require.NoError(t, err)

	updated, err := svc.AddToCart(context.Background(), p, created, "u1")
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 2, updated.Items[0].Quantity)
	assert.True(t, updated.Items[0].TotalPrice.Equal(decimal.NewFromInt(2000)))
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(2000)))

	// Still one cart record; the merge was a full replace
	assert.Equal(t, 1, api.Count(mockapi.CollectionCart))
}

func TestAddToCartAppendsNewLine(t *testing.T) {
	svc, _ := newCartFixture(t)

	created, err := svc.AddToCart(context.Background(), &product.Product{ID: "p1", Price: decimal.NewFromInt(1000)}, nil, "u1")
	require.NoError(t, err)

	updated, err := svc.AddToCart(context.Background(), &product.Product{ID: "p2", Price: decimal.NewFromInt(2500)}, created, "u1")
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(3500)))
}

func TestAddToCartRequiresUser(t *testing.T) {
	svc, api := newCartFixture(t)

	_, err := svc.AddToCart(context.Background(), &product.Product{ID: "p1", Price: decimal.NewFromInt(1000)}, nil, "")
	assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	assert.Zero(t, api.Count(mockapi.CollectionCart))
}

func TestFailedWriteLeavesCallerCartUntouched(t *testing.T) {
	svc, _ := newCartFixture(t)

	// A cart whose record no longer exists remotely: the PUT fails and
	// the caller's state must not have been mutated.
	stale := &Cart{ID: "gone", UserID: "u1"}
	stale.AddProduct(&product.Product{ID: "p1", Price: decimal.NewFromInt(1000)})

	_, err := svc.AddToCart(context.Background(), &product.Product{ID: "p1", Price: decimal.NewFromInt(1000)}, stale, "u1")
	require.Error(t, err)
	assert.Equal(t, 1, stale.Items[0].Quantity)
	assert.True(t, stale.TotalAmount.Equal(decimal.NewFromInt(1000)))
}

func TestRemoveFromCart(t *testing.T) {
	svc, _ := newCartFixture(t)

	created, err := svc.AddToCart(context.Background(), &product.Product{ID: "p1", Price: decimal.NewFromInt(1000)}, nil, "u1")
	require.NoError(t, err)
	withTwo, err := svc.AddToCart(context.Background(), &product.Product{ID: "p2", Price: decimal.NewFromInt(2000)}, created, "u1")
	require.NoError(t, err)

	updated, err := svc.RemoveFromCart(context.Background(), withTwo, "p1")
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "p2", updated.Items[0].ProductID)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(2000)))
}

func TestRemoveMissingLineFails(t *testing.T) {
	svc, _ := newCartFixture(t)

	created, err := svc.AddToCart(context.Background(), &product.Product{ID: "p1", Price: decimal.NewFromInt(1000)}, nil, "u1")
	require.NoError(t, err)

	_, err = svc.RemoveFromCart(context.Background(), created, "p9")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
