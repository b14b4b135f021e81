// internal/domain/user/service_test.go
package user

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/infrastructure/remote"
	"github.com/your-org/storefront/internal/mockapi"
	"github.com/your-org/storefront/internal/pkg/errs"
)

func newUserFixture(t *testing.T) (*Service, *mockapi.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := mockapi.NewServer()
	ts := httptest.NewServer(api.Handler())
	t.Cleanup(ts.Close)

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	cfg := &config.Config{}
	cfg.Security.BcryptCost = 4 // keep the test fast

	client := remote.NewClient(ts.URL, 5*time.Second, log)
	return NewService(client, cfg, log), api
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, api := newUserFixture(t)

	created, err := svc.Register(context.Background(), &RegisterRequest{
		Email:           "An@Example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "an@example.com", created.Email)
	assert.NotEqual(t, "secret1", created.Password)
	assert.Equal(t, 1, api.Count(mockapi.CollectionUsers))
}

func TestRegisterRejectsMismatchedConfirmationBeforeNetwork(t *testing.T) {
	svc, api := newUserFixture(t)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:           "an@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Zero(t, api.Count(mockapi.CollectionUsers))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture(t)

	req := &RegisterRequest{Email: "an@example.com", Password: "secret1", ConfirmPassword: "secret1"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	svc, _ := newUserFixture(t)

	created, err := svc.Register(context.Background(), &RegisterRequest{
		Email:           "an@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)

	found, err := svc.Login(context.Background(), &LoginRequest{Email: "an@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestLoginFailsWithWrongPassword(t *testing.T) {
	svc, _ := newUserFixture(t)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:           "an@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginRequest{Email: "an@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLoginFailsForUnknownEmail(t *testing.T) {
	svc, _ := newUserFixture(t)

	_, err := svc.Login(context.Background(), &LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Contains(t, err.Error(), "invalid email or password")
}
