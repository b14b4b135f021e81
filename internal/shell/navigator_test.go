// internal/shell/navigator_test.go
package shell

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/cart"
)

func TestInitialScreenIsHomeTab(t *testing.T) {
	nav := NewNavigator()
	assert.Equal(t, ScreenHome, nav.Current().Name)
	assert.Zero(t, nav.Depth())
}

func TestSwitchingTabs(t *testing.T) {
	nav := NewNavigator()
	require.NoError(t, nav.Navigate(ScreenCart, nil))
	assert.Equal(t, ScreenCart, nav.Current().Name)

	require.NoError(t, nav.Navigate(ScreenAccount, nil))
	assert.Equal(t, ScreenAccount, nav.Current().Name)
}

func TestPushedScreensStackOverTabs(t *testing.T) {
	nav := NewNavigator()
	require.NoError(t, nav.Navigate(ScreenLoginForm, nil))
	assert.Equal(t, ScreenLoginForm, nav.Current().Name)
	assert.Equal(t, 1, nav.Depth())

	require.NoError(t, nav.Navigate(ScreenRegisterForm, nil))
	assert.Equal(t, 2, nav.Depth())

	assert.True(t, nav.Pop())
	assert.Equal(t, ScreenLoginForm, nav.Current().Name)
	assert.True(t, nav.Pop())
	assert.Equal(t, ScreenHome, nav.Current().Name)
	assert.False(t, nav.Pop())
}

func TestNavigatingToTabPopsTheStack(t *testing.T) {
	nav := NewNavigator()
	require.NoError(t, nav.Navigate(ScreenLoginForm, nil))
	require.NoError(t, nav.Navigate(ScreenHome, nil))

	assert.Zero(t, nav.Depth())
	assert.Equal(t, ScreenHome, nav.Current().Name)
}

func TestOrderScreenRequiresTypedParams(t *testing.T) {
	nav := NewNavigator()

	err := nav.Navigate(ScreenOrder, nil)
	require.Error(t, err)

	err = nav.Navigate(ScreenOrder, "wrong type")
	require.Error(t, err)

	params := OrderParams{
		CartItems:   []cart.Item{{ProductID: "p1", Quantity: 1, TotalPrice: decimal.NewFromInt(1000)}},
		TotalAmount: decimal.NewFromInt(1000),
	}
	require.NoError(t, nav.Navigate(ScreenOrder, params))

	current := nav.Current()
	assert.Equal(t, ScreenOrder, current.Name)
	assert.Equal(t, params, current.Params)
}

func TestProductDetailRequiresProductID(t *testing.T) {
	nav := NewNavigator()

	require.Error(t, nav.Navigate(ScreenProductDetail, nil))
	require.Error(t, nav.Navigate(ScreenProductDetail, ProductDetailParams{}))
	require.NoError(t, nav.Navigate(ScreenProductDetail, ProductDetailParams{ProductID: "p1"}))
}

func TestTabScreensTakeNoParams(t *testing.T) {
	nav := NewNavigator()
	assert.Error(t, nav.Navigate(ScreenCart, ProductDetailParams{ProductID: "p1"}))
}

func TestUnknownScreenIsRejected(t *testing.T) {
	nav := NewNavigator()
	assert.Error(t, nav.Navigate(ScreenName("Checkout"), nil))
}
