// internal/shell/navigator.go
package shell

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/cart"
)

// ScreenName identifies a screen in the navigation shell
type ScreenName string

// The finite set of screens. Home, Cart and Account live in the tab
// container; the rest are pushed on top of it.
const (
	ScreenHome          ScreenName = "Home"
	ScreenCart          ScreenName = "Cart"
	ScreenAccount       ScreenName = "Account"
	ScreenLoginForm     ScreenName = "LoginForm"
	ScreenRegisterForm  ScreenName = "RegisterForm"
	ScreenOrder         ScreenName = "OrderScreen"
	ScreenProductDetail ScreenName = "ProductDetail"
)

// OrderParams is the payload OrderScreen requires: the cart snapshot the
// order will be built from
type OrderParams struct {
	CartItems   []cart.Item
	TotalAmount decimal.Decimal
}

// ProductDetailParams is the payload ProductDetail requires
type ProductDetailParams struct {
	ProductID string
}

// Route pairs a screen with its typed parameter payload
type Route struct {
	Name   ScreenName
	Params interface{}
}

// Navigator tracks the active tab and the stack pushed on top of the
// tab container. All transitions are user-initiated; there are no timed
// or automatic transitions.
type Navigator struct {
	activeTab ScreenName
	stack     []Route
}

// NewNavigator starts on the Home tab with an empty stack
func NewNavigator() *Navigator {
	return &Navigator{
		activeTab: ScreenHome,
	}
}

// Current returns the visible route: the top of the stack, or the
// active tab when nothing is pushed
func (n *Navigator) Current() Route {
	if len(n.stack) > 0 {
		return n.stack[len(n.stack)-1]
	}
	return Route{Name: n.activeTab}
}

// Navigate moves to the named screen. Tab screens pop the stack and
// switch the tab container; other screens are pushed on top after their
// parameter payload has been checked.
func (n *Navigator) Navigate(name ScreenName, params interface{}) error {
	if isTab(name) {
		if params != nil {
			return fmt.Errorf("screen %s takes no parameters", name)
		}
		n.stack = n.stack[:0]
		n.activeTab = name
		return nil
	}

	if err := validateParams(name, params); err != nil {
		return err
	}
	n.stack = append(n.stack, Route{Name: name, Params: params})
	return nil
}

// Pop removes the top pushed screen and reports whether one was removed
func (n *Navigator) Pop() bool {
	if len(n.stack) == 0 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Depth returns the number of screens pushed over the tab container
func (n *Navigator) Depth() int {
	return len(n.stack)
}

func isTab(name ScreenName) bool {
	switch name {
	case ScreenHome, ScreenCart, ScreenAccount:
		return true
	}
	return false
}

func validateParams(name ScreenName, params interface{}) error {
	switch name {
	case ScreenLoginForm, ScreenRegisterForm:
		if params != nil {
			return fmt.Errorf("screen %s takes no parameters", name)
		}
	case ScreenOrder:
		if _, ok := params.(OrderParams); !ok {
			return fmt.Errorf("screen %s requires OrderParams", name)
		}
	case ScreenProductDetail:
		p, ok := params.(ProductDetailParams)
		if !ok || p.ProductID == "" {
			return fmt.Errorf("screen %s requires ProductDetailParams with a product id", name)
		}
	default:
		return fmt.Errorf("unknown screen %s", name)
	}
	return nil
}
