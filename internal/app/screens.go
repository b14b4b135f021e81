// internal/app/screens.go
package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/pkg/currency"
	"github.com/your-org/storefront/internal/shell"
)

// Home

func (a *App) renderHome(ctx context.Context) {
	if a.catalog == nil {
		products, err := a.products.List(ctx)
		if err != nil {
			a.notifyError("Could not load products", err)
			a.catalog = []product.Product{}
		} else {
			a.catalog = products
		}
		a.filtered = a.catalog
	}

	fmt.Fprintln(a.out, "\n-- Home --")
	if len(a.filtered) == 0 {
		fmt.Fprintln(a.out, "No products to show")
	}
	for i, p := range a.filtered {
		fmt.Fprintf(a.out, "%2d. %s  %s\n", i+1, p.Name, currency.FormatVND(p.Price))
	}
	fmt.Fprintln(a.out, "commands: search <text> | add <n> | open <n> | cart | account | quit")
}

func (a *App) handleHome(ctx context.Context, line string) {
	cmd, arg := splitCommand(line)
	switch cmd {
	case "search":
		a.filtered = product.Search(arg, a.catalog)
	case "refresh":
		a.catalog = nil
	case "add":
		if p := a.pickProduct(arg); p != nil {
			a.addToCart(ctx, p)
		}
	case "open":
		if p := a.pickProduct(arg); p != nil {
			a.navigate(shell.ScreenProductDetail, shell.ProductDetailParams{ProductID: p.ID})
		}
	case "cart":
		a.navigate(shell.ScreenCart, nil)
	case "account":
		a.navigate(shell.ScreenAccount, nil)
	default:
		a.notify("Unknown command")
	}
}

// Cart

func (a *App) renderCart(ctx context.Context) {
	fmt.Fprintln(a.out, "\n-- Cart --")

	// Re-check login state and cart contents on focus
	a.refreshSession()
	if a.userID() == "" {
		a.currentCart = nil
		fmt.Fprintln(a.out, "Sign in to see your cart")
		fmt.Fprintln(a.out, "commands: home | account | quit")
		return
	}

	c, err := a.carts.GetByUser(ctx, a.userID())
	if err != nil {
		a.notifyError("Could not load the cart", err)
		return
	}
	a.currentCart = c

	if c.IsEmpty() {
		fmt.Fprintln(a.out, "Your cart is empty")
		fmt.Fprintln(a.out, "commands: home | account | quit")
		return
	}

	// Joint fetch of product details for all lines; one failure drops
	// to ids only rather than blocking the screen.
	details, err := a.products.GetMany(ctx, c.ProductIDs())
	if err != nil {
		a.notifyError("Could not load product details", err)
		details = map[string]product.Product{}
	}

	for i, item := range c.Items {
		name := item.ProductID
		if p, ok := details[item.ProductID]; ok {
			name = p.Name
		}
		fmt.Fprintf(a.out, "%2d. %s  x%d  %s\n", i+1, name, item.Quantity, currency.FormatVND(item.TotalPrice))
	}
	fmt.Fprintf(a.out, "Total quantity: %d\n", c.TotalQuantity())
	fmt.Fprintf(a.out, "Total: %s\n", currency.FormatVND(c.TotalAmount))
	fmt.Fprintln(a.out, "commands: remove <n> | checkout | home | account | quit")
}

func (a *App) handleCart(ctx context.Context, line string) {
	cmd, arg := splitCommand(line)
	switch cmd {
	case "remove":
		if a.currentCart.IsEmpty() {
			a.notify("Your cart is empty")
			return
		}
		i, err := parseIndex(arg, len(a.currentCart.Items))
		if err != nil {
			a.notify("Pick an item number from the list")
			return
		}
		updated, err := a.carts.RemoveFromCart(ctx, a.currentCart, a.currentCart.Items[i].ProductID)
		if err != nil {
			a.notifyError("Could not remove the item", err)
			return
		}
		a.currentCart = updated
		a.notify("Item removed from cart")
	case "checkout":
		if a.currentCart.IsEmpty() {
			a.notify("Add products before placing an order")
			return
		}
		a.navigate(shell.ScreenOrder, shell.OrderParams{
			CartItems:   append([]cart.Item(nil), a.currentCart.Items...),
			TotalAmount: a.currentCart.TotalAmount,
		})
	case "home":
		a.navigate(shell.ScreenHome, nil)
	case "account":
		a.navigate(shell.ScreenAccount, nil)
	default:
		a.notify("Unknown command")
	}
}

// Account

func (a *App) renderAccount() {
	fmt.Fprintln(a.out, "\n-- Account --")
	a.refreshSession()
	if a.currentUser != nil {
		fmt.Fprintf(a.out, "Signed in as %s\n", a.currentUser.Email)
		fmt.Fprintln(a.out, "commands: logout | home | cart | quit")
		return
	}
	fmt.Fprintln(a.out, "You are not signed in")
	fmt.Fprintln(a.out, "commands: login | register | home | cart | quit")
}

func (a *App) handleAccount(ctx context.Context, line string) {
	cmd, _ := splitCommand(line)
	switch cmd {
	case "login":
		a.navigate(shell.ScreenLoginForm, nil)
	case "register":
		a.navigate(shell.ScreenRegisterForm, nil)
	case "logout":
		if err := a.sessions.Clear(); err != nil {
			a.notifyError("Could not sign out", err)
			return
		}
		a.currentUser = nil
		a.currentCart = nil
		a.notify("Signed out")
	case "home":
		a.navigate(shell.ScreenHome, nil)
	case "cart":
		a.navigate(shell.ScreenCart, nil)
	default:
		a.notify("Unknown command")
	}
}

// Login and register forms run their prompt sequence and pop back

func (a *App) renderLoginForm(ctx context.Context) {
	fmt.Fprintln(a.out, "\n-- Login --")
	email, ok := a.readLine("email: ")
	if !ok {
		a.nav.Pop()
		return
	}
	password, ok := a.readLine("password: ")
	if !ok {
		a.nav.Pop()
		return
	}
	a.nav.Pop()

	u, err := a.users.Login(ctx, &user.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.notifyError("Login failed", err)
		return
	}
	if err := a.sessions.Save(u); err != nil {
		a.notifyError("Could not save the session", err)
		return
	}
	a.currentUser = u
	a.notify("You have successfully logged in")
	a.navigate(shell.ScreenHome, nil)
}

func (a *App) renderRegisterForm(ctx context.Context) {
	fmt.Fprintln(a.out, "\n-- Register --")
	email, ok := a.readLine("email: ")
	if !ok {
		a.nav.Pop()
		return
	}
	password, ok := a.readLine("password: ")
	if !ok {
		a.nav.Pop()
		return
	}
	confirm, ok := a.readLine("confirm password: ")
	if !ok {
		a.nav.Pop()
		return
	}
	a.nav.Pop()

	_, err := a.users.Register(ctx, &user.RegisterRequest{
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		a.notifyError("Registration failed", err)
		return
	}
	a.notify("Account created successfully")
	a.navigate(shell.ScreenLoginForm, nil)
}

// Order confirmation

func (a *App) renderOrder(ctx context.Context, params shell.OrderParams) {
	fmt.Fprintln(a.out, "\n-- Confirm Order --")

	ids := make([]string, len(params.CartItems))
	for i, item := range params.CartItems {
		ids[i] = item.ProductID
	}
	details, err := a.products.GetMany(ctx, ids)
	if err != nil {
		a.notifyError("Could not load product details", err)
		details = map[string]product.Product{}
	}

	for _, item := range params.CartItems {
		name := item.ProductID
		if p, ok := details[item.ProductID]; ok {
			name = p.Name
		}
		fmt.Fprintf(a.out, "  %s  x%d  %s\n", name, item.Quantity, currency.FormatVND(item.TotalPrice))
	}
	fmt.Fprintf(a.out, "Total: %s\n", currency.FormatVND(params.TotalAmount))
	fmt.Fprintln(a.out, "commands: confirm | back | quit")
}

func (a *App) handleOrder(ctx context.Context, params shell.OrderParams, line string) {
	cmd, _ := splitCommand(line)
	switch cmd {
	case "confirm":
		a.placeOrder(ctx, params)
	case "back":
		a.nav.Pop()
	default:
		a.notify("Unknown command")
	}
}

func (a *App) placeOrder(ctx context.Context, params shell.OrderParams) {
	a.refreshSession()
	if a.userID() == "" {
		a.notify("Sign in to place an order")
		return
	}

	// Re-fetch the cart so the deletion targets the live record
	c, err := a.carts.GetByUser(ctx, a.userID())
	if err != nil {
		a.notifyError("Could not load the cart", err)
		return
	}
	if c == nil {
		c = &cart.Cart{
			UserID:      a.userID(),
			Items:       params.CartItems,
			TotalAmount: params.TotalAmount,
		}
	}

	placed, err := a.orders.Place(ctx, c, a.userID())
	switch {
	case err == nil:
		a.currentCart = nil
		a.notify("Order placed successfully")
		a.navigate(shell.ScreenHome, nil)
	case errors.Is(err, order.ErrCartNotCleared):
		// Known gap: the order exists but the cart record is still
		// there. Tell the user instead of pretending otherwise.
		a.log.WithField("order_id", placed.ID).Warn("Order placed but cart was not cleared")
		a.notify("Order placed, but your cart could not be cleared")
		a.navigate(shell.ScreenHome, nil)
	default:
		a.notifyError("Could not place the order", err)
	}
}

// Product detail

func (a *App) renderProductDetail(ctx context.Context, params shell.ProductDetailParams) {
	fmt.Fprintln(a.out, "\n-- Product --")
	p, err := a.products.Get(ctx, params.ProductID)
	if err != nil {
		a.notifyError("Could not load the product", err)
		fmt.Fprintln(a.out, "commands: back | quit")
		return
	}
	fmt.Fprintf(a.out, "%s\n%s\n%s\n", p.Name, currency.FormatVND(p.Price), p.Description)
	fmt.Fprintln(a.out, "commands: add | back | quit")
}

func (a *App) handleProductDetail(ctx context.Context, params shell.ProductDetailParams, line string) {
	cmd, _ := splitCommand(line)
	switch cmd {
	case "add":
		p, err := a.products.Get(ctx, params.ProductID)
		if err != nil {
			a.notifyError("Could not load the product", err)
			return
		}
		a.addToCart(ctx, p)
	case "back":
		a.nav.Pop()
	default:
		a.notify("Unknown command")
	}
}

// Shared flows and helpers

func (a *App) addToCart(ctx context.Context, p *product.Product) {
	a.refreshSession()
	if a.userID() == "" {
		a.notify("Sign in to add products to the cart")
		return
	}

	current, err := a.carts.GetByUser(ctx, a.userID())
	if err != nil {
		a.notifyError("Could not load the cart", err)
		return
	}

	updated, err := a.carts.AddToCart(ctx, p, current, a.userID())
	if err != nil {
		a.notifyError("Could not add the product to the cart", err)
		return
	}
	a.currentCart = updated
	a.notify("Product added to cart")
}

func (a *App) pickProduct(arg string) *product.Product {
	i, err := parseIndex(arg, len(a.filtered))
	if err != nil {
		a.notify("Pick a product number from the list")
		return nil
	}
	return &a.filtered[i]
}

func splitCommand(line string) (cmd, arg string) {
	parts := strings.SplitN(line, " ", 2)
	cmd = strings.ToLower(strings.TrimSpace(parts[0]))
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

func parseIndex(arg string, max int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("index %d out of range", n)
	}
	return n - 1, nil
}
