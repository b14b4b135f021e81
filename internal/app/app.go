// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/shell"
)

// App wires the screens to the domain services. Screens hold no
// authoritative state: everything they show is re-read from the remote
// API or the session store when they become visible.
type App struct {
	config   *config.Config
	log      *logrus.Logger
	nav      *shell.Navigator
	sessions *session.Service
	users    *user.Service
	products *product.Service
	carts    *cart.Service
	orders   *order.Service

	in  *bufio.Scanner
	out io.Writer

	// Per-screen view state, refreshed on focus
	currentUser *user.User
	catalog     []product.Product
	filtered    []product.Product
	currentCart *cart.Cart
}

// New creates the storefront application
func New(
	cfg *config.Config,
	log *logrus.Logger,
	sessions *session.Service,
	users *user.Service,
	products *product.Service,
	carts *cart.Service,
	orders *order.Service,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		config:   cfg,
		log:      log,
		nav:      shell.NewNavigator(),
		sessions: sessions,
		users:    users,
		products: products,
		carts:    carts,
		orders:   orders,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run drives the screen loop until the user quits or input ends. Every
// failure is logged and shown as a notice; nothing crashes the app.
func (a *App) Run(ctx context.Context) error {
	a.refreshSession()
	fmt.Fprintf(a.out, "%s v%s\n", a.config.App.Name, a.config.App.Version)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		route := a.nav.Current()
		a.renderScreen(ctx, route)

		line, ok := a.readLine("> ")
		if !ok {
			return nil
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		a.handleScreen(ctx, route, line)
	}
}

func (a *App) renderScreen(ctx context.Context, route shell.Route) {
	switch route.Name {
	case shell.ScreenHome:
		a.renderHome(ctx)
	case shell.ScreenCart:
		a.renderCart(ctx)
	case shell.ScreenAccount:
		a.renderAccount()
	case shell.ScreenLoginForm:
		a.renderLoginForm(ctx)
	case shell.ScreenRegisterForm:
		a.renderRegisterForm(ctx)
	case shell.ScreenOrder:
		a.renderOrder(ctx, route.Params.(shell.OrderParams))
	case shell.ScreenProductDetail:
		a.renderProductDetail(ctx, route.Params.(shell.ProductDetailParams))
	}
}

func (a *App) handleScreen(ctx context.Context, route shell.Route, line string) {
	switch route.Name {
	case shell.ScreenHome:
		a.handleHome(ctx, line)
	case shell.ScreenCart:
		a.handleCart(ctx, line)
	case shell.ScreenAccount:
		a.handleAccount(ctx, line)
	case shell.ScreenOrder:
		a.handleOrder(ctx, route.Params.(shell.OrderParams), line)
	case shell.ScreenProductDetail:
		a.handleProductDetail(ctx, route.Params.(shell.ProductDetailParams), line)
	default:
		// Login and register run their prompt sequence during render
		// and pop themselves; there is nothing to handle here.
	}
}

// refreshSession re-reads the session store, the equivalent of a screen
// re-checking login state on focus
func (a *App) refreshSession() {
	u, err := a.sessions.Load()
	if err != nil {
		a.notifyError("Could not read the saved session", err)
		a.currentUser = nil
		return
	}
	a.currentUser = u
}

func (a *App) userID() string {
	if a.currentUser == nil {
		return ""
	}
	return a.currentUser.ID
}

func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) notify(message string) {
	fmt.Fprintln(a.out, message)
}

func (a *App) notifyError(message string, err error) {
	a.log.WithError(err).Warn(message)
	fmt.Fprintf(a.out, "%s: %v\n", message, err)
}

func (a *App) navigate(name shell.ScreenName, params interface{}) {
	if err := a.nav.Navigate(name, params); err != nil {
		a.notifyError("Navigation failed", err)
	}
}
