package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techsell-web/domain"
	"techsell-web/internal/api/handlers"
	"techsell-web/internal/middleware"
	"techsell-web/internal/utils"
	"techsell-web/pkg/admin"
	"techsell-web/pkg/auth"
	"techsell-web/pkg/barter"
	"techsell-web/pkg/cart"
	"techsell-web/pkg/gateway"
	"techsell-web/pkg/jwt"
	"techsell-web/pkg/order"
	"techsell-web/pkg/product"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMarketplace stands in for the remote backend so the full route stack can
// be exercised end to end.
func fakeMarketplace(t *testing.T, roles []string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "backend_session", Value: "tok"})
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"user":    map[string]any{"_id": "u1", "username": "ada", "roles": roles},
		})
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Logged out successfully"}`))
	})
	mux.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"c1","product":{"_id":"p1","name":"lamp","price":12.5},"quantity":2}]`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func testApp(t *testing.T, roles []string) *fiber.App {
	t.Helper()
	utils.InitValidator()

	backend := gateway.NewClient(fakeMarketplace(t, roles).URL)
	middlewares := middleware.NewMiddleware()
	jwtService := jwt.NewJWTService()
	sessionStore := auth.NewSessionStore()
	authService := auth.NewAuthService(sessionStore, backend, jwtService)

	productRemote := product.NewProductRemote(backend)
	cartRemote := cart.NewCartRemote(backend)
	orderRemote := order.NewOrderRemote(backend)
	barterRemote := barter.NewBarterRemote(backend)
	adminRemote := admin.NewAdminRemote(backend)

	app := fiber.New()
	cfg := Config{
		App:            app,
		AuthHandler:    handlers.NewAuthHandler(authService, utils.Validate),
		ProductHandler: handlers.NewProductHandler(product.NewProductService(productRemote, disabledS3{}), authService, utils.Validate),
		CartHandler:    handlers.NewCartHandler(cart.NewCartService(cartRemote), authService, utils.Validate),
		OrderHandler:   handlers.NewOrderHandler(order.NewOrderService(orderRemote), authService, utils.Validate),
		BarterHandler:  handlers.NewBarterHandler(barter.NewBarterService(barterRemote, disabledS3{}), authService, utils.Validate),
		AdminHandler:   handlers.NewAdminHandler(admin.NewAdminService(adminRemote), authService),
		NavHandler:     handlers.NewNavHandler(authService),
		Middleware:     middlewares,
		JWTService:     jwtService,
		SessionStore:   sessionStore,
	}
	cfg.Setup()
	return app
}

type disabledS3 struct{}

func (disabledS3) Enabled() bool { return false }
func (disabledS3) UploadBytes(prefix string, data []byte, contentType string) (string, error) {
	return "", nil
}
func (disabledS3) GetPublicLinkKey(objectKey string) string { return "" }

func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"studentEmail":"ada@campus.edu","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusSeeOther, res.StatusCode)

	for _, ck := range res.Cookies() {
		if ck.Name == domain.SessionCookieName {
			return ck
		}
	}
	t.Fatal("session cookie not set after login")
	return nil
}

func TestGuardedRouteRedirectsWithoutSession(t *testing.T) {
	app := testApp(t, []string{"buyer"})

	res, err := app.Test(httptest.NewRequest("GET", "/cart", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))
}

func TestGuardedRouteRejectsGarbageToken(t *testing.T) {
	app := testApp(t, []string{"buyer"})

	req := httptest.NewRequest("GET", "/cart", nil)
	req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: "not-a-jwt"})
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))
}

func TestCartWithSessionReturnsItemsAndTotals(t *testing.T) {
	app := testApp(t, []string{"buyer"})
	cookie := login(t, app)

	req := httptest.NewRequest("GET", "/cart", nil)
	req.AddCookie(cookie)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var body struct {
		Data struct {
			Totals domain.CartTotals `json:"totals"`
		} `json:"data"`
	}
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, 25.00, body.Data.Totals.Subtotal)
	assert.Equal(t, 10.00, body.Data.Totals.DeliveryFee)
	assert.Equal(t, 35.00, body.Data.Totals.Total)
}

func TestAdminHubDeniedWithoutAdminRole(t *testing.T) {
	app := testApp(t, []string{"buyer"})
	cookie := login(t, app)

	req := httptest.NewRequest("GET", "/nav/admin-hub", nil)
	req.AddCookie(cookie)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	assert.Empty(t, res.Header.Get("Location"))

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), domain.MessageAccessDeniedAdmin)
}

func TestAdminHubNavigatesForAdmin(t *testing.T) {
	app := testApp(t, []string{"buyer", "admin"})
	cookie := login(t, app)

	req := httptest.NewRequest("GET", "/nav/admin-hub", nil)
	req.AddCookie(cookie)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, res.StatusCode)
	assert.Equal(t, "/admin-dashboard", res.Header.Get("Location"))
}

func TestLogoutExpiresSessionCookie(t *testing.T) {
	app := testApp(t, []string{"buyer"})
	cookie := login(t, app)

	req := httptest.NewRequest("POST", "/account/logout", nil)
	req.AddCookie(cookie)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get("Location"))

	// The same token no longer resolves to a session.
	req = httptest.NewRequest("GET", "/nav", nil)
	req.AddCookie(cookie)
	res, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, res.StatusCode)
}

func TestOtpRoutesRequirePendingSignup(t *testing.T) {
	app := testApp(t, []string{"buyer"})

	req := httptest.NewRequest("POST", "/otp/verify", strings.NewReader(`{"enteredOtp":"123456"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, res.StatusCode)
	assert.Equal(t, "/signup", res.Header.Get("Location"))
}

func TestPaymentStatusIsAGuestRoute(t *testing.T) {
	app := testApp(t, []string{"buyer"})

	res, err := app.Test(httptest.NewRequest("GET", "/payment-status?status=success&reference=ref1", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), domain.MessagePaymentSuccess)
}

func TestNavToggleRules(t *testing.T) {
	app := testApp(t, []string{"buyer"})
	cookie := login(t, app)

	toggle := func(path, body string) map[string]any {
		req := httptest.NewRequest("POST", path, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		req.AddCookie(cookie)
		res, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, res.StatusCode)

		var out struct {
			Data map[string]any `json:"data"`
		}
		raw, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &out))
		return out.Data
	}

	state := toggle("/nav/dropdown", `{"menu":"categories"}`)
	assert.Equal(t, "categories", state["dropdown"])

	// Opening the mobile menu closes the dropdown.
	state = toggle("/nav/mobile-menu", "")
	assert.Equal(t, "", state["dropdown"])
	assert.Equal(t, true, state["mobileMenu"])

	// Opening a dropdown closes the mobile menu again.
	state = toggle("/nav/dropdown", `{"menu":"profile"}`)
	assert.Equal(t, "profile", state["dropdown"])
	assert.Equal(t, false, state["mobileMenu"])

	state = toggle("/nav/close", "")
	assert.Equal(t, "", state["dropdown"])
	assert.Equal(t, false, state["mobileMenu"])
}
