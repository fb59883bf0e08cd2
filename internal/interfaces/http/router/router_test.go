package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	appshop "github.com/petshop/backend/internal/application/shop"
	"github.com/petshop/backend/internal/infrastructure/auth"
	"github.com/petshop/backend/internal/infrastructure/config"
	"github.com/petshop/backend/internal/infrastructure/persistence"
	"github.com/petshop/backend/internal/infrastructure/telemetry"
	"github.com/petshop/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestEngine wires the whole stack over an in-memory database.
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	schema := []string{
		`CREATE TABLE customers (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			name TEXT NOT NULL,
			timezone TEXT NOT NULL,
			owner_token TEXT NOT NULL
		)`,
		`CREATE TABLE shopping_baskets (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			customer_id TEXT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
			status TEXT NOT NULL DEFAULT 'NEW',
			status_date DATETIME NOT NULL
		)`,
		`CREATE TABLE items (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			basket_id TEXT NOT NULL REFERENCES shopping_baskets(id) ON DELETE CASCADE,
			description TEXT NOT NULL,
			amount INTEGER NOT NULL
		)`,
	}
	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}

	customerRepo := persistence.NewGormCustomerRepository(db)
	basketRepo := persistence.NewGormBasketRepository(db)
	itemRepo := persistence.NewGormItemRepository(db)
	viewRepo := persistence.NewGormViewRepository(db)

	customerService := appshop.NewCustomerService(customerRepo)
	basketService := appshop.NewBasketService(customerRepo, basketRepo)
	itemService := appshop.NewItemService(basketRepo, itemRepo)
	viewService := appshop.NewViewService(viewRepo)
	metricsService := appshop.NewMetricsService(customerRepo, basketRepo, itemRepo)

	meterProvider, err := telemetry.NewMeterProvider(telemetry.Config{Enabled: false}, zap.NewNop())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Env = "development"
	cfg.HTTP.MaxBodyBytes = 1 << 20
	cfg.HTTP.RateLimitRPS = 10000
	cfg.Swagger.Enabled = false

	return Setup(Dependencies{
		Config:          cfg,
		Logger:          zap.NewNop(),
		TokenRegistry:   auth.NewTokenRegistry("admin-secret", []string{"tenant-one", "tenant-two"}),
		MeterProvider:   meterProvider,
		CustomerHandler: handler.NewCustomerHandler(customerService, nil),
		BasketHandler:   handler.NewBasketHandler(basketService, nil),
		ItemHandler:     handler.NewItemHandler(itemService, nil),
		ViewHandler:     handler.NewViewHandler(viewService),
		MetricsHandler:  handler.NewMetricsHandler(metricsService),
		SystemHandler:   handler.NewSystemHandler(nil),
	})
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func envelopeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data, _ := envelope["data"].(map[string]any)
	return data
}

func createCustomer(t *testing.T, engine *gin.Engine, token, name string) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/v1/customers", token,
		map[string]string{"name": name, "timezone": "Europe/Amsterdam"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return envelopeData(t, w)["id"].(string)
}

func createBasket(t *testing.T, engine *gin.Engine, token, customerID string) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/v1/customers/"+customerID+"/baskets", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return envelopeData(t, w)["id"].(string)
}

func createItem(t *testing.T, engine *gin.Engine, token, customerID, basketID, description string, amount int) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost,
		"/api/v1/customers/"+customerID+"/baskets/"+basketID+"/items", token,
		map[string]any{"description": description, "amount": amount})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return envelopeData(t, w)["id"].(string)
}

func envelopeList(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	list, _ := envelope["data"].([]any)
	return list
}

func envelopeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	errInfo, _ := envelope["error"].(map[string]any)
	return errInfo
}

func TestAuthGate(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("missing token is rejected", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/customers", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, "error", envelope["status"])
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/customers", "intruder", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("health and metrics bypass the gate", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, engine, http.MethodGet, "/v1/system-metrics", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("disabled swagger answers 404", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/swagger/index.html", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCustomerLifecycle(t *testing.T) {
	engine := newTestEngine(t)

	customerID := createCustomer(t, engine, "tenant-one", "Alice")

	t.Run("owner reads it back", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/customers/"+customerID, "tenant-one", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Alice", envelopeData(t, w)["name"])
	})

	t.Run("foreign tenant sees 404", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/customers/"+customerID, "tenant-two", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("admin sees it", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/customers/"+customerID, "admin-secret", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("duplicate name within tenant conflicts", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/customers", "tenant-one",
			map[string]string{"name": "Alice", "timezone": "Europe/Amsterdam"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("invalid timezone is rejected at binding", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/customers", "tenant-one",
			map[string]string{"name": "Bob", "timezone": "Mars/Olympus"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("put replaces fields", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPut, "/api/v1/customers/"+customerID, "tenant-one",
			map[string]string{"name": "Alice B", "timezone": "America/New_York"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "America/New_York", envelopeData(t, w)["timezone"])
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPatch, "/api/v1/customers/"+customerID, "tenant-one",
			map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("head reports existence per caller", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodHead, "/api/v1/customers/"+customerID, "tenant-one", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, engine, http.MethodHead, "/api/v1/customers/"+customerID, "tenant-two", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete then gone", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete, "/api/v1/customers/"+customerID, "tenant-one", nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, engine, http.MethodGet, "/api/v1/customers/"+customerID, "tenant-one", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCustomerPaginationLinks(t *testing.T) {
	engine := newTestEngine(t)

	for i := 0; i < 5; i++ {
		createCustomer(t, engine, "tenant-one", fmt.Sprintf("Customer %d", i))
	}

	w := doJSON(t, engine, http.MethodGet, "/api/v1/customers?page=2&size=2&sortBy=name&direction=asc", "tenant-one", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := envelopeData(t, w)
	assert.Equal(t, float64(5), data["total_elements"])
	assert.Equal(t, float64(3), data["total_pages"])
	assert.Equal(t, false, data["last"])

	links, ok := data["links"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, links, "first")
	assert.Contains(t, links, "prev")
	assert.Contains(t, links, "next")
	assert.Contains(t, links, "last")
	// httptest requests carry the example.com host; links echo the full
	// request URL so clients can follow them without rebuilding the host.
	assert.Equal(t, "http://example.com/api/v1/customers?page=1&size=2&sortBy=name&direction=asc", links["prev"])
}

func TestCustomerStreaming(t *testing.T) {
	engine := newTestEngine(t)

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		createCustomer(t, engine, "tenant-one", name)
	}
	createCustomer(t, engine, "tenant-two", "Mallory")

	w := doJSON(t, engine, http.MethodGet, "/api/v1/customers/stream", "tenant-one", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/x-ndjson", w.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3, "foreign rows must not leak into the stream")
	for _, line := range lines {
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record), line)
		assert.NotEmpty(t, record["id"])
	}
}

func TestBasketStateMachine(t *testing.T) {
	engine := newTestEngine(t)

	customerID := createCustomer(t, engine, "tenant-one", "Alice")
	basketID := createBasket(t, engine, "tenant-one", customerID)
	basketPath := "/api/v1/customers/" + customerID + "/baskets/" + basketID

	t.Run("new basket starts in NEW", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, basketPath, "tenant-one", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "NEW", envelopeData(t, w)["status"])
	})

	t.Run("forward transition succeeds", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPatch, basketPath, "tenant-one",
			map[string]string{"status": "PAID"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "PAID", envelopeData(t, w)["status"])
	})

	t.Run("backward transition is rejected with 422", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPatch, basketPath, "tenant-one",
			map[string]string{"status": "NEW"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPatch, basketPath, "tenant-one",
			map[string]string{"status": "UNKNOWN"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("basket for a foreign customer cannot be created", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/customers/"+customerID+"/baskets", "tenant-two", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBasketBatchPartialSuccess(t *testing.T) {
	engine := newTestEngine(t)

	customerID := createCustomer(t, engine, "tenant-one", "Alice")
	okBasket := createBasket(t, engine, "tenant-one", customerID)
	paidBasket := createBasket(t, engine, "tenant-one", customerID)

	// Move one basket to PAID so that a second PAID patch becomes illegal.
	w := doJSON(t, engine, http.MethodPatch,
		"/api/v1/customers/"+customerID+"/baskets/"+paidBasket, "tenant-one",
		map[string]string{"status": "PAID"})
	require.Equal(t, http.StatusOK, w.Code)

	elements := []map[string]any{
		{"id": okBasket, "patch": map[string]string{"status": "PAID"}},
		{"id": paidBasket, "patch": map[string]string{"status": "NEW"}},
		{"id": "00000000-0000-0000-0000-000000000999", "patch": map[string]string{"status": "PAID"}},
	}

	w = doJSON(t, engine, http.MethodPatch,
		"/api/v1/customers/"+customerID+"/baskets/batch", "tenant-one", elements)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := envelopeData(t, w)
	assert.Equal(t, float64(1), data["success_count"])
	assert.Equal(t, float64(2), data["failure_count"])

	failures, ok := data["failures"].([]any)
	require.True(t, ok)
	assert.Len(t, failures, 2)
}

func TestItemLifecycle(t *testing.T) {
	engine := newTestEngine(t)

	customerID := createCustomer(t, engine, "tenant-one", "Alice")
	basketID := createBasket(t, engine, "tenant-one", customerID)
	itemsPath := "/api/v1/customers/" + customerID + "/baskets/" + basketID + "/items"

	w := doJSON(t, engine, http.MethodPost, itemsPath, "tenant-one",
		map[string]any{"description": "Dog food", "amount": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	itemID := envelopeData(t, w)["id"].(string)

	t.Run("amount below one is rejected", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, itemsPath, "tenant-one",
			map[string]any{"description": "Cat food", "amount": 0})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("patch single field", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPatch, itemsPath+"/"+itemID, "tenant-one",
			map[string]any{"amount": 5})
		require.Equal(t, http.StatusOK, w.Code)
		data := envelopeData(t, w)
		assert.Equal(t, float64(5), data["amount"])
		assert.Equal(t, "Dog food", data["description"])
	})

	t.Run("foreign tenant cannot reach the item", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, itemsPath+"/"+itemID, "tenant-two", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete item", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete, itemsPath+"/"+itemID, "tenant-one", nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, engine, http.MethodHead, itemsPath+"/"+itemID, "tenant-one", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestValidationErrorDetails(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("validation failures list the offending fields", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/customers", "tenant-one",
			map[string]string{"name": "A", "timezone": "Mars/Olympus"})
		require.Equal(t, http.StatusBadRequest, w.Code)

		errInfo := envelopeError(t, w)
		require.NotNil(t, errInfo)
		assert.Equal(t, "INVALID_REQUEST", errInfo["code"])

		details, ok := errInfo["details"].(map[string]any)
		require.True(t, ok, "validation failures must carry structured details: %s", w.Body.String())
		assert.Contains(t, details, "name")
		assert.Contains(t, details, "timezone")
		assert.NotContains(t, errInfo["message"], "Field validation")
	})

	t.Run("mistyped field is named in the details", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/customers", "tenant-one",
			map[string]any{"name": 42, "timezone": "Europe/Amsterdam"})
		require.Equal(t, http.StatusBadRequest, w.Code)

		details, ok := envelopeError(t, w)["details"].(map[string]any)
		require.True(t, ok, w.Body.String())
		assert.Contains(t, details, "name")
	})

	t.Run("undecodable body gets a generic message", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer tenant-one")

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		errInfo := envelopeError(t, w)
		assert.Equal(t, "Request body could not be parsed", errInfo["message"])
	})
}

func TestStreamErrorBeforeFirstByte(t *testing.T) {
	engine := newTestEngine(t)

	customerID := createCustomer(t, engine, "tenant-one", "Alice")

	// A failure before the first streamed byte must surface as a real error
	// response, not an empty 200 stream.
	w := doJSON(t, engine, http.MethodGet,
		"/api/v1/customers/"+customerID+"/baskets/stream", "tenant-two", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope["status"])
}

func TestCustomerBasketItemViewEndpoints(t *testing.T) {
	engine := newTestEngine(t)

	aliceID := createCustomer(t, engine, "tenant-one", "Alice")
	basketID := createBasket(t, engine, "tenant-one", aliceID)
	createItem(t, engine, "tenant-one", aliceID, basketID, "Dog food", 2)
	createItem(t, engine, "tenant-one", aliceID, basketID, "Leash", 1)
	createCustomer(t, engine, "tenant-one", "Bob")
	createCustomer(t, engine, "tenant-two", "Mallory")

	t.Run("unpaged view joins the whole chain", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/view/customer-basket-items", "tenant-one", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		rows := envelopeList(t, w)
		assert.Len(t, rows, 3, "two item rows plus the basketless customer")
		assert.NotContains(t, w.Body.String(), "Mallory")
		assert.NotContains(t, w.Body.String(), "owner_token")
		assert.NotContains(t, w.Body.String(), "tenant-one")
	})

	t.Run("paginated view pages the join rows", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet,
			"/api/v1/view/customer-basket-items/paginated?page=1&size=2&sortBy=customer_name&direction=asc",
			"tenant-one", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := envelopeData(t, w)
		assert.Equal(t, float64(3), data["total_elements"])
		assert.Equal(t, float64(2), data["total_pages"])

		links, ok := data["links"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t,
			"http://example.com/api/v1/view/customer-basket-items/paginated?page=2&size=2&sortBy=customer_name&direction=asc",
			links["next"])
	})

	t.Run("by customer name stays inside the tenant", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet,
			"/api/v1/view/customer-basket-items/by-customer-name/Alice", "tenant-one", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, envelopeList(t, w), 2)

		w = doJSON(t, engine, http.MethodGet,
			"/api/v1/view/customer-basket-items/by-customer-name/Alice", "tenant-two", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, envelopeList(t, w))
	})

	t.Run("admin sees all tenants", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/view/customer-basket-items", "admin-secret", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, envelopeList(t, w), 4)
	})
}

func TestBusinessMetricsEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	aliceID := createCustomer(t, engine, "tenant-one", "Alice")
	basketID := createBasket(t, engine, "tenant-one", aliceID)
	createItem(t, engine, "tenant-one", aliceID, basketID, "Dog food", 2)
	createItem(t, engine, "tenant-one", aliceID, basketID, "Leash", 3)
	createCustomer(t, engine, "tenant-two", "Mallory")

	t.Run("requires a token unlike the scrape endpoint", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/v1/metrics", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tenant counters stop at the tenant boundary", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/v1/metrics", "tenant-one", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := envelopeData(t, w)
		business, ok := data["business"].(map[string]any)
		require.True(t, ok, w.Body.String())

		customers := business["customers"].(map[string]any)
		assert.Equal(t, float64(1), customers["total"])

		baskets := business["baskets"].(map[string]any)
		assert.Equal(t, float64(1), baskets["total"])
		assert.Equal(t, float64(1), baskets["status:NEW"])

		items := business["items"].(map[string]any)
		assert.Equal(t, float64(2), items["total"])
		assert.Equal(t, float64(5), items["units"])

		assert.NotContains(t, w.Body.String(), "tenant-two")
		assert.Contains(t, data, "system")
	})

	t.Run("admin gets the per-tenant breakdown", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/v1/metrics", "admin-secret", nil)
		require.Equal(t, http.StatusOK, w.Code)

		business := envelopeData(t, w)["business"].(map[string]any)
		customers := business["customers"].(map[string]any)
		assert.Equal(t, float64(2), customers["total"])
		assert.Equal(t, float64(1), customers["tenant:tenant-one"])
		assert.Equal(t, float64(1), customers["tenant:tenant-two"])
	})
}
