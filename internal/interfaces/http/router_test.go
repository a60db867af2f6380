package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/jhoicas/Repuestos-api/docs"
	"github.com/jhoicas/Repuestos-api/internal/application/auth"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/application/report"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Repuestos-api/internal/interfaces/http"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
)

func newTestApp(authEnabled bool) *fiber.App {
	store := memory.NewStore()
	parts := memory.NewSparePartRepo(store)
	outs := memory.NewStockOutRepo(store)
	deps := apphttp.RouterDeps{
		SparePartUC:     usecase.NewSparePartUseCase(parts),
		MovementUC:      inventory.NewMovementUseCase(parts, memory.NewStockInRepo(store), outs, logger.Nop()),
		ReplenishmentUC: inventory.NewReplenishmentUseCase(parts, outs),
		AuthUC: auth.NewAuthUseCase(memory.NewUserRepo(store), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}).WithBcryptCost(bcrypt.MinCost),
		UserUC:          usecase.NewUserUseCase(memory.NewUserRepo(store)),
		ReportUC:        report.NewReportUseCase(parts, pdf.NewStockReportGenerator("Existencias")),
		JWTSecret:       testJWTSecret,
		AuthEnabled:     authEnabled,
	}
	return apphttp.NewApp(apphttp.AppConfig{Name: "repuestos-test", Driver: "memory"}, deps)
}

type apiClient struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func (a *apiClient) do(method, path string, body any) (int, map[string]any) {
	a.t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(a.t, json.Unmarshal(raw, &out), string(raw))
	}
	if len(raw) > 0 && raw[0] == '[' {
		var items []any
		require.NoError(a.t, json.Unmarshal(raw, &items))
		out["items"] = items
	}
	return resp.StatusCode, out
}

// login registra un usuario y guarda su token.
func (a *apiClient) login() {
	a.t.Helper()
	creds := map[string]string{"username": "bodega", "password": "secreto1"}
	status, body := a.do(http.MethodPost, "/api/users/register", creds)
	require.Equal(a.t, http.StatusCreated, status, body)
	assert.Equal(a.t, "bodega", body["user"].(map[string]any)["username"])

	status, body = a.do(http.MethodPost, "/api/users/login", creds)
	require.Equal(a.t, http.StatusOK, status, body)
	a.token = body["token"].(string)
	require.NotEmpty(a.t, a.token)

	status, body = a.do(http.MethodGet, "/api/users/me", nil)
	require.Equal(a.t, http.StatusOK, status, body)
	assert.Equal(a.t, "bodega", body["username"])
}

func TestRouter_FlujoCompletoBolt(t *testing.T) {
	api := &apiClient{t: t, app: newTestApp(true)}
	api.login()

	status, part := api.do(http.MethodPost, "/api/spareparts", map[string]any{
		"business_id": "SP1", "name": "Bolt", "unit_price": 2, "quantity": 10,
	})
	require.Equal(t, http.StatusCreated, status, part)
	partID := part["id"].(string)
	assert.Equal(t, "20", part["total_value"])

	status, in := api.do(http.MethodPost, "/api/stockin", map[string]any{
		"business_id": "IN1", "spare_part_id": partID, "quantity": 5, "received_by": "Ana", "date": "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, status, in)

	status, got := api.do(http.MethodGet, "/api/spareparts/"+partID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 15, got["quantity"])
	assert.Equal(t, "30", got["total_value"])

	status, out := api.do(http.MethodPost, "/api/stockout", map[string]any{
		"business_id": "OUT1", "spare_part_id": partID, "quantity": 4, "unit_price": "2.5", "approved_by": "Luis",
	})
	require.Equal(t, http.StatusCreated, status, out)
	assert.Equal(t, "10", out["total_value"])
	assert.EqualValues(t, 11, out["spare_part"].(map[string]any)["quantity"])

	status, errBody := api.do(http.MethodPost, "/api/stockout", map[string]any{
		"business_id": "OUT2", "spare_part_id": partID, "quantity": 50, "unit_price": 2, "approved_by": "Luis",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody["code"])

	status, list := api.do(http.MethodGet, "/api/stockout", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, list["items"], 1)

	status, history := api.do(http.MethodGet, "/api/dashboard/history?limit=1", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, history["total"])

	status, summary := api.do(http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, summary["total_spare_parts"])
	assert.Equal(t, "22", summary["inventory_value"])

	status, reorder := api.do(http.MethodGet, "/api/dashboard/replenishment?threshold=20", nil)
	require.Equal(t, http.StatusOK, status)
	rows := reorder["items"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.EqualValues(t, 19, row["suggested_order_qty"])
	assert.EqualValues(t, 4, row["units_issued_last_90d"])

	// Eliminar el repuesto deja la salida con spare_part nulo.
	status, msg := api.do(http.MethodDelete, "/api/spareparts/"+partID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, msg["message"])

	status, list = api.do(http.MethodGet, "/api/stockout", nil)
	require.Equal(t, http.StatusOK, status)
	items := list["items"].([]any)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].(map[string]any)["spare_part"])
}

func TestRouter_Errores(t *testing.T) {
	api := &apiClient{t: t, app: newTestApp(true)}

	status, body := api.do(http.MethodGet, "/api/spareparts", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body["code"])

	api.login()

	status, body = api.do(http.MethodGet, "/api/spareparts/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])

	status, body = api.do(http.MethodPost, "/api/spareparts", map[string]any{"name": "Bolt"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])

	create := map[string]any{"business_id": "SP1", "name": "Bolt", "unit_price": 2}
	status, _ = api.do(http.MethodPost, "/api/spareparts", create)
	require.Equal(t, http.StatusCreated, status)
	status, body = api.do(http.MethodPost, "/api/spareparts", create)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "DUPLICATE", body["code"])

	status, body = api.do(http.MethodPost, "/api/users/register", map[string]string{"username": "BODEGA", "password": "otro123"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "USERNAME_TAKEN", body["code"])

	status, body = api.do(http.MethodPost, "/api/users/login", map[string]string{"username": "bodega", "password": "malo12"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

func TestRouter_HealthYAuthDeshabilitada(t *testing.T) {
	api := &apiClient{t: t, app: newTestApp(false)}

	status, body := api.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["driver"])

	status, _ = api.do(http.MethodGet, "/api/spareparts", nil)
	assert.Equal(t, http.StatusOK, status)

	status, doc := api.do(http.MethodGet, "/openapi.json", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "2.0", doc["swagger"])
}

func TestRouter_ReporteStockPDF(t *testing.T) {
	app := newTestApp(false)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/reports/stock.pdf", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestRouter_CamposEnBlanco(t *testing.T) {
	api := &apiClient{t: t, app: newTestApp(true)}
	api.login()

	status, part := api.do(http.MethodPost, "/api/spareparts", map[string]any{
		"business_id": "SP1", "name": "Bolt", "unit_price": 2, "quantity": 10,
	})
	require.Equal(t, http.StatusCreated, status, part)
	partID := part["id"].(string)

	creates := []struct {
		name string
		path string
		body map[string]any
	}{
		{"repuesto sin código", "/api/spareparts", map[string]any{"business_id": "   ", "name": "Tuerca", "unit_price": 1}},
		{"repuesto sin nombre", "/api/spareparts", map[string]any{"business_id": "SP2", "name": "  ", "unit_price": 1}},
		{"entrada sin código", "/api/stockin", map[string]any{"business_id": " ", "spare_part_id": partID, "quantity": 1, "received_by": "Ana"}},
		{"entrada sin receptor", "/api/stockin", map[string]any{"business_id": "IN1", "spare_part_id": partID, "quantity": 1, "received_by": "  "}},
		{"salida sin código", "/api/stockout", map[string]any{"business_id": " ", "spare_part_id": partID, "quantity": 1, "unit_price": 2, "approved_by": "Luis"}},
		{"salida sin aprobador", "/api/stockout", map[string]any{"business_id": "OUT1", "spare_part_id": partID, "quantity": 1, "unit_price": 2, "approved_by": " "}},
	}
	for _, tc := range creates {
		t.Run(tc.name, func(t *testing.T) {
			status, body := api.do(http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, status, body)
			assert.Equal(t, "VALIDATION", body["code"])
		})
	}

	status, in := api.do(http.MethodPost, "/api/stockin", map[string]any{
		"business_id": "IN1", "spare_part_id": partID, "quantity": 1, "received_by": "Ana",
	})
	require.Equal(t, http.StatusCreated, status, in)
	status, out := api.do(http.MethodPost, "/api/stockout", map[string]any{
		"business_id": "OUT1", "spare_part_id": partID, "quantity": 1, "unit_price": 2, "approved_by": "Luis",
	})
	require.Equal(t, http.StatusCreated, status, out)

	updates := []struct {
		name string
		path string
		body map[string]any
	}{
		{"repuesto código", "/api/spareparts/" + partID, map[string]any{"business_id": "  "}},
		{"repuesto nombre", "/api/spareparts/" + partID, map[string]any{"name": " "}},
		{"entrada receptor", "/api/stockin/" + in["id"].(string), map[string]any{"received_by": "   "}},
		{"salida aprobador", "/api/stockout/" + out["id"].(string), map[string]any{"approved_by": " "}},
	}
	for _, tc := range updates {
		t.Run("editar "+tc.name, func(t *testing.T) {
			status, body := api.do(http.MethodPut, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, status, body)
			assert.Equal(t, "VALIDATION", body["code"])
		})
	}

	status, got := api.do(http.MethodGet, "/api/spareparts/"+partID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "SP1", got["business_id"])
	assert.Equal(t, "Bolt", got["name"])
}

func TestRouter_RutaInexistenteSinToken(t *testing.T) {
	api := &apiClient{t: t, app: newTestApp(true)}

	for _, path := range []string{"/api/no-existe", "/api/users/no-existe"} {
		status, body := api.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, status, path)
		assert.Equal(t, "NOT_FOUND", body["code"], path)
	}

	status, body := api.do(http.MethodGet, "/api/stockin", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", body["code"])
}
