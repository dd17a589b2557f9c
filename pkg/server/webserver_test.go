package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/sunrise-ims/inventory-finder/pkg/export"
	"github.com/sunrise-ims/inventory-finder/pkg/index"
	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

func fp(v float64) *float64 { return &v }

func testServer() *WebServer {
	idx := index.NewIndex()
	idx.Upsert(&types.InventoryRecord{
		ID: "1", PanID: 1001, SupplierCode: "SUP-A", PolymerCode: "HDPE",
		FormCode: "PELLET", GradeCode: "G100", WarehouseName: "Houston",
		LocationGroup: "EAST", Lot: 1005, LotName: "Batch-100",
		AvailableQty: 500, MI: fp(2.5),
		PanDate: time.Date(2023, 10, 25, 0, 0, 0, 0, time.UTC),
	})
	idx.Upsert(&types.InventoryRecord{
		ID: "2", PanID: 1002, SupplierCode: "SUP-B", PolymerCode: "PP",
		FormCode: "POWDER", WarehouseName: "Austin", LocationGroup: "WEST",
		Lot: 2200, AvailableQty: 120,
		PanDate: time.Date(2023, 11, 2, 0, 0, 0, 0, time.UTC),
	})
	return &WebServer{Index: idx}
}

func doRequest(t *testing.T, ws *WebServer, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	ws.Handler().ServeHTTP(w, req)
	return w
}

func TestSearchInventoryEndpoint(t *testing.T) {
	w := doRequest(t, testServer(), "/inventory?suppliers=SUP-A&sort=panId,asc")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var body struct {
		Data index.Page `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Page.TotalElements != 1 {
		t.Fatalf("unexpected total: %d", body.Data.Page.TotalElements)
	}
	if len(body.Data.Content) != 1 || body.Data.Content[0].SupplierCode != "SUP-A" {
		t.Fatalf("unexpected content: %+v", body.Data.Content)
	}
}

func TestSearchInventoryRejectsBadParams(t *testing.T) {
	w := doRequest(t, testServer(), "/inventory?minMi=abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetInventoryByIDEndpoint(t *testing.T) {
	ws := testServer()

	w := doRequest(t, ws, "/inventory/1002")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	var record types.InventoryRecord
	if err := json.NewDecoder(w.Body).Decode(&record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record.PanID != 1002 {
		t.Fatalf("unexpected record: %+v", record)
	}

	if w := doRequest(t, ws, "/inventory/9999"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w := doRequest(t, ws, "/inventory/notanumber"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetFilterOptionsEndpoint(t *testing.T) {
	w := doRequest(t, testServer(), "/inventory/filters")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	var opts index.FilterOptions
	if err := json.NewDecoder(w.Body).Decode(&opts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(opts.Suppliers) != 2 || len(opts.Polymers) != 2 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestExportInventoryEndpoint(t *testing.T) {
	w := doRequest(t, testServer(), "/inventory/export?suppliers=SUP-A")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != export.ContentType {
		t.Fatalf("unexpected content type: %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Fatal("missing content disposition")
	}
	if w.Body.Len() == 0 {
		t.Fatal("empty workbook body")
	}
}

func TestCORSPreflight(t *testing.T) {
	ws := testServer()
	// preflight requests carry no credentials, so the route must stay open
	// even when auth is configured
	ws.Auth = NewAuth([]byte("test-secret"), "")

	req := httptest.NewRequest(http.MethodOptions, "/inventory", nil)
	req.Header.Set("Origin", "https://inventory.example.com")
	w := httptest.NewRecorder()
	ws.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://inventory.example.com" {
		t.Fatalf("unexpected allow origin: %q", got)
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatal("missing allowed methods header")
	}

	// without an Origin header no CORS headers are emitted
	req = httptest.NewRequest(http.MethodOptions, "/inventory", nil)
	w = httptest.NewRecorder()
	ws.Handler().ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("origin header invented from nowhere")
	}
}

func TestAuthMiddleware(t *testing.T) {
	ws := testServer()
	secret := []byte("test-secret")
	ws.Auth = NewAuth(secret, "service-key")

	// no credentials
	if w := doRequest(t, ws, "/inventory"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	// api key bypass
	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	req.Header.Set("X-Api-Key", "service-key")
	w := httptest.NewRecorder()
	ws.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("api key rejected: %d", w.Code)
	}

	// valid bearer token
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "viewer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/inventory", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	ws.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token rejected: %d", w.Code)
	}

	// wrong signing key
	bad, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/inventory", nil)
	req.Header.Set("Authorization", "Bearer "+bad)
	w = httptest.NewRecorder()
	ws.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("forged token accepted: %d", w.Code)
	}

	// health stays open
	if w := doRequest(t, ws, "/health"); w.Code != http.StatusOK {
		t.Fatalf("health must not require auth: %d", w.Code)
	}
}
