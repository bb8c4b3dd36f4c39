package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"p9e.in/sitehub/config"
	"p9e.in/sitehub/handlers"
	"p9e.in/sitehub/models"
	"p9e.in/sitehub/notify"
	"p9e.in/sitehub/routes"
	"p9e.in/sitehub/service"
	"p9e.in/sitehub/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st := store.New()
	store.Seed(st, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := config.Config{
		MaterialApprovalCeiling: 50000,
		PermitOTPLength:         4,
		VarianceWarningPct:      5,
		VarianceAlertPct:        15,
		DefaultSiteRadiusMeters: 100,
	}
	svc := service.New(st, notify.New(), cfg, log)

	srv := httptest.NewServer(routes.RegisterRoutes(handlers.New(svc, log)))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp := do(t, "GET", srv.URL+"/healthz", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected 200", resp.StatusCode)
	}
}

func TestListSites(t *testing.T) {
	srv := newTestServer(t)
	resp := do(t, "GET", srv.URL+"/api/v1/sites", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected 200", resp.StatusCode)
	}

	var sites []models.Site
	if err := json.NewDecoder(resp.Body).Decode(&sites); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sites) != 3 {
		t.Errorf("expected 3 seeded sites, got %d", len(sites))
	}
}

func TestJoinSiteEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, "POST", srv.URL+"/api/v1/sites/join", `{"code":"site-b2","userId":"u9"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected 200", resp.StatusCode)
	}

	var result service.JoinResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Success || result.Site == nil || result.Site.ID != "s2" {
		t.Errorf("join result = %+v, expected success on s2", result)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown record is 404", "POST", "/api/v1/tool-requests/tr99/issue", "", http.StatusNotFound},
		{"illegal transition is 409", "POST", "/api/v1/tool-requests/tr3/return", "", http.StatusConflict},
		{"validation failure is 400", "POST", "/api/v1/attendance", `{"userId":"u1","siteId":"s1","lat":95,"lon":0}`, http.StatusBadRequest},
		{"authorization failure is 403", "POST", "/api/v1/attendance/a2/decide", `{"approve":true,"actorRole":"labour"}`, http.StatusForbidden},
		{"malformed body is 400", "POST", "/api/v1/permits", `{"taskName":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, srv.URL+tt.path, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("%s %s: status = %d, expected %d", tt.method, tt.path, resp.StatusCode, tt.status)
			}
		})
	}
}

func TestPermitVerifyEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// pt1 is seeded otp_sent with code 8421
	resp := do(t, "POST", srv.URL+"/api/v1/permits/pt1/verify", `{"otp":"1111"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected 200 for a wrong code", resp.StatusCode)
	}
	var result map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result["verified"] {
		t.Error("wrong code reported verified")
	}

	resp = do(t, "POST", srv.URL+"/api/v1/permits/pt1/verify", `{"otp":"8421"}`)
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result["verified"] {
		t.Error("correct code not verified")
	}
}

func TestStockMoveEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, "POST", srv.URL+"/api/v1/stock/st3/move", `{"quantity":10,"direction":"out"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected 200", resp.StatusCode)
	}
	var item models.StockItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if item.Quantity != 18 || item.Status != models.StockLow {
		t.Errorf("item = %+v, expected quantity 18 / low", item)
	}
}

func TestStockExportEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, "GET", srv.URL+"/api/v1/reports/stock/export", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "spreadsheet") {
		t.Errorf("content type = %q, expected a spreadsheet", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("content disposition = %q, expected attachment", cd)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if len(body) == 0 {
		t.Error("export body is empty")
	}
}
