package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	handler "distaz-service/internal/adapters/http"
	"distaz-service/internal/core/domain"
	"distaz-service/internal/core/usecases"
)

// ---- Test helpers ----

func setupApp(deps *handler.Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	handler.SetupRoutes(app, deps)
	return app
}

func makeDeps() *handler.Dependencies {
	return &handler.Dependencies{
		Routes: usecases.NewRouteService(nil, nil),
	}
}

// ---- Route handler tests ----

func TestRoute_Success(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/route?start_lat=1.3521&start_lon=103.8198&dest_lat=35.6895&dest_lon=139.6917", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.RouteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.Path == nil || len(result.Path.Coordinates) != usecases.PathSamples+2 {
		t.Fatalf("expected %d path points", usecases.PathSamples+2)
	}
	if result.DistanceMeters == nil || *result.DistanceMeters < 5307000 || *result.DistanceMeters > 5317000 {
		t.Errorf("distance = %v, want ~5312 km", result.DistanceMeters)
	}
	if result.DisplayBounds == nil {
		t.Errorf("expected display bounds")
	}
	if !strings.HasPrefix(result.SummaryText, "Distance: ") {
		t.Errorf("summary = %q", result.SummaryText)
	}
}

func TestRoute_InsufficientInput(t *testing.T) {
	app := setupApp(makeDeps())

	// Missing destination is a prompt, not an error.
	req := httptest.NewRequest("GET", "/v1/route?start_lat=1.35&start_lon=103.82", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.RouteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if result.StartMarker == nil {
		t.Errorf("expected start marker for the valid endpoint")
	}
	if result.DestMarker != nil || result.Path != nil || result.DistanceMeters != nil {
		t.Errorf("expected no destination data")
	}
	if result.SummaryText != usecases.PromptMessage {
		t.Errorf("summary = %q, want prompt", result.SummaryText)
	}
}

func TestRoute_MalformedInput(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET",
		"/v1/route?start_lat=abc&start_lon=1&dest_lat=2&dest_lon=3", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.RouteResult
	json.NewDecoder(resp.Body).Decode(&result)
	if result.StartMarker != nil {
		t.Errorf("expected no start marker for malformed latitude")
	}
	if result.DestMarker == nil {
		t.Errorf("expected dest marker")
	}
}

// ---- Health & readiness ----

func TestHealth(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/health", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	if body.Status != "healthy" {
		t.Errorf("status = %q", body.Status)
	}
}

func TestReady_NoOptionalBackends(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/ready", nil)
	resp, _ := app.Test(req, -1)
	// Cache and NATS are optional; absence does not fail readiness.
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	if body.Checks["cache"] != "not configured" || body.Checks["nats"] != "not configured" {
		t.Errorf("checks = %v", body.Checks)
	}
}

// ---- Middleware behavior ----

func TestNotFoundFallback(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/nope", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var apiErr struct {
		Code string `json:"code"`
	}
	json.NewDecoder(resp.Body).Decode(&apiErr)
	if apiErr.Code != "not_found" {
		t.Errorf("code = %q", apiErr.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/health", nil)
	resp, _ := app.Test(req, -1)
	if got := resp.Header.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := resp.Header.Get("X-API-Version"); got == "" {
		t.Errorf("missing X-API-Version header")
	}
}

func TestETagConditionalGet(t *testing.T) {
	app := setupApp(makeDeps())

	url := "/v1/route?start_lat=10&start_lon=10&dest_lat=10&dest_lon=20"
	req := httptest.NewRequest("GET", url, nil)
	resp, _ := app.Test(req, -1)
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("expected an ETag header")
	}

	req = httptest.NewRequest("GET", url, nil)
	req.Header.Set("If-None-Match", etag)
	resp, _ = app.Test(req, -1)
	if resp.StatusCode != 304 {
		t.Fatalf("expected 304, got %d", resp.StatusCode)
	}
}

func TestCacheControlOnRoute(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/v1/route?start_lat=0&start_lon=0&dest_lat=1&dest_lon=1", nil)
	resp, _ := app.Test(req, -1)
	if got := resp.Header.Get("Cache-Control"); got != "public, max-age=300" {
		t.Errorf("Cache-Control = %q", got)
	}
}

// ---- GraphQL ----

func TestGraphQLRouteQuery(t *testing.T) {
	app := setupApp(makeDeps())

	query := `{"query":"{ route(startLat: \"0\", startLon: \"0\", destLat: \"0\", destLon: \"10\") { distance_meters summary_text } }"}`
	req := httptest.NewRequest("POST", "/graphql", strings.NewReader(query))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Data struct {
			Route struct {
				DistanceMeters float64 `json:"distance_meters"`
				SummaryText    string  `json:"summary_text"`
			} `json:"route"`
		} `json:"data"`
		Errors []interface{} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if len(result.Errors) > 0 {
		t.Fatalf("graphql errors: %v", result.Errors)
	}
	if result.Data.Route.DistanceMeters < 1100000 || result.Data.Route.DistanceMeters > 1120000 {
		t.Errorf("distance = %v, want ~1113 km", result.Data.Route.DistanceMeters)
	}
	if !strings.HasPrefix(result.Data.Route.SummaryText, "Distance: ") {
		t.Errorf("summary = %q", result.Data.Route.SummaryText)
	}
}

func TestGraphQLInvalidBody(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("POST", "/graphql", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

// ---- Docs ----

func TestDocsPage(t *testing.T) {
	app := setupApp(makeDeps())

	req := httptest.NewRequest("GET", "/docs", nil)
	resp, _ := app.Test(req, -1)
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("Content-Type = %q", got)
	}
}
