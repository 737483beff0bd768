package hostapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSeasonParam_MissingOrNonNumericIsRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		query string
	}{
		{"missing", ""},
		{"non-numeric", "season=twenty-twenty-five"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/?"+tt.query, nil)

			if _, ok := seasonParam(c); ok {
				t.Fatal("expected seasonParam to reject the request")
			}
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestSeasonParam_ValidIntegerParses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/?season=2025", nil)

	season, ok := seasonParam(c)
	if !ok {
		t.Fatal("expected seasonParam to accept the request")
	}
	if season != 2025 {
		t.Fatalf("season = %d, want 2025", season)
	}
}

// AdvanceDay must reject a request missing ?season= before it ever
// touches the Manager, so a nil Manager is safe to use here.
func TestSimulationHandler_AdvanceDay_RejectsMissingSeasonBeforeTouchingManager(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewSimulationHandler(nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/dynasties/d1/advance/day", nil)
	c.Params = gin.Params{{Key: "id", Value: "d1"}}

	h.AdvanceDay(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSimulationHandler_ResolveMilestone_RejectsMalformedBodyBeforeTouchingManager(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewSimulationHandler(nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/dynasties/d1/milestone/resolve", nil)
	c.Params = gin.Params{{Key: "id", Value: "d1"}}

	h.ResolveMilestone(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSimulationHandler_RegisterRoutes_RegistersEveryAdvanceAndMilestoneRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api")
	NewSimulationHandler(nil).RegisterRoutes(api)

	want := map[string]bool{
		"POST /api/dynasties/:id/advance/day":                true,
		"POST /api/dynasties/:id/advance/week":               true,
		"POST /api/dynasties/:id/advance/phase-end":          true,
		"POST /api/dynasties/:id/advance/skip-to-new-season": true,
		"POST /api/dynasties/:id/milestone/resolve":          true,
		"POST /api/dynasties/:id/milestone/cancel":           true,
	}

	got := make(map[string]bool)
	for _, r := range router.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	for route := range want {
		if !got[route] {
			t.Errorf("route %q was not registered", route)
		}
	}
}
