package hostapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestDraftHandler_Simulate_RejectsMissingSeasonBeforeTouchingManager(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewDraftHandler(nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/dynasties/d1/draft/simulate", bytes.NewBufferString(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "d1"}}

	h.Simulate(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestDraftHandler_Simulate_RejectsNonNumericUserPickKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewDraftHandler(nil)
	body := `{"user_team_id":1,"user_picks":{"first-overall":"player-123"}}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/dynasties/d1/draft/simulate?season=2025", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "d1"}}

	h.Simulate(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestDraftHandler_RegisterRoutes_RegistersDraftRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api")
	NewDraftHandler(nil).RegisterRoutes(api)

	want := map[string]bool{
		"GET /api/dynasties/:id/draft/progress":  true,
		"POST /api/dynasties/:id/draft/simulate": true,
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
