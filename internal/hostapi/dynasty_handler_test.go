package hostapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// Create must reject an unauthenticated/malformed caller before it ever
// touches the Manager, so a nil Manager is safe to use here.
func TestDynastyHandler_Create_RejectsMissingAuthenticatedUserBeforeTouchingManager(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewDynastyHandler(nil)
	body := `{"display_name":"Eagles Dynasty","owner_name":"Jon","start_date":{"year":2025,"month":8,"day":1}}`

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/dynasties", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	// No "user_id" set on the context: simulates a request that slipped
	// past auth middleware without a parseable subject claim.

	h.Create(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestDynastyHandler_Create_RejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewDynastyHandler(nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/dynasties", bytes.NewBufferString(`{`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestDynastyHandler_RegisterRoutes_RegistersLifecycleRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api")
	NewDynastyHandler(nil).RegisterRoutes(api)

	want := map[string]bool{
		"POST /api/dynasties":     true,
		"GET /api/dynasties":      true,
		"GET /api/dynasties/:id":  true,
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
