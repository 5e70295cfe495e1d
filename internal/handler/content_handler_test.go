package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abcsitio/internal/cache"
	"github.com/abcsitio/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newContentTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, cleanup := setupHandlerTestDB(t)
	api := NewAPI(gdb, testConfig(), cache.New())

	r := gin.New()
	rest := r.Group("/admin/api")
	rest.Use(api.AuthRequired())
	rest.GET("/services", api.GetContent(service.CollectionServices))
	rest.POST("/services", api.CreateContent(service.CollectionServices))
	rest.PUT("/services/:id", api.UpdateContent(service.CollectionServices))
	rest.DELETE("/services/:id", api.DeleteContent(service.CollectionServices))

	return r, gdb, cleanup
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "true"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateServiceVisibleThroughFilters(t *testing.T) {
	r, gdb, cleanup := newContentTestRouter(t)
	t.Cleanup(cleanup)

	body := `{"title":"Asesoría jurídica","description":"Acompañamiento legal","icon_name":"Scale","display_order":5,"is_active":true,"is_featured":false}`
	w := doJSON(r, http.MethodPost, "/admin/api/services", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created struct {
		Item service.ContentItem `json:"item"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Item.ID == "" {
		t.Fatal("expected a generated id in the response")
	}

	svc := service.NewContentService(gdb)
	active := true
	actives, err := svc.ListServices(service.ServiceFilter{Active: &active})
	if err != nil {
		t.Fatalf("ListServices returned error: %v", err)
	}
	if len(actives) != 1 {
		t.Fatalf("expected the new service in the active listing, got %d items", len(actives))
	}

	featured := true
	featureds, err := svc.ListServices(service.ServiceFilter{Featured: &featured})
	if err != nil {
		t.Fatalf("ListServices returned error: %v", err)
	}
	if len(featureds) != 0 {
		t.Fatal("expected the new service excluded from the featured listing")
	}
}

func TestDeleteServiceIsIdempotentOverHTTP(t *testing.T) {
	r, _, cleanup := newContentTestRouter(t)
	t.Cleanup(cleanup)

	w := doJSON(r, http.MethodDelete, "/admin/api/services/no-such-id", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for delete of unknown id, got %d", w.Code)
	}
}

func TestContentMutationsRequireSession(t *testing.T) {
	r, _, cleanup := newContentTestRouter(t)
	t.Cleanup(cleanup)

	req := httptest.NewRequest(http.MethodPost, "/admin/api/services", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session cookie, got %d", w.Code)
	}
}
