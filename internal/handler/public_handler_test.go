package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/abcsitio/internal/cache"
	"github.com/abcsitio/internal/db"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newPublicTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, cleanup := setupHandlerTestDB(t)
	api := NewAPI(gdb, testConfig(), cache.New())

	r := gin.New()
	r.HTMLRender = &stubHTMLRender{}
	r.Use(sessions.Sessions("test_flash", cookie.NewStore([]byte("test-secret"))))
	r.GET("/contacto", api.ShowContact)
	r.POST("/contacto", api.SubmitContact)

	return r, gdb, cleanup
}

func postContact(r *gin.Engine, name, email, message string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("name", name)
	form.Set("email", email)
	form.Set("message", message)

	req := httptest.NewRequest(http.MethodPost, "/contacto", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContactStoresMessage(t *testing.T) {
	r, gdb, cleanup := newPublicTestRouter(t)
	t.Cleanup(cleanup)

	w := postContact(r, "Ana", "ana@x.com", "Hola")
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect after submit, got %d", w.Code)
	}

	var rows []db.ContactMessage
	if err := gdb.Find(&rows).Error; err != nil {
		t.Fatalf("failed to load messages: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(rows))
	}
	if rows[0].IsRead {
		t.Fatal("expected stored message to be unread")
	}
	if rows[0].CreatedAt.IsZero() {
		t.Fatal("expected a server-assigned timestamp")
	}
}

func TestSubmitContactValidationNeverReachesStore(t *testing.T) {
	r, gdb, cleanup := newPublicTestRouter(t)
	t.Cleanup(cleanup)

	w := postContact(r, "Ana", "", "Hola")
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect after invalid submit, got %d", w.Code)
	}

	var count int64
	if err := gdb.Model(&db.ContactMessage{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no stored rows for invalid submission, got %d", count)
	}
}
