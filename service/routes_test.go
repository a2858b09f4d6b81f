package service

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufakin/eticaret/internal/audit"
	"github.com/yusufakin/eticaret/internal/email"
	"github.com/yusufakin/eticaret/internal/reminder"
	"github.com/yusufakin/eticaret/storage"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	config := &Config{}
	config.Admin.Username = "admin"
	config.Admin.Password = "secret"

	auditSvc := audit.NewService(store.Queries)
	composer := reminder.NewComposer(store.Queries, "https://example.com/cart")
	renderer := email.NewRenderer(email.DefaultStyles(), nil)

	svc := New(store, config, auditSvc, composer, renderer)

	e := echo.New()
	svc.RegisterRoutes(e)
	return e
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestAdminRoutesRequireBasicAuth(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/audit/events", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuditEvents(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/audit/events", nil)
	req.SetBasicAuth("admin", "secret")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestAdminReminderPreview_UnknownCart(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/emails/reminder/preview/999", nil)
	req.SetBasicAuth("admin", "secret")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
