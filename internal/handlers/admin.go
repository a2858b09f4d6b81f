package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/yusufakin/eticaret/internal/audit"
	"github.com/yusufakin/eticaret/internal/email"
	"github.com/yusufakin/eticaret/internal/reminder"
	"github.com/yusufakin/eticaret/storage/db"
)

// AdminHandler serves the operational endpoints: a rendered preview of the
// reminder email and a view over recent audit events.
type AdminHandler struct {
	queries  *db.Queries
	audit    *audit.Service
	composer *reminder.Composer
	renderer *email.Renderer
}

func NewAdminHandler(queries *db.Queries, auditSvc *audit.Service, composer *reminder.Composer, renderer *email.Renderer) *AdminHandler {
	return &AdminHandler{
		queries:  queries,
		audit:    auditSvc,
		composer: composer,
		renderer: renderer,
	}
}

// HandleReminderPreview renders the reminder email for a real cart so the
// template can be checked in a browser before any send.
func (h *AdminHandler) HandleReminderPreview(c echo.Context) error {
	cartID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid cart id")
	}

	cart, err := h.queries.GetCart(c.Request().Context(), cartID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "cart not found")
		}
		slog.Error("failed to load cart for preview", "cart_id", cartID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load cart")
	}

	rem, reason, err := h.composer.Compose(c.Request().Context(), cart)
	if err != nil {
		slog.Error("failed to compose preview email", "cart_id", cartID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compose email")
	}
	if reason != reminder.SkipNone {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "cart has no reachable recipient: "+reason.String())
	}

	html, err := h.renderer.Render(rem.Model)
	if err != nil {
		slog.Error("failed to render preview email", "cart_id", cartID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render email")
	}

	return c.HTML(http.StatusOK, html)
}

type auditEventResponse struct {
	ID          string `json:"id"`
	EventType   string `json:"event_type"`
	EntityType  string `json:"entity_type"`
	EntityID    string `json:"entity_id"`
	Message     string `json:"message"`
	ErrorDetail string `json:"error_detail,omitempty"`
	Metadata    string `json:"metadata,omitempty"`
	Success     bool   `json:"success"`
	CreatedAt   string `json:"created_at"`
}

// HandleAuditEvents returns the newest audit entries as JSON.
func (h *AdminHandler) HandleAuditEvents(c echo.Context) error {
	limit := int64(50)
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	events, err := h.audit.Recent(c.Request().Context(), limit)
	if err != nil {
		slog.Error("failed to list audit events", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list audit events")
	}

	out := make([]auditEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, auditEventResponse{
			ID:          ev.ID,
			EventType:   ev.EventType,
			EntityType:  ev.EntityType,
			EntityID:    ev.EntityID,
			Message:     ev.Message,
			ErrorDetail: ev.ErrorDetail.String,
			Metadata:    ev.Metadata.String,
			Success:     ev.Success == 1,
			CreatedAt:   ev.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	return c.JSON(http.StatusOK, out)
}
