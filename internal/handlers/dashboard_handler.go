package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/scheduler-web/internal/dashboard"
	"github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/httperr"
	"github.com/BruksfildServices01/scheduler-web/internal/httpresp"
	"github.com/BruksfildServices01/scheduler-web/internal/middleware"
	"github.com/BruksfildServices01/scheduler-web/internal/preference"
)

// ======================================================
// HANDLER
// ======================================================

// DashboardHandler serves the page and its form posts. Every post redirects
// back to the page, which renders the resulting state.
type DashboardHandler struct {
	registry   *dashboard.Registry
	successTTL time.Duration
}

func NewDashboardHandler(registry *dashboard.Registry, successTTL time.Duration) *DashboardHandler {
	if successTTL <= 0 {
		successTTL = dashboard.DefaultSuccessTTL
	}
	return &DashboardHandler{
		registry:   registry,
		successTTL: successTTL,
	}
}

func (h *DashboardHandler) session(c *gin.Context) *dashboard.Dashboard {
	return h.registry.Get(middleware.VisitorID(c))
}

// ======================================================
// PAGE
// ======================================================

// Page renders the dashboard. ?recarregar=1 fetches the list again.
func (h *DashboardHandler) Page(c *gin.Context) {
	d := h.session(c)
	ctx := c.Request.Context()

	d.Mount(ctx, preference.SystemPrefersDark(c.Request))
	if c.Query("recarregar") == "1" {
		d.Load(ctx)
	}

	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, "base", gin.H{
		"View":             d.View(),
		"SuccessTTLMillis": h.successTTL.Milliseconds(),
	})
}

// ======================================================
// FORM ACTIONS
// ======================================================

func (h *DashboardHandler) Create(c *gin.Context) {
	var draft appointment.Draft
	if err := c.ShouldBind(&draft); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// validation and API failures are kept in the session state
	_, _ = h.session(c).Submit(c.Request.Context(), draft)
	httpresp.SeeOther(c, "/")
}

func (h *DashboardHandler) RequestDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, httperr.CodeInvalidID, "ID inválido.")
		return
	}

	h.session(c).RequestDelete(id)
	httpresp.SeeOther(c, "/")
}

func (h *DashboardHandler) ConfirmDelete(c *gin.Context) {
	_ = h.session(c).ConfirmDelete(c.Request.Context())
	httpresp.SeeOther(c, "/")
}

func (h *DashboardHandler) CancelDelete(c *gin.Context) {
	h.session(c).CancelDelete()
	httpresp.SeeOther(c, "/")
}

func (h *DashboardHandler) DismissError(c *gin.Context) {
	h.session(c).DismissError()
	httpresp.SeeOther(c, "/")
}

func (h *DashboardHandler) ToggleTheme(c *gin.Context) {
	// the preference flips in memory even if the store is down
	_, _ = h.session(c).ToggleTheme(c.Request.Context())
	httpresp.SeeOther(c, "/")
}

func Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}
