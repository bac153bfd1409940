package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/scheduler-web/internal/dashboard"
	"github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/dto"
	"github.com/BruksfildServices01/scheduler-web/internal/form"
	"github.com/BruksfildServices01/scheduler-web/internal/httperr"
	"github.com/BruksfildServices01/scheduler-web/internal/httpresp"
	"github.com/BruksfildServices01/scheduler-web/internal/middleware"
	"github.com/BruksfildServices01/scheduler-web/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/scheduler-web/internal/usecase/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type StateAPIHandler struct {
	registry *dashboard.Registry
	list     *ucAppointment.ListAppointments
}

func NewStateAPIHandler(
	registry *dashboard.Registry,
	list *ucAppointment.ListAppointments,
) *StateAPIHandler {
	return &StateAPIHandler{
		registry: registry,
		list:     list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type FieldEventRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type ValidateRequest struct {
	Nome    string `json:"nome"`
	Servico string `json:"servico"`
	Data    string `json:"data"`
	Hora    string `json:"hora"`

	// Field limits validation to one field when set.
	Field string `json:"field"`
}

type ValidateResponse struct {
	Errors    validators.Errors `json:"errors"`
	HasErrors bool              `json:"has_errors"`
}

// ======================================================
// STATE
// ======================================================

func (h *StateAPIHandler) State(c *gin.Context) {
	d := h.registry.Get(middleware.VisitorID(c))
	httpresp.OK(c, dto.FromView(d.View()))
}

// Appointments fetches the list straight from the remote API, without
// touching the page state.
func (h *StateAPIHandler) Appointments(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context(), middleware.VisitorID(c))
	if err != nil {
		httperr.BadGateway(c, err)
		return
	}
	httpresp.List(c, list)
}

// ======================================================
// FORM EVENTS
// ======================================================

func (h *StateAPIHandler) Change(c *gin.Context) {
	h.applyEvent(c, form.EventChange)
}

func (h *StateAPIHandler) Blur(c *gin.Context) {
	h.applyEvent(c, form.EventBlur)
}

func (h *StateAPIHandler) applyEvent(c *gin.Context, typ form.EventType) {
	var req FieldEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	field, ok := appointment.ParseField(req.Field)
	if !ok {
		httperr.BadRequest(c, "invalid_field", "Campo inválido.")
		return
	}

	d := h.registry.Get(middleware.VisitorID(c))
	st := d.ApplyFormEvent(form.Event{Type: typ, Field: field, Value: req.Value})
	httpresp.OK(c, dto.FromForm(st))
}

// Validate runs the field rules without changing any state.
func (h *StateAPIHandler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	draft := appointment.Draft{
		Nome:    req.Nome,
		Servico: req.Servico,
		Data:    req.Data,
		Hora:    req.Hora,
	}
	now := timezone.Now()

	var errs validators.Errors
	if req.Field != "" {
		field, ok := appointment.ParseField(req.Field)
		if !ok {
			httperr.BadRequest(c, "invalid_field", "Campo inválido.")
			return
		}
		errs = errs.With(field, validators.ValidateField(field, draft.Get(field), now))
	} else {
		errs = validators.ValidateDraftAt(draft, now)
	}

	httpresp.OK(c, ValidateResponse{
		Errors:    errs,
		HasErrors: errs.HasErrors(),
	})
}
