package appointment

import (
	"context"

	"github.com/BruksfildServices01/scheduler-web/internal/audit"
	domain "github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/httperr"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute submits a draft that already passed form validation. Values are
// sent as typed.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	visitorID string,
	in domain.Draft,
) (*domain.Appointment, error) {

	ap, err := uc.repo.Create(ctx, in)
	if err != nil {
		uc.audit.Dispatch(audit.Event{
			VisitorID: visitorID,
			Action:    audit.ActionAppointmentCreateFailed,
			Entity:    audit.EntityAppointment,
			Metadata: map[string]any{
				"data":  in.Data,
				"hora":  in.Hora,
				"error": httperr.Message(err),
			},
		})
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VisitorID: visitorID,
		Action:    audit.ActionAppointmentCreated,
		Entity:    audit.EntityAppointment,
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"data": ap.Data,
			"hora": ap.Hora,
		},
	})

	return ap, nil
}
