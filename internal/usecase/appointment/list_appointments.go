package appointment

import (
	"context"

	"github.com/BruksfildServices01/scheduler-web/internal/audit"
	domain "github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/httperr"
)

type ListAppointments struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewListAppointments(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ListAppointments {
	return &ListAppointments{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	visitorID string,
) ([]domain.Appointment, error) {

	appointments, err := uc.repo.List(ctx)
	if err != nil {
		uc.audit.Dispatch(audit.Event{
			VisitorID: visitorID,
			Action:    audit.ActionAppointmentListFailed,
			Entity:    audit.EntityAppointment,
			Metadata:  map[string]any{"error": httperr.Message(err)},
		})
		return nil, err
	}

	return appointments, nil
}
