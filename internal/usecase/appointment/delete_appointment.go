package appointment

import (
	"context"

	"github.com/BruksfildServices01/scheduler-web/internal/audit"
	domain "github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	visitorID string,
	appointmentID int64,
) error {

	if appointmentID <= 0 {
		return httperr.ErrBusiness(httperr.CodeInvalidID)
	}

	if err := uc.repo.Delete(ctx, appointmentID); err != nil {
		uc.audit.Dispatch(audit.Event{
			VisitorID: visitorID,
			Action:    audit.ActionAppointmentDeleteFailed,
			Entity:    audit.EntityAppointment,
			EntityID:  &appointmentID,
			Metadata:  map[string]any{"error": httperr.Message(err)},
		})
		return err
	}

	uc.audit.Dispatch(audit.Event{
		VisitorID: visitorID,
		Action:    audit.ActionAppointmentDeleted,
		Entity:    audit.EntityAppointment,
		EntityID:  &appointmentID,
	})

	return nil
}
