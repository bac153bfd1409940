package dashboard

import (
	"github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/form"
	"github.com/BruksfildServices01/scheduler-web/internal/timezone"
)

// View is a point-in-time copy of the dashboard used for rendering.
type View struct {
	Appointments []appointment.Appointment
	LoadingList  bool
	Creating     bool
	Deleting     bool
	Error        string
	Success      string
	Modal        Modal
	Form         form.State
	Dark         bool

	// MinDate is today in the application location, as YYYY-MM-DD.
	MinDate string
}

func (d *Dashboard) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := make([]appointment.Appointment, len(d.appointments))
	copy(list, d.appointments)

	modal := d.modal
	if modal.ID != nil {
		id := *modal.ID
		modal.ID = &id
	}

	return View{
		Appointments: list,
		LoadingList:  d.loadingList,
		Creating:     d.creating,
		Deleting:     d.deleting,
		Error:        d.errMsg,
		Success:      d.success,
		Modal:        modal,
		Form:         d.form,
		Dark:         d.settings.IsDark(),
		MinDate:      timezone.StartOfDay(d.now()).Format("2006-01-02"),
	}
}
