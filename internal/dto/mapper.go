package dto

import (
	"github.com/BruksfildServices01/scheduler-web/internal/dashboard"
	"github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/form"
	"github.com/BruksfildServices01/scheduler-web/internal/validators"
	"github.com/BruksfildServices01/scheduler-web/internal/web"
)

func FromForm(s form.State) FormDTO {
	touched := make(map[string]bool, len(s.Touched))
	var visible validators.Errors
	for _, f := range appointment.Fields {
		if s.IsTouched(f) {
			touched[string(f)] = true
		}
		visible = visible.With(f, s.Visible(f))
	}
	return FormDTO{
		Values:  s.Draft,
		Touched: touched,
		Errors:  s.Errors,
		Visible: visible,
	}
}

func FromView(v dashboard.View) DashboardStateDTO {
	items := make([]AppointmentDTO, 0, len(v.Appointments))
	for _, ap := range v.Appointments {
		items = append(items, AppointmentDTO{
			ID:            ap.ID,
			Nome:          ap.Nome,
			Servico:       ap.Servico,
			Data:          ap.Data,
			DataFormatada: web.FormatDatePtBR(ap.Data),
			Hora:          ap.Hora,
		})
	}

	return DashboardStateDTO{
		Appointments: items,
		Total:        len(items),
		TotalLabel:   web.CountAgendamentos(len(items)),
		Loading: LoadingDTO{
			List:     v.LoadingList,
			Creating: v.Creating,
			Deleting: v.Deleting,
		},
		Error:   v.Error,
		Success: v.Success,
		DeleteModal: DeleteModalDTO{
			Open: v.Modal.Open,
			ID:   v.Modal.ID,
		},
		Form:     FromForm(v.Form),
		DarkMode: v.Dark,
		MinDate:  v.MinDate,
	}
}
