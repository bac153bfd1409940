package dto

import (
	"github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/validators"
)

type AppointmentDTO struct {
	ID            int64  `json:"id"`
	Nome          string `json:"nome"`
	Servico       string `json:"servico"`
	Data          string `json:"data"`
	DataFormatada string `json:"data_formatada"`
	Hora          string `json:"hora"`
}

type LoadingDTO struct {
	List     bool `json:"list"`
	Creating bool `json:"creating"`
	Deleting bool `json:"deleting"`
}

type DeleteModalDTO struct {
	Open bool   `json:"open"`
	ID   *int64 `json:"id"`
}

// FormDTO carries every error; a client shows one only when its field is
// touched, or reads Visible.
type FormDTO struct {
	Values  appointment.Draft `json:"values"`
	Touched map[string]bool   `json:"touched"`
	Errors  validators.Errors `json:"errors"`
	Visible validators.Errors `json:"visible"`
}

type DashboardStateDTO struct {
	Appointments []AppointmentDTO `json:"appointments"`
	Total        int              `json:"total"`
	TotalLabel   string           `json:"total_label"`
	Loading      LoadingDTO       `json:"loading"`
	Error        string           `json:"error,omitempty"`
	Success      string           `json:"success,omitempty"`
	DeleteModal  DeleteModalDTO   `json:"delete_modal"`
	Form         FormDTO          `json:"form"`
	DarkMode     bool             `json:"dark_mode"`
	MinDate      string           `json:"min_date"`
}
