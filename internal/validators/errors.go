package validators

import "github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"

// Errors holds one optional message per form field. An empty string means
// the field is valid.
type Errors struct {
	Nome    string `json:"nome,omitempty"`
	Servico string `json:"servico,omitempty"`
	Data    string `json:"data,omitempty"`
	Hora    string `json:"hora,omitempty"`
}

func (e Errors) HasErrors() bool {
	return e.Nome != "" || e.Servico != "" || e.Data != "" || e.Hora != ""
}

// HasErrors reports whether any field of e carries a message.
func HasErrors(e Errors) bool {
	return e.HasErrors()
}

func (e Errors) Get(f appointment.Field) string {
	switch f {
	case appointment.FieldNome:
		return e.Nome
	case appointment.FieldServico:
		return e.Servico
	case appointment.FieldData:
		return e.Data
	case appointment.FieldHora:
		return e.Hora
	}
	return ""
}

// With returns a copy of e with the message of f replaced.
func (e Errors) With(f appointment.Field, msg string) Errors {
	switch f {
	case appointment.FieldNome:
		e.Nome = msg
	case appointment.FieldServico:
		e.Servico = msg
	case appointment.FieldData:
		e.Data = msg
	case appointment.FieldHora:
		e.Hora = msg
	}
	return e
}

func (e Errors) Without(f appointment.Field) Errors {
	return e.With(f, "")
}
