package appointment

// ===============================
// Entities
// ===============================

// Appointment is a scheduled record as returned by the remote API.
// Data is YYYY-MM-DD and Hora is HH:mm (24h).
type Appointment struct {
	ID      int64  `json:"id"`
	Nome    string `json:"nome"`
	Servico string `json:"servico"`
	Data    string `json:"data"`
	Hora    string `json:"hora"`
}

// Draft is the unvalidated input of the creation form. It is also the
// creation payload sent to the API, which assigns the id.
type Draft struct {
	Nome    string `json:"nome" form:"nome"`
	Servico string `json:"servico" form:"servico"`
	Data    string `json:"data" form:"data"`
	Hora    string `json:"hora" form:"hora"`
}

// ===============================
// Fields
// ===============================

type Field string

const (
	FieldNome    Field = "nome"
	FieldServico Field = "servico"
	FieldData    Field = "data"
	FieldHora    Field = "hora"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldNome, FieldServico, FieldData, FieldHora}

func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Get returns the value of f.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldNome:
		return d.Nome
	case FieldServico:
		return d.Servico
	case FieldData:
		return d.Data
	case FieldHora:
		return d.Hora
	}
	return ""
}

// With returns a copy of d with f set to v.
func (d Draft) With(f Field, v string) Draft {
	switch f {
	case FieldNome:
		d.Nome = v
	case FieldServico:
		d.Servico = v
	case FieldData:
		d.Data = v
	case FieldHora:
		d.Hora = v
	}
	return d
}
