package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/BruksfildServices01/scheduler-web/internal/domain/appointment"
	"github.com/BruksfildServices01/scheduler-web/internal/form"
)

//go:embed templates/*.html
var files embed.FS

// BusinessHoursHint is shown under the time input.
const BusinessHoursHint = "Horário comercial: 08:00 às 18:00"

var funcs = template.FuncMap{
	"formatDate": FormatDatePtBR,
	"count":      CountAgendamentos,
	"fieldError": func(s form.State, name string) string {
		return s.Visible(appointment.Field(name))
	},
	"fieldValue": func(s form.State, name string) string {
		return s.Draft.Get(appointment.Field(name))
	},
	"hoursHint": func() string { return BusinessHoursHint },
	"dict":      dict,
}

// dict builds a map from alternating keys and values, for passing several
// arguments to a nested template.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

// Templates parses the embedded page templates. The entry point is "base".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}
